package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/storage"
)

func newParser(t *testing.T) *kong.Kong {
	t.Helper()
	parser, err := kong.New(&CLI,
		kong.Name(constants.AppName),
		kong.Vars{"version": constants.Version},
		kong.Exit(func(int) { t.Fatal("parser tried to exit") }),
	)
	if err != nil {
		t.Fatalf("kong.New() error = %v", err)
	}
	return parser
}

func TestCommandGrammar(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
		wantErr bool
	}{
		{name: "no args opens the tui", args: nil, command: "tui"},
		{name: "backup defaults to create", args: []string{"backup"}, command: "backup create"},
		{name: "keyring status", args: []string{"keyring", "status"}, command: "keyring status"},
		{name: "critical set rejects a third task", args: []string{"critical", "set", "3", "x"}, wantErr: true},
		{name: "mark needs a task", args: []string{"mark"}, wantErr: true},
		{name: "unknown command", args: []string{"plan"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := newParser(t).Parse(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%v) succeeded with command %q", tt.args, ctx.Command())
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%v) error = %v", tt.args, err)
			}
			if got := ctx.Command(); got != tt.command {
				t.Errorf("Command() = %q, want %q", got, tt.command)
			}
		})
	}
}

func TestMarkFlags(t *testing.T) {
	if _, err := newParser(t).Parse([]string{"mark", "water", "read", "--day", "2", "-u"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if strings.Join(CLI.Mark.Tasks, ",") != "water,read" {
		t.Errorf("Tasks = %v", CLI.Mark.Tasks)
	}
	if CLI.Mark.Day != 2 || !CLI.Mark.Undo {
		t.Errorf("Day = %d, Undo = %v", CLI.Mark.Day, CLI.Mark.Undo)
	}
}

func TestConfigDefault(t *testing.T) {
	if _, err := newParser(t).Parse([]string{"status"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if CLI.Config != constants.DefaultConfigPath {
		t.Errorf("Config = %q, want %q", CLI.Config, constants.DefaultConfigPath)
	}

	if _, err := newParser(t).Parse([]string{"--config", "/tmp/other.db", "--debug", "list"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if CLI.Config != "/tmp/other.db" || !CLI.Debug {
		t.Errorf("Config = %q, Debug = %v", CLI.Config, CLI.Debug)
	}
}

func TestSettingsFlags(t *testing.T) {
	if _, err := newParser(t).Parse([]string{"settings", "--reminder-time", "21:15", "--carry-over-critical-tasks=false"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	s := CLI.Settings
	if s.ReminderTime == nil || *s.ReminderTime != "21:15" {
		t.Errorf("ReminderTime = %v", s.ReminderTime)
	}
	if s.CarryOverCriticalTasks == nil || *s.CarryOverCriticalTasks {
		t.Errorf("CarryOverCriticalTasks = %v", s.CarryOverCriticalTasks)
	}
	if s.Timezone != nil {
		t.Errorf("Timezone = %v, want unset", *s.Timezone)
	}
}

type loadStub struct {
	storage.Provider
	loadErr error
	loaded  bool
	closed  bool
}

func (s *loadStub) Load() error {
	s.loaded = true
	return s.loadErr
}

func (s *loadStub) Close() error {
	s.closed = true
	return nil
}

func TestLoadStore(t *testing.T) {
	tests := []struct {
		name       string
		command    string
		loadErr    error
		wantLoaded bool
		wantClosed bool
		wantErr    bool
	}{
		{name: "loads for status", command: "status", wantLoaded: true},
		{name: "init skips load", command: "init"},
		{name: "keyring skips load", command: "keyring status"},
		{name: "failed load closes the store", command: "today", loadErr: storage.ErrNotInitialized, wantLoaded: true, wantClosed: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &loadStub{loadErr: tt.loadErr}
			err := loadStore(stub, tt.command)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadStore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, tt.loadErr) {
				t.Errorf("loadStore() error = %v, want %v", err, tt.loadErr)
			}
			if stub.loaded != tt.wantLoaded || stub.closed != tt.wantClosed {
				t.Errorf("loaded = %v, closed = %v", stub.loaded, stub.closed)
			}
		})
	}
}
