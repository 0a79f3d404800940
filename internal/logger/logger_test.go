package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: false, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}
	if Logger.GetLevel() != log.InfoLevel {
		t.Errorf("expected info level, got %v", Logger.GetLevel())
	}

	Debug("Test debug message")
	Info("Test info message", "challenge", "abc")
	Warn("Test warning message")
	Error("Test error message")

	if _, err := os.Stat(filepath.Join(logDir, "eighty.log")); err != nil {
		t.Errorf("log file was not written: %v", err)
	}
}

func TestInitDebugMode(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: true, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	if Logger.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %v", Logger.GetLevel())
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	Logger = nil

	// None of these may panic before Init.
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")

	l := WithChallenge("abc")
	if l == nil {
		t.Fatal("WithChallenge returned nil before Init")
	}
	l.Info("discarded")
}

func TestWithChallenge(t *testing.T) {
	if err := Init(Config{ConfigDir: t.TempDir()}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	if WithChallenge("abc") == nil {
		t.Error("WithChallenge returned nil after Init")
	}
}
