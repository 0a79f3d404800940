package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/cli/backups"
	"github.com/julianstephens/eighty/internal/cli/challenge"
	"github.com/julianstephens/eighty/internal/cli/days"
	"github.com/julianstephens/eighty/internal/cli/settings"
	"github.com/julianstephens/eighty/internal/cli/system"
	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/errors"
	"github.com/julianstephens/eighty/internal/keyring"
	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path or PostgreSQL connection string. PostgreSQL passwords must NOT be embedded here; use the OS keyring, EIGHTY_DB_CONNECTION, or .pgpass instead." type:"string" default:"~/.config/eighty/eighty.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd        `cmd:"" help:"Initialize eighty storage."`
	Tui      system.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Start    challenge.StartCmd    `cmd:"" help:"Start a new 80-day challenge."`
	Quit     challenge.QuitCmd     `cmd:"" help:"Quit the challenge in progress."`
	Finish   challenge.FinishCmd   `cmd:"" help:"Complete a challenge whose last day has passed."`
	Delete   challenge.DeleteCmd   `cmd:"" help:"Delete a challenge and all of its days."`
	List     challenge.ListCmd     `cmd:"" help:"List all challenges."`
	Status   challenge.StatusCmd   `cmd:"" help:"Show progress and grade of the challenge in progress."`
	Overview challenge.OverviewCmd `cmd:"" help:"Show the 80-day grid."`
	Export   challenge.ExportCmd   `cmd:"" help:"Export a challenge as CSV."`
	Info     challenge.InfoCmd     `cmd:"" help:"Describe the nine daily tasks."`
	Today    days.TodayCmd         `cmd:"" help:"Show today's tasks."`
	Mark     days.MarkCmd          `cmd:"" help:"Check off (or undo) tasks."`
	Note     days.NoteCmd          `cmd:"" help:"Set the note of a day."`
	Critical struct {
		Set    days.CriticalSetCmd    `cmd:"" help:"Set the text of a critical task."`
		Toggle days.CriticalToggleCmd `cmd:"" help:"Check or uncheck critical tasks."`
	} `cmd:"" help:"Manage the two critical tasks of a day."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Remind   system.RemindCmd     `cmd:"" help:"List upcoming reminders."`
	Notify   system.NotifyCmd     `cmd:"" hidden:"" help:"Send today's reminder if it is due (used by schedulers)."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with the password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage the database connection string in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track the 80-day challenge: nine daily tasks, progress and a grade."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := "."
	if path, err := cli.ExpandPath(constants.DefaultConfigPath); err == nil {
		configDir = filepath.Dir(path)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	location, source := keyring.ResolveConnection(CLI.Config)
	logger.Debug("Resolved database", "location", keyring.MaskPassword(location), "source", source)

	store, err := cli.OpenStore(location, source)
	if err != nil {
		errors.Fatal(err)
	}

	if err := loadStore(store, ctx.Command()); err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	if err := ctx.Run(&cli.Context{Store: store}); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

// loadStore loads the store for commands that need an initialized one. The
// store is closed when loading fails.
func loadStore(store storage.Provider, command string) error {
	// init creates the store and keyring commands do not need it.
	switch strings.Fields(command)[0] {
	case "init", "keyring":
		return nil
	}
	if err := store.Load(); err != nil {
		store.Close()
		return err
	}
	return nil
}
