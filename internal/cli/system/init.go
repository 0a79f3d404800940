package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/keyring"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing SQLite database before initialization."`
	Source string `help:"Database path or connection string to copy settings and challenges from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized eighty storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Migrating data from: %s\n", keyring.MaskPassword(c.Source))
		if err := c.migrateData(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Println("Migration completed successfully!")
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if abs, err := filepath.Abs(dbPath); err == nil {
		dbPath = abs
	}
	if c.Source != "" {
		if abs, err := filepath.Abs(c.Source); err == nil && abs == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	_, err := os.Stat(dbPath)
	switch {
	case err == nil:
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		ctx.Printf("Deleted existing database at: %s\n", dbPath)
	case !os.IsNotExist(err):
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context) error {
	source, err := cli.OpenStore(c.Source, keyring.SourceFlag)
	if err != nil {
		return err
	}
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	ctx.Println("  Migrating settings...")
	settings, err := source.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	ctx.Println("  Migrating challenges...")
	challenges, err := source.GetAllChallenges()
	if err != nil {
		return fmt.Errorf("failed to get challenges from source: %w", err)
	}
	for _, ch := range challenges {
		if err := ctx.Store.SaveChallenge(ch); err != nil {
			return fmt.Errorf("failed to save challenge %s: %w", ch.ID, err)
		}
	}
	ctx.Printf("    Migrated %d challenges\n", len(challenges))
	return nil
}
