package challenge

import (
	"errors"
	"fmt"

	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/export"
	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/storage"
)

type ExportCmd struct {
	ID     string `arg:"" optional:"" help:"Challenge ID. Defaults to the challenge in progress, then the most recent one."`
	Dir    string `help:"Directory to write the CSV file to." default:"." type:"path"`
	Stdout bool   `help:"Write the CSV to stdout instead of a file."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	ch, err := c.target(ctx)
	if err != nil {
		return err
	}

	if c.Stdout {
		_, err := ctx.Stdout().Write(append(export.CSV(ch), '\n'))
		return err
	}

	path, err := export.WriteFile(c.Dir, ch)
	if err != nil {
		return err
	}
	logger.WithChallenge(ch.ID).Info("Challenge exported", "path", path)
	ctx.Printf("✓ Exported to %s\n", path)
	return nil
}

func (c *ExportCmd) target(ctx *cli.Context) (*models.Challenge, error) {
	if c.ID != "" {
		return ctx.Store.GetChallenge(c.ID)
	}
	ch, err := ctx.Store.GetActiveChallenge()
	if !errors.Is(err, storage.ErrNoActiveChallenge) {
		return ch, err
	}
	all, err := ctx.Store.GetAllChallenges()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("nothing to export: %w", storage.ErrNoActiveChallenge)
	}
	return all[0], nil
}
