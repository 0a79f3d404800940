package challenge

import (
	"errors"
	"fmt"

	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/storage"
)

type DeleteCmd struct {
	ID  string `arg:"" optional:"" help:"Challenge ID. Defaults to the challenge in progress."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	ch, err := c.target(ctx)
	if err != nil {
		return err
	}

	if !c.Yes {
		prompt := fmt.Sprintf("Delete challenge %s (started %s) and all %d of its days?",
			ch.ID, ch.StartDate.Format(constants.DateFormat), len(ch.Days))
		ok, err := ctx.Confirm(prompt)
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Delete cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteChallenge(ch.ID); err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	ch.Release()
	logger.WithChallenge(ch.ID).Info("Challenge deleted")

	ctx.Printf("✓ Deleted challenge %s\n", ch.ID)
	return nil
}

func (c *DeleteCmd) target(ctx *cli.Context) (*models.Challenge, error) {
	if c.ID != "" {
		ch, err := ctx.Store.GetChallenge(c.ID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("no challenge with id %s", c.ID)
		}
		return ch, err
	}
	return ctx.Store.GetActiveChallenge()
}
