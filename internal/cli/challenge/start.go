package challenge

import (
	"errors"
	"fmt"

	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/storage"
	"github.com/julianstephens/eighty/internal/utils"
)

type StartCmd struct {
	Date string `help:"Start date (YYYY-MM-DD) if you already started. Defaults to today."`
}

func (c *StartCmd) Run(ctx *cli.Context) error {
	settings, now, err := ctx.Settings()
	if err != nil {
		return err
	}

	// An expired challenge is finished here and no longer blocks a new start.
	s, err := ctx.Active()
	switch {
	case err == nil && s.Challenge.IsActive():
		return fmt.Errorf("challenge %s is already in progress (day %d); quit it first", s.Challenge.ID, s.Challenge.DaysCompleted(now))
	case err != nil && !errors.Is(err, storage.ErrNoActiveChallenge):
		return err
	}

	start := now
	if c.Date != "" {
		start, err = utils.ParseDateInLocation(c.Date, now.Location())
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", c.Date, err)
		}
	}

	ch, err := models.NewChallengeStartingOn(start, now)
	if err != nil {
		return err
	}
	ch.DaysBeforeGrade = settings.DaysBeforeGrade

	if err := ctx.Store.SaveChallenge(ch); err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}
	logger.WithChallenge(ch.ID).Info("Challenge started", "start", ch.StartDate.Format(constants.DateFormat))

	ctx.Printf("✓ Challenge started: %s → %s\n", ch.StartDate.Format(constants.DateFormat), ch.EndDate.Format(constants.DateFormat))
	if d := ch.CurrentDay(now); d != nil && d.Number > 1 {
		ctx.Printf("  You are on day %d. Earlier days can be filled in with --day.\n", d.Number)
	}
	return nil
}
