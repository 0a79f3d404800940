package challenge

import (
	"fmt"

	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/logger"
)

type QuitCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *QuitCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Active()
	if err != nil {
		return err
	}
	ch := s.Challenge
	if !ch.IsActive() {
		return nil
	}

	if !c.Yes {
		ok, err := ctx.Confirm(fmt.Sprintf("Quit the challenge on day %d? This cannot be undone.", ch.DaysCompleted(s.Now)))
		if err != nil {
			return err
		}
		if !ok {
			ctx.Println("Quit cancelled.")
			return nil
		}
	}

	if !ch.Quit(s.Now) {
		return fmt.Errorf("the challenge can no longer be quit; its last day is %s", ch.EndDate.Format(constants.DateFormat))
	}
	if err := ctx.Store.SaveChallenge(ch); err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}
	logger.WithChallenge(ch.ID).Info("Challenge quit", "day", ch.DaysCompleted(s.Now))

	ctx.Printf("Challenge quit after %d days.\n", ch.DaysCompleted(s.Now))
	ctx.PrintProgress(s)
	return nil
}

type FinishCmd struct{}

func (c *FinishCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Active()
	if err != nil {
		return err
	}
	ch := s.Challenge
	if !ch.IsActive() {
		return nil
	}
	if !ch.Finish(s.Now) {
		return fmt.Errorf("the challenge runs until %s; %d days remaining", ch.EndDate.Format(constants.DateFormat), ch.DaysRemaining(s.Now))
	}
	if err := ctx.Store.SaveChallenge(ch); err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}
	logger.WithChallenge(ch.ID).Info("Challenge finished")
	ctx.Println("🎉 Challenge completed!")
	ctx.PrintProgress(s)
	return nil
}
