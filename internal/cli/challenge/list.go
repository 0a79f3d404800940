package challenge

import (
	"fmt"

	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/logger"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	settings, now, err := ctx.Settings()
	if err != nil {
		return err
	}
	challenges, err := ctx.Store.GetAllChallenges()
	if err != nil {
		return fmt.Errorf("failed to list challenges: %w", err)
	}
	if len(challenges) == 0 {
		ctx.Println("No challenges yet. Start one with 'eighty start'.")
		return nil
	}

	ctx.Printf("%-36s  %-10s  %-11s  %5s  %7s  %s\n", "ID", "STARTED", "STATUS", "DAYS", "DONE", "GRADE")
	for _, ch := range challenges {
		ch.DaysBeforeGrade = settings.DaysBeforeGrade
		if ch.Refresh(now, false).Finished {
			if err := ctx.Store.SaveChallenge(ch); err != nil {
				return fmt.Errorf("failed to save finished challenge: %w", err)
			}
			logger.WithChallenge(ch.ID).Info("Challenge finished", "end", ch.EndDate.Format(constants.DateFormat))
		}
		grade := "-"
		if g, ok := ch.Grade(now); ok {
			grade = g.Symbol()
		}
		ctx.Printf("%-36s  %-10s  %-11s  %2d/%d  %6.1f%%  %s\n",
			ch.ID,
			ch.StartDate.Format(constants.DateFormat),
			ch.Status,
			ch.DaysCompleted(now), constants.ChallengeDays,
			ch.CompletionPercentage(now),
			grade,
		)
	}
	return nil
}
