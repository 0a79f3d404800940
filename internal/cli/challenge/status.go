package challenge

import (
	"strings"

	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/summary"
)

type StatusCmd struct {
	Compact bool `help:"One line with today's task strip, for prompts and status bars."`
}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Active()
	if err != nil {
		return err
	}
	sum := summary.Build(s.Challenge, s.Now)

	if c.Compact {
		var strip strings.Builder
		for _, t := range sum.Today {
			if t.Done {
				strip.WriteString(t.Icon)
			} else {
				strip.WriteString("·")
			}
		}
		ctx.Printf("Day %d/%d %s %.0f%% %s\n", sum.TodayNumber, constants.ChallengeDays, strip.String(), sum.Percentage, cli.GradeLabel(s))
		return nil
	}

	ctx.Printf("Challenge %s (%s)\n", s.Challenge.ID, sum.Status)
	ctx.Printf("%s → %s\n\n", s.Challenge.StartDate.Format(constants.DateFormat), s.Challenge.EndDate.Format(constants.DateFormat))
	ctx.PrintProgress(s)
	return nil
}

type OverviewCmd struct{}

func (c *OverviewCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Active()
	if err != nil {
		return err
	}
	ctx.PrintGrid(summary.Build(s.Challenge, s.Now))
	ctx.Println()
	ctx.PrintProgress(s)
	return nil
}
