package challenge

import (
	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/models"
)

type InfoCmd struct{}

func (c *InfoCmd) Run(ctx *cli.Context) error {
	ctx.Printf("The %d-day challenge: complete all %d tasks every day.\n\n", constants.ChallengeDays, constants.TasksPerDay)
	for i, task := range models.Tasks {
		ctx.Printf("%d. %s %s  (%s)\n", i+1, task.Icon, task.Title, task.Kind)
		ctx.Printf("   %s\n", task.Description)
	}
	return nil
}
