package days

import (
	"fmt"

	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/models"
)

type TodayCmd struct {
	Day int `short:"d" help:"Show this day number instead of today."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Active()
	if err != nil {
		return err
	}
	d, err := s.Day(c.Day)
	if err != nil {
		return err
	}
	ctx.PrintDay(d)
	return nil
}

type MarkCmd struct {
	Tasks []string `arg:"" help:"Tasks to mark: water, workout, diet, alcohol, read, cold_shower, meditate, social_media, critical."`
	Day   int      `short:"d" help:"Day number to update. Defaults to today."`
	Undo  bool     `short:"u" help:"Clear the tasks instead of checking them."`
}

func (c *MarkCmd) Run(ctx *cli.Context) error {
	kinds := make([]models.TaskKind, 0, len(c.Tasks))
	for _, name := range c.Tasks {
		kind, err := models.ParseTaskKind(name)
		if err != nil {
			return err
		}
		kinds = append(kinds, kind)
	}

	s, err := ctx.Active()
	if err != nil {
		return err
	}
	d, err := s.Day(c.Day)
	if err != nil {
		return err
	}

	for _, kind := range kinds {
		if err := d.SetTask(kind, !c.Undo); err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
	}
	if err := saveDay(ctx, s, d); err != nil {
		return err
	}
	ctx.PrintDay(d)
	return nil
}

type NoteCmd struct {
	Text  string `arg:"" optional:"" help:"Note text. Omit with --clear to remove the note."`
	Day   int    `short:"d" help:"Day number to update. Defaults to today."`
	Clear bool   `help:"Remove the note."`
}

func (c *NoteCmd) Run(ctx *cli.Context) error {
	if c.Text == "" && !c.Clear {
		return fmt.Errorf("provide note text or --clear")
	}
	s, err := ctx.Active()
	if err != nil {
		return err
	}
	d, err := s.Day(c.Day)
	if err != nil {
		return err
	}
	d.Note = c.Text
	if c.Clear {
		d.Note = ""
	}
	if err := saveDay(ctx, s, d); err != nil {
		return err
	}
	ctx.Printf("✓ Note saved for day %d\n", d.Number)
	return nil
}

func saveDay(ctx *cli.Context, s *cli.Session, d *models.Day) error {
	if err := ctx.Store.SaveDay(s.Challenge.ID, d); err != nil {
		return fmt.Errorf("failed to save day %d: %w", d.Number, err)
	}
	logger.WithChallenge(s.Challenge.ID).Debug("Day updated", "day", d.Number, "completed", d.CompletedTasks())
	return nil
}
