package days

import (
	"fmt"

	"github.com/julianstephens/eighty/internal/cli"
)

type CriticalSetCmd struct {
	Which int    `arg:"" enum:"1,2" help:"Which critical task to set (1 or 2)."`
	Text  string `arg:"" optional:"" help:"Task text. Empty clears the task and unchecks it."`
	Day   int    `short:"d" help:"Day number to update. Defaults to today."`
}

func (c *CriticalSetCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Active()
	if err != nil {
		return err
	}
	d, err := s.Day(c.Day)
	if err != nil {
		return err
	}

	switch c.Which {
	case 1:
		d.SetCriticalTaskOne(c.Text)
	case 2:
		d.SetCriticalTaskTwo(c.Text)
	default:
		return fmt.Errorf("critical task must be 1 or 2, got %d", c.Which)
	}
	if err := saveDay(ctx, s, d); err != nil {
		return err
	}
	ctx.PrintDay(d)
	return nil
}

type CriticalToggleCmd struct {
	Which int `arg:"" optional:"" enum:"0,1,2" default:"0" help:"Toggle only task 1 or 2. Omit to toggle both together."`
	Day   int `short:"d" help:"Day number to update. Defaults to today."`
}

func (c *CriticalToggleCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Active()
	if err != nil {
		return err
	}
	d, err := s.Day(c.Day)
	if err != nil {
		return err
	}

	switch c.Which {
	case 1:
		err = d.ToggleCriticalTaskOne()
	case 2:
		err = d.ToggleCriticalTaskTwo()
	default:
		err = d.ToggleCriticalTasks()
	}
	if err != nil {
		return err
	}
	if err := saveDay(ctx, s, d); err != nil {
		return err
	}
	ctx.PrintDay(d)
	return nil
}
