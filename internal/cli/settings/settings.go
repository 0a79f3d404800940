package settings

import (
	"fmt"

	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone               *string `help:"IANA timezone used to decide what 'today' is, or Local."`
	CarryOverCriticalTasks *bool   `help:"Copy yesterday's critical tasks into an empty today."`
	RemindersEnabled       *bool   `help:"Enable or disable daily reminders."`
	ReminderTime           *string `help:"Daily reminder time (HH:MM)."`
	ReminderCap            *int    `help:"Maximum number of reminders planned ahead."`
	DaysBeforeGrade        *int    `help:"Days that must pass before a grade is shown."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Timezone:                  %s\n", settings.Timezone)
		ctx.Printf("  Carry Over Critical Tasks: %v\n", settings.CarryOverCriticalTasks)
		ctx.Printf("  Days Before Grade:         %d\n", settings.DaysBeforeGrade)
		ctx.Println("\nReminder Settings:")
		ctx.Printf("  Reminders Enabled:         %v\n", settings.RemindersEnabled)
		ctx.Printf("  Reminder Time:             %s\n", settings.ReminderTime)
		ctx.Printf("  Reminder Cap:              %d\n", settings.ReminderCap)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.CarryOverCriticalTasks != nil {
		settings.CarryOverCriticalTasks = *c.CarryOverCriticalTasks
		updated = true
	}
	if c.RemindersEnabled != nil {
		settings.RemindersEnabled = *c.RemindersEnabled
		updated = true
	}
	if c.ReminderTime != nil {
		if !utils.ValidateTimeFormat(*c.ReminderTime) {
			return fmt.Errorf("invalid reminder time %q, expected HH:MM", *c.ReminderTime)
		}
		settings.ReminderTime = *c.ReminderTime
		updated = true
	}
	if c.ReminderCap != nil {
		if *c.ReminderCap < 1 {
			return fmt.Errorf("reminder cap must be at least 1")
		}
		settings.ReminderCap = *c.ReminderCap
		updated = true
	}
	if c.DaysBeforeGrade != nil {
		if *c.DaysBeforeGrade < 1 {
			return fmt.Errorf("days before grade must be at least 1")
		}
		settings.DaysBeforeGrade = *c.DaysBeforeGrade
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Println("Settings updated successfully.")
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}
	return nil
}
