package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/julianstephens/eighty/internal/cli"
	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/notifier"
	"github.com/julianstephens/eighty/internal/reminder"
	"github.com/julianstephens/eighty/internal/storage"
	"github.com/julianstephens/eighty/internal/utils"
)

// RemindCmd lists the reminders planned for the rest of the challenge.
type RemindCmd struct {
	Limit int `help:"Show at most this many reminders. Defaults to the reminder-cap setting."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Active()
	if err != nil {
		return err
	}
	if !s.Settings.RemindersEnabled {
		ctx.Println("Reminders are disabled in settings.")
		return nil
	}

	limit := c.Limit
	if limit <= 0 {
		limit = s.Settings.ReminderCap
	}
	reminders, err := reminder.Plan(s.Challenge.DaysRemaining(s.Now), s.Settings.ReminderTime, s.Now, limit)
	if err != nil {
		return err
	}
	if len(reminders) == 0 {
		ctx.Println("No reminders left for this challenge.")
		return nil
	}

	ctx.Printf("%d reminders at %s:\n", len(reminders), s.Settings.ReminderTime)
	for _, r := range reminders {
		ctx.Printf("  %s  %s\n", r.At.Format("Mon 2006-01-02 15:04"), r.Body)
	}
	return nil
}

// Sender delivers a reminder.
type Sender interface {
	Notify(ctx context.Context, r reminder.Reminder) error
}

// NotifyCmd sends today's reminder when the current minute matches the
// reminder time. It is meant to run every minute from a scheduler.
type NotifyCmd struct {
	DryRun bool `help:"Print the notification to stdout instead of sending it."`

	sender Sender `kong:"-"`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Active()
	if errors.Is(err, storage.ErrNoActiveChallenge) {
		if c.DryRun {
			ctx.Println("No challenge in progress.")
		}
		return nil
	}
	if err != nil {
		return err
	}
	if !s.Settings.RemindersEnabled {
		if c.DryRun {
			ctx.Println("Reminders are disabled in settings.")
		}
		return nil
	}

	// Plan from midnight so the reminder for the current minute is included.
	reminders, err := reminder.Plan(s.Challenge.DaysRemaining(s.Now), s.Settings.ReminderTime, utils.StartOfDay(s.Now), 1)
	if err != nil {
		return err
	}
	r, ok := reminder.Due(reminders, s.Now)
	if !ok {
		if c.DryRun {
			ctx.Println("No reminder due now.")
		}
		return nil
	}

	if c.DryRun {
		ctx.Printf("[DryRun] %s: %s\n", r.Title, r.Body)
		return nil
	}

	sender := c.sender
	if sender == nil {
		sender = notifier.New()
	}
	if err := sender.Notify(context.Background(), r); err != nil {
		logger.Warn("Failed to send reminder", "error", err)
		return fmt.Errorf("failed to send notification: %w", err)
	}
	logger.Info("Reminder sent", "days_left", r.DaysLeft)
	return nil
}
