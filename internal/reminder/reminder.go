// Package reminder plans the daily check-in reminders of a running
// challenge. It only needs the number of days remaining and the configured
// time of day.
package reminder

import (
	"fmt"
	"time"

	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/utils"
)

// Reminder is one scheduled check-in.
type Reminder struct {
	At       time.Time
	DaysLeft int // days remaining after the reminder's day
	Title    string
	Body     string
}

// Plan returns the reminders for today and each of the next daysRemaining
// days at the HH:MM time at, in now's location. A reminder at exactly now is
// kept; today's reminder is skipped once its time has passed. At most limit reminders are returned; a limit
// of zero or less uses constants.DefaultReminderCap.
func Plan(daysRemaining int, at string, now time.Time, limit int) ([]Reminder, error) {
	if !utils.ValidateTimeFormat(at) {
		return nil, fmt.Errorf("invalid reminder time %q (expected HH:MM)", at)
	}
	if limit <= 0 {
		limit = constants.DefaultReminderCap
	}
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	var reminders []Reminder
	for offset := 0; offset <= daysRemaining && len(reminders) < limit; offset++ {
		fireAt, err := utils.CombineDateAndTime(now.AddDate(0, 0, offset), at)
		if err != nil {
			return nil, err
		}
		if fireAt.Before(now) {
			continue
		}
		left := daysRemaining - offset
		reminders = append(reminders, Reminder{
			At:       fireAt,
			DaysLeft: left,
			Title:    "80 Hard",
			Body:     body(left),
		})
	}
	return reminders, nil
}

// Due returns the reminder scheduled for now's minute, if any.
func Due(reminders []Reminder, now time.Time) (Reminder, bool) {
	minute := now.Truncate(time.Minute)
	for _, r := range reminders {
		if r.At.Truncate(time.Minute).Equal(minute) {
			return r, true
		}
	}
	return Reminder{}, false
}

func body(daysLeft int) string {
	switch daysLeft {
	case 0:
		return "Last day! Check off your tasks and finish strong."
	case 1:
		return "1 day left after today. Don't forget to check off your tasks."
	default:
		return fmt.Sprintf("%d days left after today. Don't forget to check off your tasks.", daysLeft)
	}
}
