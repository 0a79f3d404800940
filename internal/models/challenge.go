package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/utils"
)

// Status is the lifecycle state of a challenge.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusQuit       Status = "quit"
)

// String returns the display label for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusQuit:
		return "Quit"
	}
	return string(s)
}

// ParseStatus converts a stored status value. Unknown values fall back to
// in progress.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusCompleted:
		return StatusCompleted
	case StatusQuit:
		return StatusQuit
	default:
		return StatusInProgress
	}
}

// Challenge is one 80-day attempt. It owns its Day records.
type Challenge struct {
	ID        string     `json:"id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	QuitDate  *time.Time `json:"quit_date,omitempty"`
	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	Days      []*Day     `json:"days"`

	// DaysBeforeGrade is the number of days that must be reached before a
	// grade is given. Zero means constants.DefaultDaysBeforeGrade.
	DaysBeforeGrade int `json:"-"`
}

// RefreshResult reports what Refresh changed.
type RefreshResult struct {
	Finished    bool
	CarriedOver bool
}

// NewChallenge creates a challenge starting today with all 80 days
// generated.
func NewChallenge(now time.Time) *Challenge {
	c, _ := NewChallengeStartingOn(now, now)
	return c
}

// NewChallengeStartingOn creates a challenge that started on start, which
// may be in the past. A start after today returns ErrStartInFuture.
func NewChallengeStartingOn(start, now time.Time) (*Challenge, error) {
	start = utils.StartOfDay(start.In(now.Location()))
	if utils.DaysBetween(now, start) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrStartInFuture, start.Format(constants.DateFormat))
	}

	c := &Challenge{
		ID:        uuid.New().String(),
		StartDate: start,
		EndDate:   start.AddDate(0, 0, constants.ChallengeDays-1),
		Status:    StatusInProgress,
		CreatedAt: now,
		Days:      make([]*Day, 0, constants.ChallengeDays),
	}
	for i := 0; i < constants.ChallengeDays; i++ {
		c.Days = append(c.Days, &Day{
			ID:        uuid.New().String(),
			Number:    i + 1,
			Date:      start.AddDate(0, 0, i),
			challenge: c,
		})
	}
	return c, nil
}

// Attach installs days loaded from storage. The days are sorted by number
// and must form the full 80-day layout starting at StartDate.
func (c *Challenge) Attach(days []*Day) error {
	if len(days) != constants.ChallengeDays {
		return fmt.Errorf("%w: expected %d days, got %d", ErrInvalidDays, constants.ChallengeDays, len(days))
	}
	sorted := make([]*Day, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	for i, d := range sorted {
		if d.Number != i+1 {
			return fmt.Errorf("%w: day %d found at position %d", ErrInvalidDays, d.Number, i+1)
		}
		if utils.DaysBetween(c.StartDate, d.Date) != i {
			return fmt.Errorf("%w: day %d has date %s", ErrInvalidDays, d.Number, d.Date.Format(constants.DateFormat))
		}
	}
	for _, d := range sorted {
		d.challenge = c
	}
	c.Days = sorted
	return nil
}

// Release drops the challenge's days and their back-references. Called when
// the challenge is deleted.
func (c *Challenge) Release() {
	for _, d := range c.Days {
		d.challenge = nil
	}
	c.Days = nil
}

// Day returns the day with the given number, or nil.
func (c *Challenge) Day(number int) *Day {
	if number < 1 || number > len(c.Days) {
		return nil
	}
	if d := c.Days[number-1]; d.Number == number {
		return d
	}
	for _, d := range c.Days {
		if d.Number == number {
			return d
		}
	}
	return nil
}

// IsActive reports whether the challenge is still in progress.
func (c *Challenge) IsActive() bool {
	return c.Status == StatusInProgress
}

// Quit ends the challenge early. It fails once the end date has been
// reached or the challenge is no longer in progress.
func (c *Challenge) Quit(now time.Time) bool {
	if c.Status != StatusInProgress {
		return false
	}
	if utils.DaysBetween(now, c.EndDate) <= 0 {
		return false
	}
	quitDate := utils.StartOfDay(now)
	c.QuitDate = &quitDate
	c.Status = StatusQuit
	return true
}

// Finish completes the challenge. It fails until the end date has passed.
func (c *Challenge) Finish(now time.Time) bool {
	if c.Status != StatusInProgress {
		return false
	}
	if utils.DaysBetween(c.EndDate, now) <= 0 {
		return false
	}
	c.Status = StatusCompleted
	return true
}

// CurrentDay returns the day whose date is today, or nil when today is
// outside the 80-day window.
func (c *Challenge) CurrentDay(now time.Time) *Day {
	offset := utils.DaysBetween(c.StartDate, now)
	if offset < 0 || offset >= len(c.Days) {
		return nil
	}
	return c.Day(offset + 1)
}

// DaysCompleted returns how many days of the challenge have been reached.
func (c *Challenge) DaysCompleted(now time.Time) int {
	switch c.Status {
	case StatusCompleted:
		return constants.ChallengeDays
	case StatusQuit:
		if c.QuitDate == nil {
			return 0
		}
		return utils.DaysBetween(c.StartDate, *c.QuitDate) + 1
	default:
		if d := c.CurrentDay(now); d != nil {
			return d.Number
		}
		return 0
	}
}

// DaysRemaining returns 80 minus DaysCompleted, floored at zero.
func (c *Challenge) DaysRemaining(now time.Time) int {
	return max(0, constants.ChallengeDays-c.DaysCompleted(now))
}

// CompletedTasks sums the completed tasks over every day.
func (c *Challenge) CompletedTasks() int {
	total := 0
	for _, d := range c.Days {
		total += d.CompletedTasks()
	}
	return total
}

// TotalTasks is the grading denominator: nine tasks per day reached.
func (c *Challenge) TotalTasks(now time.Time) int {
	return c.DaysCompleted(now) * constants.TasksPerDay
}

// CompletionFraction is CompletedTasks over TotalTasks, or 0 when no day has
// been reached.
func (c *Challenge) CompletionFraction(now time.Time) float64 {
	total := c.TotalTasks(now)
	if total == 0 {
		return 0
	}
	return float64(c.CompletedTasks()) / float64(total)
}

// CompletionPercentage is CompletionFraction scaled to 0..100.
func (c *Challenge) CompletionPercentage(now time.Time) float64 {
	return c.CompletionFraction(now) * 100
}

// DaysCompletedFraction is DaysCompleted over 80.
func (c *Challenge) DaysCompletedFraction(now time.Time) float64 {
	done := c.DaysCompleted(now)
	if done == 0 {
		return 0
	}
	return float64(done) / float64(constants.ChallengeDays)
}

func (c *Challenge) daysBeforeGrade() int {
	if c.DaysBeforeGrade > 0 {
		return c.DaysBeforeGrade
	}
	return constants.DefaultDaysBeforeGrade
}

// Grade returns the challenge grade. The second value is false until enough
// days have been reached.
func (c *Challenge) Grade(now time.Time) (Grade, bool) {
	if c.DaysCompleted(now) < c.daysBeforeGrade() {
		return "", false
	}
	return GradeForFraction(c.CompletionFraction(now)), true
}

// Performance returns the encouragement text shown next to the grade.
func (c *Challenge) Performance(now time.Time) string {
	grade, ok := c.Grade(now)
	if !ok {
		return keepGoingText
	}
	return grade.PerformanceText(c.CompletionFraction(now))
}

// Refresh brings an in-progress challenge up to date with the calendar. Once
// the last day has passed the challenge is finished. Otherwise, with
// carryOver set, yesterday's critical task texts are copied into today
// when today's are still empty.
func (c *Challenge) Refresh(now time.Time, carryOver bool) RefreshResult {
	var result RefreshResult
	if c.Status != StatusInProgress {
		return result
	}
	if c.Finish(now) {
		result.Finished = true
		return result
	}
	if !carryOver {
		return result
	}

	today := c.CurrentDay(now)
	if today == nil || today.Number == 1 {
		return result
	}
	if today.CriticalTaskOne() != "" || today.CriticalTaskTwo() != "" {
		return result
	}
	prev := c.Day(today.Number - 1)
	if prev == nil || (prev.CriticalTaskOne() == "" && prev.CriticalTaskTwo() == "") {
		return result
	}
	today.SetCriticalTaskOne(prev.CriticalTaskOne())
	today.SetCriticalTaskTwo(prev.CriticalTaskTwo())
	result.CarriedOver = true
	return result
}
