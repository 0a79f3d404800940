package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/utils"
)

// Day is one calendar day's checklist within a challenge.
//
// The eight simple task flags are plain fields. The critical-task pair is
// kept behind accessors so a checked critical task always has text.
type Day struct {
	ID     string    `json:"id"`
	Number int       `json:"number"`
	Date   time.Time `json:"date"`
	Note   string    `json:"note"`

	DrankWater       bool `json:"drank_water"`
	WorkedOut        bool `json:"worked_out"`
	FollowedDiet     bool `json:"followed_diet"`
	UnderDrinkLimit  bool `json:"under_drink_limit"`
	Read             bool `json:"read"`
	ColdShower       bool `json:"cold_shower"`
	Meditated        bool `json:"meditated"`
	SocialMediaLimit bool `json:"social_media_limit"`

	criticalTaskOne    string
	criticalTaskTwo    string
	didCriticalTaskOne bool
	didCriticalTaskTwo bool

	challenge *Challenge
}

// CriticalTaskOne returns the text of the first critical task.
func (d *Day) CriticalTaskOne() string { return d.criticalTaskOne }

// CriticalTaskTwo returns the text of the second critical task.
func (d *Day) CriticalTaskTwo() string { return d.criticalTaskTwo }

// DidCriticalTaskOne reports whether the first critical task is checked.
func (d *Day) DidCriticalTaskOne() bool { return d.didCriticalTaskOne }

// DidCriticalTaskTwo reports whether the second critical task is checked.
func (d *Day) DidCriticalTaskTwo() bool { return d.didCriticalTaskTwo }

// DidCriticalTasks reports whether both critical tasks are checked. The pair
// counts as a single task.
func (d *Day) DidCriticalTasks() bool {
	return d.didCriticalTaskOne && d.didCriticalTaskTwo
}

// CriticalTasksReady reports whether both critical task texts are filled in.
func (d *Day) CriticalTasksReady() bool {
	return d.criticalTaskOne != "" && d.criticalTaskTwo != ""
}

// SetCriticalTaskOne sets the first critical task text. Clearing it unchecks
// the task.
func (d *Day) SetCriticalTaskOne(text string) {
	d.criticalTaskOne = text
	if text == "" {
		d.didCriticalTaskOne = false
	}
}

// SetCriticalTaskTwo sets the second critical task text. Clearing it
// unchecks the task.
func (d *Day) SetCriticalTaskTwo(text string) {
	d.criticalTaskTwo = text
	if text == "" {
		d.didCriticalTaskTwo = false
	}
}

// ToggleCriticalTasks flips both critical tasks to the opposite of the
// combined state. It is a no-op returning ErrCriticalTasksNotReady unless
// both texts are filled in.
func (d *Day) ToggleCriticalTasks() error {
	if !d.CriticalTasksReady() {
		return ErrCriticalTasksNotReady
	}
	next := !d.DidCriticalTasks()
	d.didCriticalTaskOne = next
	d.didCriticalTaskTwo = next
	return nil
}

// ToggleCriticalTaskOne flips the first critical task. It is a no-op
// returning ErrCriticalTasksNotReady while its text is empty.
func (d *Day) ToggleCriticalTaskOne() error {
	if d.criticalTaskOne == "" {
		return ErrCriticalTasksNotReady
	}
	d.didCriticalTaskOne = !d.didCriticalTaskOne
	return nil
}

// ToggleCriticalTaskTwo flips the second critical task. It is a no-op
// returning ErrCriticalTasksNotReady while its text is empty.
func (d *Day) ToggleCriticalTaskTwo() error {
	if d.criticalTaskTwo == "" {
		return ErrCriticalTasksNotReady
	}
	d.didCriticalTaskTwo = !d.didCriticalTaskTwo
	return nil
}

// RestoreCriticalTasks loads persisted critical-task state. A checked flag
// paired with empty text is dropped.
func (d *Day) RestoreCriticalTasks(one, two string, didOne, didTwo bool) {
	d.criticalTaskOne = one
	d.criticalTaskTwo = two
	d.didCriticalTaskOne = didOne && one != ""
	d.didCriticalTaskTwo = didTwo && two != ""
}

// Task reports whether the given task is done.
func (d *Day) Task(kind TaskKind) (bool, error) {
	switch kind {
	case TaskWater:
		return d.DrankWater, nil
	case TaskWorkout:
		return d.WorkedOut, nil
	case TaskDiet:
		return d.FollowedDiet, nil
	case TaskAlcohol:
		return d.UnderDrinkLimit, nil
	case TaskReading:
		return d.Read, nil
	case TaskColdShower:
		return d.ColdShower, nil
	case TaskMeditate:
		return d.Meditated, nil
	case TaskSocialMedia:
		return d.SocialMediaLimit, nil
	case TaskCriticalTasks:
		return d.DidCriticalTasks(), nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownTask, kind)
}

// SetTask marks a task done or not done. Checking the critical pair needs
// both texts and otherwise returns ErrCriticalTasksNotReady; clearing it
// always succeeds.
func (d *Day) SetTask(kind TaskKind, done bool) error {
	switch kind {
	case TaskWater:
		d.DrankWater = done
	case TaskWorkout:
		d.WorkedOut = done
	case TaskDiet:
		d.FollowedDiet = done
	case TaskAlcohol:
		d.UnderDrinkLimit = done
	case TaskReading:
		d.Read = done
	case TaskColdShower:
		d.ColdShower = done
	case TaskMeditate:
		d.Meditated = done
	case TaskSocialMedia:
		d.SocialMediaLimit = done
	case TaskCriticalTasks:
		if !done {
			d.didCriticalTaskOne = false
			d.didCriticalTaskTwo = false
			return nil
		}
		if !d.CriticalTasksReady() {
			return ErrCriticalTasksNotReady
		}
		d.didCriticalTaskOne = true
		d.didCriticalTaskTwo = true
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTask, kind)
	}
	return nil
}

// CompletedTasks counts the completed tasks, 0..9.
func (d *Day) CompletedTasks() int {
	count := 0
	for _, done := range []bool{
		d.DrankWater,
		d.WorkedOut,
		d.FollowedDiet,
		d.UnderDrinkLimit,
		d.Read,
		d.ColdShower,
		d.DidCriticalTasks(),
		d.Meditated,
		d.SocialMediaLimit,
	} {
		if done {
			count++
		}
	}
	return count
}

// AllTasksCompleted reports whether all nine tasks are done.
func (d *Day) AllTasksCompleted() bool {
	return d.CompletedTasks() == constants.TasksPerDay
}

// IsAccessible reports whether the day may still be edited: it is not after
// today, not after the challenge's quit date, and not after its end date.
func (d *Day) IsAccessible(today time.Time) bool {
	if utils.DaysBetween(today, d.Date) > 0 {
		return false
	}
	if d.challenge == nil {
		return true
	}
	if d.challenge.QuitDate != nil && utils.DaysBetween(*d.challenge.QuitDate, d.Date) > 0 {
		return false
	}
	return utils.DaysBetween(d.challenge.EndDate, d.Date) <= 0
}

// CompletionTier buckets the day's completion for display. Inaccessible
// days are always TierInactive.
func (d *Day) CompletionTier(today time.Time) Tier {
	if !d.IsAccessible(today) {
		return TierInactive
	}
	return TierForFraction(float64(d.CompletedTasks()) / float64(constants.TasksPerDay))
}

// Challenge returns the owning challenge, or nil for a detached day.
func (d *Day) Challenge() *Challenge {
	return d.challenge
}
