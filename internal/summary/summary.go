// Package summary builds the read-only compact view of a challenge: the
// weekday-aligned 80-day grid and today's task strip.
package summary

import (
	"time"

	"github.com/julianstephens/eighty/internal/models"
)

// Weekdays are the grid column labels, Sunday first.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell is one day in the grid.
type Cell struct {
	Number     int
	Date       time.Time
	Tier       models.Tier
	Completed  int
	Accessible bool
	Today      bool
}

// TaskStatus is one entry of today's strip.
type TaskStatus struct {
	Kind models.TaskKind
	Icon string
	Done bool
}

// Summary is a snapshot of a challenge at a point in time.
type Summary struct {
	ChallengeID   string
	Status        models.Status
	Offset        int // empty cells before day 1 so it sits under its weekday
	Cells         []Cell
	Today         []TaskStatus // nil when no day matches today
	TodayNumber   int
	DaysCompleted int
	DaysRemaining int
	Percentage    float64
	Grade         models.Grade
	Graded        bool
}

// Build snapshots c as of now.
func Build(c *models.Challenge, now time.Time) Summary {
	s := Summary{
		ChallengeID:   c.ID,
		Status:        c.Status,
		DaysCompleted: c.DaysCompleted(now),
		DaysRemaining: c.DaysRemaining(now),
		Percentage:    c.CompletionPercentage(now),
	}
	s.Grade, s.Graded = c.Grade(now)

	if len(c.Days) > 0 {
		s.Offset = int(c.Days[0].Date.Weekday())
	}

	current := c.CurrentDay(now)
	s.Cells = make([]Cell, 0, len(c.Days))
	for _, d := range c.Days {
		s.Cells = append(s.Cells, Cell{
			Number:     d.Number,
			Date:       d.Date,
			Tier:       d.CompletionTier(now),
			Completed:  d.CompletedTasks(),
			Accessible: d.IsAccessible(now),
			Today:      d == current,
		})
	}

	if current != nil {
		s.TodayNumber = current.Number
		s.Today = make([]TaskStatus, 0, len(models.Tasks))
		for _, task := range models.Tasks {
			done, _ := current.Task(task.Kind)
			s.Today = append(s.Today, TaskStatus{Kind: task.Kind, Icon: task.Icon, Done: done})
		}
	}
	return s
}

// Rows lays the cells out in weeks of seven. Leading padding cells are nil.
func (s Summary) Rows() [][]*Cell {
	var rows [][]*Cell
	row := make([]*Cell, 0, 7)
	for i := 0; i < s.Offset; i++ {
		row = append(row, nil)
	}
	for i := range s.Cells {
		row = append(row, &s.Cells[i])
		if len(row) == 7 {
			rows = append(rows, row)
			row = make([]*Cell, 0, 7)
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}
