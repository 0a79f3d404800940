package cli

import (
	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/summary"
	"github.com/julianstephens/eighty/internal/tui"
)

func check(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}

// PrintDay lists the nine tasks of d with their state.
func (c *Context) PrintDay(d *models.Day) {
	c.Printf("Day %d · %s\n\n", d.Number, d.Date.Format("Mon Jan 2, 2006"))
	for _, task := range models.Tasks {
		done, _ := d.Task(task.Kind)
		c.Printf("  %s %s %-13s %s\n", check(done), task.Icon, task.Kind, task.Title)
		if task.Kind == models.TaskCriticalTasks {
			c.Printf("        1. %s %s\n", check(d.DidCriticalTaskOne()), orPlaceholder(d.CriticalTaskOne()))
			c.Printf("        2. %s %s\n", check(d.DidCriticalTaskTwo()), orPlaceholder(d.CriticalTaskTwo()))
		}
	}
	if d.Note != "" {
		c.Printf("\n  📝 %s\n", d.Note)
	}
	c.Printf("\n  %d/%d tasks completed\n", d.CompletedTasks(), constants.TasksPerDay)
	if d.AllTasksCompleted() {
		c.Println("  🎉 All tasks completed for today! Congratulations!")
	}
}

func orPlaceholder(text string) string {
	if text == "" {
		return "(not set)"
	}
	return text
}

// PrintProgress prints the aggregate metrics and grade of the session's
// challenge.
func (c *Context) PrintProgress(s *Session) {
	ch := s.Challenge
	c.Printf("Days completed: %d/%d (%d remaining)\n", ch.DaysCompleted(s.Now), constants.ChallengeDays, ch.DaysRemaining(s.Now))
	c.Printf("Tasks:          %d/%d (%.1f%%)\n", ch.CompletedTasks(), ch.TotalTasks(s.Now), ch.CompletionPercentage(s.Now))
	c.Printf("Grade:          %s\n", GradeLabel(s))
	c.Printf("\n%s\n", ch.Performance(s.Now))
}

// GradeLabel renders the grade, or "-" before enough days have passed.
func GradeLabel(s *Session) string {
	g, ok := s.Challenge.Grade(s.Now)
	if !ok {
		return "-"
	}
	return tui.GradeStyle(g).Render(g.Symbol())
}

// PrintGrid draws the weekday-aligned 80-day grid.
func (c *Context) PrintGrid(sum summary.Summary) {
	c.Printf("%s", tui.RenderGrid(sum))
}
