package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/eighty/internal/constants"
	apperrors "github.com/julianstephens/eighty/internal/errors"
	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/summary"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.err != nil:
		content = dangerStyle.Render(apperrors.Format(m.err))
	case m.form != nil:
		content = m.form.View()
	case m.state == constants.StateOverview:
		content = m.viewOverview()
	case m.state == constants.StateHistory:
		content = m.viewHistory()
	default:
		content = m.viewToday()
	}

	parts := []string{m.viewTabs(), docStyle.Render(content)}
	if m.status != "" {
		parts = append(parts, "  "+m.status)
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if m.form != nil {
		active = m.previousState
	}
	var rendered []string
	for _, s := range tabs {
		if s == active {
			rendered = append(rendered, activeTabStyle.Render(tabTitles[s]))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(tabTitles[s]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func check(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}

func (m Model) viewToday() string {
	if m.challenge == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("No challenge in progress."),
			"",
			fmt.Sprintf("Press 's' to start your %d-day challenge today.", constants.ChallengeDays),
			mutedStyle.Render("Already started? Use 'eighty start --date YYYY-MM-DD'."),
		)
	}

	d := m.day()
	if d == nil {
		return "Today is not part of the challenge."
	}

	var b strings.Builder
	header := fmt.Sprintf("Day %d of %d · %s", d.Number, constants.ChallengeDays, d.Date.Format("Mon Jan 2, 2006"))
	b.WriteString(titleStyle.Render(header))
	if current := m.challenge.CurrentDay(m.now); current != nil && current.Number != d.Number {
		b.WriteString(mutedStyle.Render("  (past day)"))
	}
	b.WriteString("\n\n")

	for i, task := range models.Tasks {
		done, _ := d.Task(task.Kind)
		line := fmt.Sprintf("%s %s %s", check(done), task.Icon, task.Title)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
		if task.Kind == models.TaskCriticalTasks {
			b.WriteString(m.viewCriticalLine(1, d.CriticalTaskOne(), d.DidCriticalTaskOne()))
			b.WriteString(m.viewCriticalLine(2, d.CriticalTaskTwo(), d.DidCriticalTaskTwo()))
		}
	}

	if d.Note != "" {
		b.WriteString("\n📝 " + d.Note + "\n")
	}
	b.WriteString(fmt.Sprintf("\n%d/%d tasks completed", d.CompletedTasks(), constants.TasksPerDay))
	return b.String()
}

func (m Model) viewCriticalLine(n int, text string, done bool) string {
	if text == "" {
		return mutedStyle.Render(fmt.Sprintf("       %d. (not set, press c)", n)) + "\n"
	}
	return fmt.Sprintf("       %d. %s %s\n", n, check(done), text)
}

func (m Model) viewOverview() string {
	if m.challenge == nil {
		return "No challenge in progress."
	}
	sum := summary.Build(m.challenge, m.now)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		RenderGrid(sum),
		"  ",
		panelStyle.Render(m.viewProgress(m.challenge)),
	)
}

func (m Model) viewProgress(c *models.Challenge) string {
	grade := "-"
	if g, ok := c.Grade(m.now); ok {
		grade = GradeStyle(g).Render(g.Symbol())
	}
	lines := []string{
		titleStyle.Render("Progress"),
		fmt.Sprintf("Days:  %d/%d (%d remaining)", c.DaysCompleted(m.now), constants.ChallengeDays, c.DaysRemaining(m.now)),
		fmt.Sprintf("Tasks: %d/%d (%.1f%%)", c.CompletedTasks(), c.TotalTasks(m.now), c.CompletionPercentage(m.now)),
		fmt.Sprintf("Grade: %s", grade),
		"",
		lipgloss.NewStyle().Width(40).Render(c.Performance(m.now)),
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewHistory() string {
	if len(m.history) == 0 {
		return "No challenges yet."
	}

	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %-10s  %-11s  %5s  %7s  %s", "STARTED", "STATUS", "DAYS", "DONE", "GRADE")))
	b.WriteString("\n")
	for i, c := range m.history {
		grade := "-"
		if g, ok := c.Grade(m.now); ok {
			grade = g.Symbol()
		}
		line := fmt.Sprintf("%-10s  %-11s  %2d/%d  %6.1f%%  %s",
			c.StartDate.Format(constants.DateFormat),
			c.Status,
			c.DaysCompleted(m.now), constants.ChallengeDays,
			c.CompletionPercentage(m.now),
			grade,
		)
		if i == m.historyCursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
