package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/eighty/internal/constants"
	apperrors "github.com/julianstephens/eighty/internal/errors"
	"github.com/julianstephens/eighty/internal/export"
	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/utils"
)

type tickMsg time.Time

// tick wakes the model every minute so the view follows midnight.
func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); ok {
		m.onTick()
		return m, tick()
	}

	switch m.state {
	case constants.StateEditCritical, constants.StateEditNote, constants.StateConfirmQuit:
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.state = nextTab(m.state, 1)
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = nextTab(m.state, -1)
		default:
			switch m.state {
			case constants.StateToday:
				return m.updateToday(msg)
			case constants.StateHistory:
				m.updateHistory(msg)
			}
		}
	}

	return m, nil
}

func nextTab(current constants.SessionState, step int) constants.SessionState {
	for i, s := range tabs {
		if s == current {
			return tabs[(i+step+len(tabs))%len(tabs)]
		}
	}
	return tabs[0]
}

// onTick reloads when the calendar day changes under an idle view.
func (m *Model) onTick() {
	now := m.currentTime()
	if utils.SameDay(now, m.now) {
		m.now = now
		return
	}
	switch m.state {
	case constants.StateEditCritical, constants.StateEditNote, constants.StateConfirmQuit:
		m.now = now
	default:
		m.reload()
	}
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.challenge == nil {
		if key.Matches(msg, m.keys.Start) {
			m.startChallenge()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(models.Tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.PrevDay):
		if m.dayNumber > 1 {
			m.dayNumber--
			m.status = ""
		}
	case key.Matches(msg, m.keys.NextDay):
		if next := m.challenge.Day(m.dayNumber + 1); next != nil && next.IsAccessible(m.now) {
			m.dayNumber++
			m.status = ""
		}
	case key.Matches(msg, m.keys.Toggle):
		m.toggleTask(models.Tasks[m.cursor].Kind)
	case key.Matches(msg, m.keys.ToggleOne):
		m.editDay(func(d *models.Day) error { return d.ToggleCriticalTaskOne() })
	case key.Matches(msg, m.keys.ToggleTwo):
		m.editDay(func(d *models.Day) error { return d.ToggleCriticalTaskTwo() })
	case key.Matches(msg, m.keys.Critical):
		return m.openCriticalForm()
	case key.Matches(msg, m.keys.Note):
		return m.openNoteForm()
	case key.Matches(msg, m.keys.GiveUp):
		return m.openQuitForm()
	}
	return m, nil
}

func (m *Model) updateHistory(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.historyCursor > 0 {
			m.historyCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.historyCursor < len(m.history)-1 {
			m.historyCursor++
		}
	case key.Matches(msg, m.keys.Export):
		m.exportSelected()
	}
}

func (m *Model) toggleTask(kind models.TaskKind) {
	m.editDay(func(d *models.Day) error {
		if kind == models.TaskCriticalTasks {
			return d.ToggleCriticalTasks()
		}
		done, err := d.Task(kind)
		if err != nil {
			return err
		}
		return d.SetTask(kind, !done)
	})
}

// editDay applies fn to the shown day and saves it.
func (m *Model) editDay(fn func(d *models.Day) error) {
	d := m.day()
	if d == nil {
		m.status = warningStyle.Render("Today is not part of the challenge.")
		return
	}
	if err := fn(d); err != nil {
		if errors.Is(err, models.ErrCriticalTasksNotReady) {
			m.status = warningStyle.Render("Add both critical tasks first (press c).")
			return
		}
		m.status = dangerStyle.Render(apperrors.Format(err))
		return
	}
	if err := m.store.SaveDay(m.challenge.ID, d); err != nil {
		m.status = dangerStyle.Render(apperrors.Format(err))
		return
	}
	logger.WithChallenge(m.challenge.ID).Debug("Day updated", "day", d.Number, "completed", d.CompletedTasks())

	m.status = ""
	if d.AllTasksCompleted() {
		m.status = "🎉 All tasks completed for today! Congratulations!"
	}
}

func (m *Model) startChallenge() {
	c := models.NewChallenge(m.now)
	c.DaysBeforeGrade = m.settings.DaysBeforeGrade
	if err := m.store.SaveChallenge(c); err != nil {
		m.status = dangerStyle.Render(apperrors.Format(err))
		return
	}
	logger.WithChallenge(c.ID).Info("Challenge started", "start", c.StartDate.Format(constants.DateFormat))
	m.reload()
	m.cursor = 0
	m.status = fmt.Sprintf("✓ Challenge started: %s → %s",
		c.StartDate.Format(constants.DateFormat), c.EndDate.Format(constants.DateFormat))
}

func (m *Model) quitChallenge() {
	c := m.challenge
	if !c.Quit(m.now) {
		m.status = warningStyle.Render("The challenge can no longer be quit; its last day is " + c.EndDate.Format(constants.DateFormat) + ".")
		return
	}
	if err := m.store.SaveChallenge(c); err != nil {
		m.status = dangerStyle.Render(apperrors.Format(err))
		return
	}
	days := c.DaysCompleted(m.now)
	logger.WithChallenge(c.ID).Info("Challenge quit", "day", days)
	m.reload()
	m.status = fmt.Sprintf("Challenge quit after %d days.", days)
}

func (m *Model) exportSelected() {
	if len(m.history) == 0 {
		return
	}
	c := m.history[m.historyCursor]
	path, err := export.WriteFile(m.exportDir, c)
	if err != nil {
		m.status = dangerStyle.Render(apperrors.Format(err))
		return
	}
	logger.WithChallenge(c.ID).Info("Challenge exported", "path", path)
	m.status = "✓ Exported to " + path
}

func (m Model) openCriticalForm() (tea.Model, tea.Cmd) {
	d := m.day()
	if d == nil {
		return m, nil
	}
	m.criticalForm = &CriticalFormModel{One: d.CriticalTaskOne(), Two: d.CriticalTaskTwo()}
	m.form = NewCriticalForm(m.criticalForm)
	return m.enterForm(constants.StateEditCritical)
}

func (m Model) openNoteForm() (tea.Model, tea.Cmd) {
	d := m.day()
	if d == nil {
		return m, nil
	}
	m.noteForm = &NoteFormModel{Note: d.Note}
	m.form = NewNoteForm(m.noteForm)
	return m.enterForm(constants.StateEditNote)
}

func (m Model) openQuitForm() (tea.Model, tea.Cmd) {
	m.confirmationForm = &ConfirmationFormModel{}
	m.form = NewQuitChallengeForm(m.confirmationForm, m.challenge.DaysCompleted(m.now))
	return m.enterForm(constants.StateConfirmQuit)
}

func (m Model) enterForm(state constants.SessionState) (tea.Model, tea.Cmd) {
	m.previousState = m.state
	m.state = state
	m.status = ""
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.closeForm()
	case huh.StateAborted:
		m.closeForm()
	}
	return m, cmd
}

// applyForm saves the values of the completed form for the current state.
func (m *Model) applyForm() {
	switch m.state {
	case constants.StateEditCritical:
		one := strings.TrimSpace(m.criticalForm.One)
		two := strings.TrimSpace(m.criticalForm.Two)
		m.editDay(func(d *models.Day) error {
			d.SetCriticalTaskOne(one)
			d.SetCriticalTaskTwo(two)
			return nil
		})
	case constants.StateEditNote:
		note := strings.TrimSpace(m.noteForm.Note)
		m.editDay(func(d *models.Day) error {
			d.Note = note
			return nil
		})
	case constants.StateConfirmQuit:
		if m.confirmationForm.Confirmed {
			m.quitChallenge()
		}
	}
}

func (m *Model) closeForm() {
	m.state = m.previousState
	m.form = nil
	m.criticalForm = nil
	m.noteForm = nil
	m.confirmationForm = nil
}
