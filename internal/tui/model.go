package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/storage"
	"github.com/julianstephens/eighty/internal/utils"
)

// tabs are the top-level views in tab order.
var tabs = []constants.SessionState{
	constants.StateToday,
	constants.StateOverview,
	constants.StateHistory,
}

var tabTitles = map[constants.SessionState]string{
	constants.StateToday:    "Today",
	constants.StateOverview: "Overview",
	constants.StateHistory:  "History",
}

type CriticalFormModel struct {
	One string
	Two string
}

type NoteFormModel struct {
	Note string
}

type ConfirmationFormModel struct {
	Confirmed bool
}

type Model struct {
	store storage.Provider
	clock func() time.Time

	settings  models.Settings
	now       time.Time
	challenge *models.Challenge // nil when no challenge is in progress
	history   []*models.Challenge

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	dayNumber     int // day shown on the Today tab
	cursor        int // index into models.Tasks
	historyCursor int
	exportDir     string

	form             *huh.Form
	criticalForm     *CriticalFormModel
	noteForm         *NoteFormModel
	confirmationForm *ConfirmationFormModel

	status   string // one-line feedback under the content
	err      error
	quitting bool
	width    int
	height   int
}

// NewModel loads the settings, the challenge in progress and the challenge
// history. A nil clock means time.Now.
func NewModel(store storage.Provider, clock func() time.Time) Model {
	if clock == nil {
		clock = time.Now
	}
	m := Model{
		store:     store,
		clock:     clock,
		state:     constants.StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		exportDir: ".",
	}
	m.reload()
	return m
}

// reload refreshes everything from the store as of the current time.
func (m *Model) reload() {
	settings, err := m.store.GetSettings()
	if err != nil {
		m.err = err
		return
	}
	m.settings = settings
	m.now = m.currentTime()

	ch, res, err := storage.LoadActive(m.store, settings, m.now)
	switch {
	case errors.Is(err, storage.ErrNoActiveChallenge):
		m.challenge = nil
		m.dayNumber = 0
	case err != nil:
		m.err = err
		return
	case res.Finished:
		m.challenge = nil
		m.dayNumber = 0
		m.status = "🎉 Your challenge has ended and was marked completed."
	default:
		m.challenge = ch
		m.dayNumber = 0
		if d := ch.CurrentDay(m.now); d != nil {
			m.dayNumber = d.Number
		}
		if res.CarriedOver {
			m.status = "Carried over yesterday's critical tasks."
		}
	}

	history, err := m.store.GetAllChallenges()
	if err != nil {
		m.err = err
		return
	}
	for _, c := range history {
		c.DaysBeforeGrade = settings.DaysBeforeGrade
	}
	m.history = history
	if m.historyCursor >= len(history) {
		m.historyCursor = max(0, len(history)-1)
	}
	m.err = nil
}

func (m Model) currentTime() time.Time {
	now := m.clock()
	if loc, err := utils.LoadLocation(m.settings.Timezone); err == nil {
		now = now.In(loc)
	} else {
		logger.Warn("Invalid timezone in settings", "timezone", m.settings.Timezone, "error", err)
	}
	return now
}

// day returns the day shown on the Today tab, or nil.
func (m Model) day() *models.Day {
	if m.challenge == nil || m.dayNumber == 0 {
		return nil
	}
	return m.challenge.Day(m.dayNumber)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateToday:
		if m.challenge == nil {
			keys = append(keys, m.keys.Start)
		} else {
			keys = append(keys, m.keys.Toggle, m.keys.Critical, m.keys.Note)
		}
	case constants.StateHistory:
		keys = append(keys, m.keys.Export)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	switch m.state {
	case constants.StateToday:
		navigation = append(navigation, m.keys.PrevDay, m.keys.NextDay)
		if m.challenge == nil {
			actions = []key.Binding{m.keys.Start}
		} else {
			actions = []key.Binding{m.keys.Toggle, m.keys.ToggleOne, m.keys.ToggleTwo, m.keys.Critical, m.keys.Note, m.keys.GiveUp}
		}
	case constants.StateHistory:
		actions = []key.Binding{m.keys.Export}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tick()
}
