package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Quit      key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	Toggle    key.Binding
	ToggleOne key.Binding
	ToggleTwo key.Binding
	Critical  key.Binding
	Note      key.Binding
	Start     key.Binding
	GiveUp    key.Binding
	Export    key.Binding
	Help      key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help},
		{k.Up, k.Down, k.PrevDay, k.NextDay},
		{k.Toggle, k.ToggleOne, k.ToggleTwo, k.Critical, k.Note, k.Start, k.GiveUp, k.Export},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " ", "x"),
			key.WithHelp("enter/x", "toggle task"),
		),
		ToggleOne: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "toggle critical 1"),
		),
		ToggleTwo: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "toggle critical 2"),
		),
		Critical: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "edit critical tasks"),
		),
		Note: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "edit note"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start challenge"),
		),
		GiveUp: key.NewBinding(
			key.WithKeys("Q"),
			key.WithHelp("Q", "quit challenge"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}
