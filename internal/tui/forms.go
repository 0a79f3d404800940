package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// NewCriticalForm edits the two critical task texts of a day.
func NewCriticalForm(fm *CriticalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Critical task 1").
				Description("Leave empty to clear it").
				Value(&fm.One),
			huh.NewInput().
				Title("Critical task 2").
				Description("Leave empty to clear it").
				Value(&fm.Two),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewNoteForm edits the note of a day.
func NewNoteForm(fm *NoteFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Note").
				CharLimit(1000).
				Value(&fm.Note),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewQuitChallengeForm asks before giving up the challenge in progress.
func NewQuitChallengeForm(fm *ConfirmationFormModel, day int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Quit the challenge on day %d?", day)).
				Description("This cannot be undone.").
				Affirmative("Quit").
				Negative("Keep going").
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}
