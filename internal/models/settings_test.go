package models

import (
	"testing"

	"github.com/julianstephens/eighty/internal/constants"
)

func TestSettingsMapRoundTrip(t *testing.T) {
	want := Settings{
		Timezone:               "Europe/Berlin",
		CarryOverCriticalTasks: true,
		RemindersEnabled:       false,
		ReminderTime:           "07:15",
		ReminderCap:            10,
		DaysBeforeGrade:        5,
	}
	got, err := MapToSettings(SettingsToMap(want))
	if err != nil {
		t.Fatalf("MapToSettings() error = %v", err)
	}
	if got != want {
		t.Errorf("MapToSettings() = %+v, want %+v", got, want)
	}
}

func TestMapToSettings_InvalidNumber(t *testing.T) {
	_, err := MapToSettings(map[string]string{constants.SettingReminderCap: "lots"})
	if err == nil {
		t.Fatal("expected error for non-numeric reminder_cap")
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	s := Settings{ReminderTime: "06:00"}
	ApplyDefaultSettings(&s)
	if s.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q", s.Timezone)
	}
	if s.ReminderTime != "06:00" {
		t.Errorf("ReminderTime overwritten: %q", s.ReminderTime)
	}
	if s.ReminderCap != constants.DefaultReminderCap || s.DaysBeforeGrade != constants.DefaultDaysBeforeGrade {
		t.Errorf("numeric defaults not applied: %+v", s)
	}
	if d := DefaultSettings(); !d.RemindersEnabled || d.CarryOverCriticalTasks {
		t.Errorf("DefaultSettings() = %+v", d)
	}
}
