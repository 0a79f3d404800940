package models

import (
	"fmt"

	"github.com/julianstephens/eighty/internal/constants"
)

// Settings represents application-wide settings
type Settings struct {
	Timezone               string `json:"timezone"`                  // IANA timezone name, or "Local" for the system timezone
	CarryOverCriticalTasks bool   `json:"carry_over_critical_tasks"` // copy yesterday's critical tasks into today
	RemindersEnabled       bool   `json:"reminders_enabled"`         // whether daily reminders are scheduled
	ReminderTime           string `json:"reminder_time"`             // daily reminder time, e.g. "20:00"
	ReminderCap            int    `json:"reminder_cap"`              // maximum number of reminders scheduled ahead
	DaysBeforeGrade        int    `json:"days_before_grade"`         // days reached before a grade is shown
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingCarryOverCriticalTasks:
			settings.CarryOverCriticalTasks = value == "true"
		case constants.SettingRemindersEnabled:
			settings.RemindersEnabled = value == "true"
		case constants.SettingReminderTime:
			settings.ReminderTime = value
		case constants.SettingReminderCap:
			if _, err := fmt.Sscanf(value, "%d", &settings.ReminderCap); err != nil {
				return Settings{}, fmt.Errorf("parsing reminder_cap: %w", err)
			}
		case constants.SettingDaysBeforeGrade:
			if _, err := fmt.Sscanf(value, "%d", &settings.DaysBeforeGrade); err != nil {
				return Settings{}, fmt.Errorf("parsing days_before_grade: %w", err)
			}
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:               settings.Timezone,
		constants.SettingCarryOverCriticalTasks: fmt.Sprintf("%v", settings.CarryOverCriticalTasks),
		constants.SettingRemindersEnabled:       fmt.Sprintf("%v", settings.RemindersEnabled),
		constants.SettingReminderTime:           settings.ReminderTime,
		constants.SettingReminderCap:            fmt.Sprintf("%d", settings.ReminderCap),
		constants.SettingDaysBeforeGrade:        fmt.Sprintf("%d", settings.DaysBeforeGrade),
	}
}

// DefaultSettings returns the settings written by a fresh init.
func DefaultSettings() Settings {
	return Settings{
		Timezone:               constants.DefaultTimezone,
		CarryOverCriticalTasks: constants.DefaultCarryOverCriticalTasks,
		RemindersEnabled:       constants.DefaultRemindersEnabled,
		ReminderTime:           constants.DefaultReminderTime,
		ReminderCap:            constants.DefaultReminderCap,
		DaysBeforeGrade:        constants.DefaultDaysBeforeGrade,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
// Boolean settings have no "missing" state and are left alone.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.ReminderTime == "" {
		settings.ReminderTime = constants.DefaultReminderTime
	}
	if settings.ReminderCap == 0 {
		settings.ReminderCap = constants.DefaultReminderCap
	}
	if settings.DaysBeforeGrade == 0 {
		settings.DaysBeforeGrade = constants.DefaultDaysBeforeGrade
	}
}
