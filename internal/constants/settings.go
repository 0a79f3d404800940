package constants

const (
	SettingTimezone               = "timezone"
	SettingCarryOverCriticalTasks = "carry_over_critical_tasks"
	SettingRemindersEnabled       = "reminders_enabled"
	SettingReminderTime           = "reminder_time"
	SettingReminderCap            = "reminder_cap"
	SettingDaysBeforeGrade        = "days_before_grade"

	// Default Settings Values
	DefaultTimezone               = "Local" // Use system local timezone by default
	DefaultCarryOverCriticalTasks = false
	DefaultRemindersEnabled       = true
	DefaultReminderTime           = "20:00"
	DefaultReminderCap            = 64 // pending-notification ceiling of the mobile app
)
