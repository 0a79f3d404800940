package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "eighty"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/eighty/eighty.db"
	ConnectionEnvVar   = "EIGHTY_DB_CONNECTION"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Challenge constants
	ChallengeDays          = 80
	TasksPerDay            = 9
	DefaultDaysBeforeGrade = 3

	// Export constants
	ExportFilePrefix = "80Hard-"
	ExportFileSuffix = ".csv"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "eighty-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "eighty-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.eighty"
	TrayExecutablePrefix   = "eighty-tray"
)

// Session States
const (
	StateToday SessionState = iota
	StateOverview
	StateHistory
	StateEditCritical
	StateEditNote
	StateConfirmQuit
)
