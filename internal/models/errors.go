package models

import "errors"

var (
	// ErrCriticalTasksNotReady is returned when a critical task is checked
	// off before its text has been filled in.
	ErrCriticalTasksNotReady = errors.New("critical tasks are not ready")
	// ErrStartInFuture is returned when a challenge start date is after today.
	ErrStartInFuture = errors.New("challenge start date is in the future")
	// ErrUnknownTask is returned for task names outside the catalog.
	ErrUnknownTask = errors.New("unknown task")
	// ErrInvalidDays is returned when a stored day set violates the
	// challenge layout.
	ErrInvalidDays = errors.New("invalid challenge days")
)
