package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/storage"
)

// Format formats an error message with a consistent "Error: " prefix.
// Policy rejections from the challenge engine get their user-facing hint
// appended.
func Format(err error) string {
	if err == nil {
		return ""
	}
	if hint := Hint(err); hint != "" {
		return fmt.Sprintf("Error: %v\n%s", err, hint)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a short suggestion for errors the user can fix, or "".
func Hint(err error) string {
	switch {
	case stderrors.Is(err, models.ErrCriticalTasksNotReady):
		return "Not quite yet: make sure all your critical tasks are added and checked off before finishing."
	case stderrors.Is(err, storage.ErrNoActiveChallenge):
		return "Start one with 'eighty start' (or 'eighty start --date YYYY-MM-DD' if you already started)."
	case stderrors.Is(err, storage.ErrNotInitialized):
		return "Run 'eighty init' first."
	case stderrors.Is(err, models.ErrStartInFuture):
		return "Pick today or a past date."
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
