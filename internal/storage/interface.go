package storage

import (
	"errors"

	"github.com/julianstephens/eighty/internal/models"
)

var (
	// ErrNotFound is returned when a challenge or day does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoActiveChallenge is returned when no challenge is in progress.
	ErrNoActiveChallenge = errors.New("no challenge in progress")
	// ErrNotInitialized is returned by Load before 'eighty init' has run.
	ErrNotInitialized = errors.New("storage not initialized")
)

// Provider persists challenges, their days, and application settings.
// Deleting a challenge deletes its days in the same transaction.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Challenges
	//
	// SaveChallenge upserts the challenge row and all of its days.
	SaveChallenge(*models.Challenge) error
	GetChallenge(id string) (*models.Challenge, error)
	// GetActiveChallenge returns the in-progress challenge, or
	// ErrNoActiveChallenge.
	GetActiveChallenge() (*models.Challenge, error)
	// GetAllChallenges returns every challenge, newest first.
	GetAllChallenges() ([]*models.Challenge, error)
	DeleteChallenge(id string) error

	// Days
	//
	// SaveDay updates a single day of a stored challenge.
	SaveDay(challengeID string, day *models.Day) error

	// Utils
	GetConfigPath() string
}
