package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/keyring"
	"github.com/julianstephens/eighty/internal/storage"
	"github.com/julianstephens/eighty/internal/storage/postgres"
	"github.com/julianstephens/eighty/internal/storage/sqlite"
)

// ErrEmbeddedCredentials explains the ways to supply a PostgreSQL password.
var ErrEmbeddedCredentials = errors.New("PostgreSQL connection strings passed with --config must not embed a password; " +
	"store it with 'eighty keyring set', export " + constants.ConnectionEnvVar + ", or use ~/.pgpass")

// OpenStore picks the storage backend for a location: a PostgreSQL URL or
// DSN, or a SQLite file path with ~ expanded. Passwords are only accepted
// from the keyring or the environment, never from the command line.
func OpenStore(location string, source keyring.Source) (storage.Provider, error) {
	if postgres.IsConnString(location) || strings.Contains(location, "host=") {
		if _, err := postgres.ValidateConnString(location); err != nil {
			if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, err
			}
			if source == keyring.SourceFlag {
				return nil, ErrEmbeddedCredentials
			}
		}
		return postgres.New(location), nil
	}

	path, err := ExpandPath(location)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// ExpandPath resolves a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
