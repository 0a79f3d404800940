package keyring

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/eighty/internal/constants"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Source names where a connection string came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "environment"
	SourceKeyring Source = "keyring"
	SourceDefault Source = "default"
)

// getenv is swapped in tests.
var getenv = os.Getenv

// GetConnectionString retrieves the database connection string from the OS
// keyring. Returns ErrNotFound if no credentials are stored.
func GetConnectionString() (string, error) {
	connStr, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

// SetConnectionString stores the database connection string in the OS keyring.
func SetConnectionString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

// DeleteConnectionString removes the database connection string from the OS keyring.
func DeleteConnectionString() error {
	if err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable is a best-effort check that the OS keyring answers reads.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// ResolveConnection picks the database location. An explicit --config value
// wins, then EIGHTY_DB_CONNECTION, then the keyring, then the default SQLite
// path. An unavailable keyring is treated as empty.
func ResolveConnection(flagValue string) (string, Source) {
	if flagValue != "" && flagValue != constants.DefaultConfigPath {
		return flagValue, SourceFlag
	}
	if env := strings.TrimSpace(getenv(constants.ConnectionEnvVar)); env != "" {
		return env, SourceEnv
	}
	if connStr, err := GetConnectionString(); err == nil && connStr != "" {
		return connStr, SourceKeyring
	}
	return constants.DefaultConfigPath, SourceDefault
}

// MaskPassword hides the password of a URL or DSN connection string for
// display.
func MaskPassword(connStr string) string {
	if schemeEnd := strings.Index(connStr, "://"); schemeEnd >= 0 {
		rest := connStr[schemeEnd+3:]
		at := strings.LastIndex(rest, "@")
		if at < 0 {
			return connStr
		}
		userInfo := rest[:at]
		colon := strings.Index(userInfo, ":")
		if colon < 0 {
			return connStr
		}
		return connStr[:schemeEnd+3] + userInfo[:colon] + ":****" + rest[at:]
	}

	parts := strings.Fields(connStr)
	masked := false
	for i, part := range parts {
		if kv := strings.SplitN(part, "=", 2); len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			parts[i] = kv[0] + "=****"
			masked = true
		}
	}
	if !masked {
		return connStr
	}
	return strings.Join(parts, " ")
}
