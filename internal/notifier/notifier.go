package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/reminder"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
	trayHost          = "127.0.0.1"
	retryDelay        = constants.NotifyRetryDelay
)

// ErrTrayNotRunning means no usable tray companion lockfile or process was found.
var ErrTrayNotRunning = errors.New("eighty-tray is not running")

type Notifier struct {
	client *http.Client
}

type WebhookPayload struct {
	Title      string `json:"title,omitempty"`
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func New() *Notifier {
	return &Notifier{client: &http.Client{Timeout: 5 * time.Second}}
}

// Notify delivers a reminder to the tray companion, retrying transient send
// failures.
func (n *Notifier) Notify(ctx context.Context, r reminder.Reminder) error {
	trayAppConfigPath, err := GetTrayAppConfigDir()
	if err != nil {
		return err
	}

	port, secret, err := findAndValidateTrayProcess(filepath.Join(trayAppConfigPath, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	payload := WebhookPayload{
		Title:      r.Title,
		Text:       r.Body,
		DurationMs: constants.NotificationDurationMs,
	}

	var lastErr error
	for attempt := 1; attempt <= constants.NotifyMaxRetries; attempt++ {
		if lastErr = n.send(ctx, port, secret, payload); lastErr == nil {
			return nil
		}
		logger.Warn("Notification attempt failed", "attempt", attempt, "error", lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return fmt.Errorf("notification failed after %d attempts: %w", constants.NotifyMaxRetries, lastErr)
}

// GetTrayAppConfigDir returns the configuration directory used by the tray
// application, honoring a custom lockfile_dir from its settings.json.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(trayConfigDir, "settings.json"))
	if err != nil {
		return trayConfigDir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &store); err == nil {
		if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
			return *store.Settings.LockfileDir, nil
		}
	}
	return trayConfigDir, nil
}

// findAndValidateTrayProcess reads a "port|pid|secret" lockfile and checks
// that pid belongs to the tray executable.
func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", ErrTrayNotRunning
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := strings.TrimSpace(parts[0])
	if port == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", ErrTrayNotRunning
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayExecutablePrefix) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayExecutablePrefix, process.Executable())
	}

	return port, secret, nil
}

func (n *Notifier) send(ctx context.Context, port, secret string, payload WebhookPayload) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := "http://" + net.JoinHostPort(trayHost, port)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Eighty-Secret", secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
