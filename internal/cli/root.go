package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/eighty/internal/backup"
	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/storage"
	"github.com/julianstephens/eighty/internal/utils"
)

// ErrNoCurrentDay is returned when today falls outside the challenge window.
var ErrNoCurrentDay = errors.New("today is not part of the challenge")

type Context struct {
	Store storage.Provider

	// Out, In and Clock default to stdout, stdin and time.Now.
	Out   io.Writer
	In    io.Reader
	Clock func() time.Time
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Confirm asks a yes/no question on In. Anything but y/yes is a no.
func (c *Context) Confirm(prompt string) (bool, error) {
	in := c.In
	if in == nil {
		in = os.Stdin
	}
	c.Printf("%s [y/N]: ", prompt)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// Now returns the current time in the configured timezone.
func (c *Context) Now(settings models.Settings) (time.Time, error) {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	clock := c.Clock
	if clock == nil {
		clock = time.Now
	}
	return clock().In(loc), nil
}

// Session is the state most commands start from.
type Session struct {
	Settings  models.Settings
	Now       time.Time
	Challenge *models.Challenge
}

// Settings loads the stored settings and the current time.
func (c *Context) Settings() (models.Settings, time.Time, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return models.Settings{}, time.Time{}, fmt.Errorf("failed to get settings: %w", err)
	}
	now, err := c.Now(settings)
	if err != nil {
		return models.Settings{}, time.Time{}, err
	}
	return settings, now, nil
}

// Active loads the in-progress challenge as of now. See storage.LoadActive.
func (c *Context) Active() (*Session, error) {
	settings, now, err := c.Settings()
	if err != nil {
		return nil, err
	}
	ch, res, err := storage.LoadActive(c.Store, settings, now)
	if err != nil {
		return nil, err
	}
	if res.Finished {
		c.Printf("🎉 Your challenge ended on %s and has been marked completed.\n", ch.EndDate.Format(constants.DateFormat))
	}
	return &Session{Settings: settings, Now: now, Challenge: ch}, nil
}

// Day returns day number n, or today's day when n is 0. Days that are not
// yet reachable are rejected.
func (s *Session) Day(n int) (*models.Day, error) {
	if n == 0 {
		d := s.Challenge.CurrentDay(s.Now)
		if d == nil {
			return nil, ErrNoCurrentDay
		}
		return d, nil
	}
	d := s.Challenge.Day(n)
	if d == nil {
		return nil, fmt.Errorf("day must be between 1 and %d, got %d", constants.ChallengeDays, n)
	}
	if !d.IsAccessible(s.Now) {
		return nil, fmt.Errorf("day %d (%s) is not accessible yet", n, d.Date.Format(constants.DateFormat))
	}
	return d, nil
}

// PerformAutomaticBackup backs up a SQLite database and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if path == "postgresql" {
		return
	}
	if _, err := backup.NewManager(path).CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
