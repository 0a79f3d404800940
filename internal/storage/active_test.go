package storage_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/storage"
	"github.com/julianstephens/eighty/internal/storage/sqlite"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s := sqlite.NewStore(filepath.Join(t.TempDir(), "eighty.db"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadActiveNone(t *testing.T) {
	s := newStore(t)
	_, _, err := storage.LoadActive(s, models.DefaultSettings(), time.Now())
	if !errors.Is(err, storage.ErrNoActiveChallenge) {
		t.Errorf("LoadActive() error = %v, want ErrNoActiveChallenge", err)
	}
}

func TestLoadActiveFinishesExpiredChallenge(t *testing.T) {
	s := newStore(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	c := models.NewChallenge(now.AddDate(0, 0, -90))
	if err := s.SaveChallenge(c); err != nil {
		t.Fatal(err)
	}

	got, res, err := storage.LoadActive(s, models.DefaultSettings(), now)
	if err != nil {
		t.Fatalf("LoadActive() error = %v", err)
	}
	if !res.Finished || got.Status != models.StatusCompleted {
		t.Fatalf("LoadActive() = %q, %+v; want finished", got.Status, res)
	}

	stored, err := s.GetChallenge(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != models.StatusCompleted {
		t.Errorf("stored status = %q, want completed", stored.Status)
	}
	if _, err := s.GetActiveChallenge(); !errors.Is(err, storage.ErrNoActiveChallenge) {
		t.Errorf("GetActiveChallenge() error = %v, want ErrNoActiveChallenge", err)
	}
}

func TestLoadActiveCarriesOver(t *testing.T) {
	s := newStore(t)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	c := models.NewChallenge(now.AddDate(0, 0, -1))
	c.Day(1).SetCriticalTaskOne("file taxes")
	c.Day(1).SetCriticalTaskTwo("call mom")
	if err := s.SaveChallenge(c); err != nil {
		t.Fatal(err)
	}

	settings := models.DefaultSettings()
	settings.DaysBeforeGrade = 1

	_, res, err := storage.LoadActive(s, settings, now)
	if err != nil || res.CarriedOver {
		t.Fatalf("carry-over disabled: res = %+v, err = %v", res, err)
	}

	settings.CarryOverCriticalTasks = true
	got, res, err := storage.LoadActive(s, settings, now)
	if err != nil {
		t.Fatalf("LoadActive() error = %v", err)
	}
	if !res.CarriedOver {
		t.Fatal("LoadActive() did not carry over")
	}
	if got.DaysBeforeGrade != 1 {
		t.Errorf("DaysBeforeGrade = %d, want 1", got.DaysBeforeGrade)
	}

	stored, _ := s.GetChallenge(c.ID)
	if d := stored.Day(2); d.CriticalTaskOne() != "file taxes" || d.CriticalTaskTwo() != "call mom" {
		t.Errorf("stored day 2 critical tasks = %q, %q", d.CriticalTaskOne(), d.CriticalTaskTwo())
	}
}
