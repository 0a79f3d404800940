package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/storage/sqlite"
)

// setupTestDB creates an initialized store holding one challenge.
func setupTestDB(t *testing.T) (string, *models.Challenge) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "eighty.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer store.Close()

	c := models.NewChallenge(time.Date(2026, 5, 1, 9, 0, 0, 0, time.Local))
	c.Day(1).DrankWater = true
	if err := store.SaveChallenge(c); err != nil {
		t.Fatalf("SaveChallenge() error = %v", err)
	}
	return dbPath, c
}

// fixedClock returns a clock that advances by step on every call.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

func countChallenges(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM challenges").Scan(&n); err != nil {
		t.Fatalf("query %s: %v", path, err)
	}
	return n
}

func TestCreateBackup(t *testing.T) {
	dbPath, _ := setupTestDB(t)
	mgr := NewManager(dbPath)

	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if filepath.Dir(path) != mgr.Dir() {
		t.Errorf("backup written to %s, want dir %s", path, mgr.Dir())
	}
	if !strings.HasPrefix(filepath.Base(path), constants.BackupFilePrefix) {
		t.Errorf("backup name = %s", filepath.Base(path))
	}
	if got := countChallenges(t, path); got != 1 {
		t.Errorf("backup holds %d challenges, want 1", got)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup() error = nil for missing database")
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	dbPath, _ := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = func() time.Time { return time.Date(2026, 5, 1, 10, 30, 15, 0, time.Local) }

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() #%d error = %v", i, err)
		}
		if seen[path] {
			t.Fatalf("duplicate backup path %s", path)
		}
		seen[path] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 4 {
		t.Errorf("ListBackups() returned %d, want 4", len(backups))
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath, _ := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = fixedClock(time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local), 24*time.Hour)

	var first string
	for i := 0; i < constants.MaxBackups+3; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() #%d error = %v", i, err)
		}
		if i == 0 {
			first = path
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("kept %d backups, want %d", len(backups), constants.MaxBackups)
	}
	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Errorf("oldest backup %s survived rotation", first)
	}
}

func TestListBackups(t *testing.T) {
	dbPath, _ := setupTestDB(t)
	mgr := NewManager(dbPath)

	empty, err := mgr.ListBackups()
	if err != nil || len(empty) != 0 {
		t.Fatalf("ListBackups() before any backup = %v, %v", empty, err)
	}
	if _, err := mgr.Latest(); err != ErrNoBackups {
		t.Errorf("Latest() error = %v, want ErrNoBackups", err)
	}

	mgr.now = fixedClock(time.Date(2026, 5, 1, 8, 0, 0, 0, time.Local), time.Hour)
	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatal(err)
		}
	}
	// Unrelated files are ignored.
	for _, name := range []string{"notes.txt", constants.BackupFilePrefix + "garbage.db"} {
		if err := os.WriteFile(filepath.Join(mgr.Dir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("ListBackups() returned %d, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if !backups[i-1].Timestamp.After(backups[i].Timestamp) {
			t.Errorf("backups not sorted newest first: %v", backups)
		}
	}
	latest, err := mgr.Latest()
	if err != nil || latest.Path != backups[0].Path {
		t.Errorf("Latest() = %v, %v", latest, err)
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
		want time.Time
	}{
		{"eighty-20260501-1030.db", true, time.Date(2026, 5, 1, 10, 30, 0, 0, time.Local)},
		{"eighty-20260501-103015.db", true, time.Date(2026, 5, 1, 10, 30, 15, 0, time.Local)},
		{"eighty-20260501-103015-2.db", true, time.Date(2026, 5, 1, 10, 30, 15, 0, time.Local)},
		{"eighty-20260501.db", false, time.Time{}},
		{"other-20260501-1030.db", false, time.Time{}},
		{"eighty-20260501-1030.sqlite", false, time.Time{}},
	}
	for _, tt := range tests {
		got, ok := parseName(tt.name)
		if ok != tt.ok || !got.Equal(tt.want) {
			t.Errorf("parseName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath, c := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = fixedClock(time.Date(2026, 5, 1, 8, 0, 0, 0, time.Local), time.Minute)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	// Delete the challenge after the backup was taken.
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteChallenge(c.ID); err != nil {
		t.Fatal(err)
	}
	store.Close()
	if got := countChallenges(t, dbPath); got != 0 {
		t.Fatalf("challenges after delete = %d", got)
	}

	previous, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}
	if previous == "" {
		t.Error("RestoreBackup() did not back up the current database")
	} else if got := countChallenges(t, previous); got != 0 {
		t.Errorf("pre-restore backup holds %d challenges, want 0", got)
	}

	restored := sqlite.NewStore(dbPath)
	if err := restored.Load(); err != nil {
		t.Fatal(err)
	}
	defer restored.Close()
	got, err := restored.GetChallenge(c.ID)
	if err != nil {
		t.Fatalf("GetChallenge() after restore error = %v", err)
	}
	if !got.Day(1).DrankWater {
		t.Error("restored day 1 lost its progress")
	}
}

func TestRestoreRejectsInvalidBackups(t *testing.T) {
	dbPath, _ := setupTestDB(t)
	mgr := NewManager(dbPath)
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.db")
	if err := os.WriteFile(garbage, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}

	foreign := filepath.Join(dir, "foreign.db")
	db, err := sql.Open("sqlite", foreign)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("CREATE TABLE other (id INTEGER)"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	for _, path := range []string{garbage, foreign, filepath.Join(dir, "missing.db")} {
		if _, err := mgr.RestoreBackup(path); err == nil {
			t.Errorf("RestoreBackup(%s) error = nil", filepath.Base(path))
		}
	}
	if got := countChallenges(t, dbPath); got != 1 {
		t.Errorf("database changed after rejected restores: %d challenges", got)
	}
}
