// Package export renders a challenge's day history as a CSV document.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/models"
)

// Header is the fixed column order of the export.
var Header = []string{
	"Day",
	"Water Task",
	"Workout Task",
	"Diet Task",
	"Alcohol Task",
	"Read Task",
	"Cold Shower Task",
	"Meditate Task",
	"Social Media Task",
	"Critical Tasks",
	"Critical Task One",
	"Critical Task Two",
}

// CSV renders the challenge as CSV: the header followed by one row per day
// number 1..80. Day numbers missing from c.Days get a row with only the
// number filled in. Every field is quoted and rows are separated by "\n"
// with no trailing newline.
func CSV(c *models.Challenge) []byte {
	byNumber := make(map[int]*models.Day, len(c.Days))
	for _, d := range c.Days {
		if d != nil {
			byNumber[d.Number] = d
		}
	}

	var buf bytes.Buffer
	writeRow(&buf, Header)
	for n := 1; n <= constants.ChallengeDays; n++ {
		buf.WriteByte('\n')
		writeRow(&buf, Row(n, byNumber[n]))
	}
	return buf.Bytes()
}

// Row returns the export fields for day number n. A nil day yields a blank
// row carrying only the number.
func Row(n int, d *models.Day) []string {
	row := make([]string, len(Header))
	row[0] = strconv.Itoa(n)
	if d == nil {
		return row
	}
	row[1] = mark(d.DrankWater)
	row[2] = mark(d.WorkedOut)
	row[3] = mark(d.FollowedDiet)
	row[4] = mark(d.UnderDrinkLimit)
	row[5] = mark(d.Read)
	row[6] = mark(d.ColdShower)
	row[7] = mark(d.Meditated)
	row[8] = mark(d.SocialMediaLimit)
	row[9] = mark(d.DidCriticalTasks())
	row[10] = d.CriticalTaskOne()
	row[11] = d.CriticalTaskTwo()
	return row
}

// FileName returns the export file name for a challenge id.
func FileName(id string) string {
	return constants.ExportFilePrefix + id + constants.ExportFileSuffix
}

// WriteFile writes the export of c into dir, replacing any previous export
// of the same challenge. It returns the path written.
func WriteFile(dir string, c *models.Challenge) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, FileName(c.ID))
	tmp, err := os.CreateTemp(dir, ".export-*.csv")
	if err != nil {
		return "", fmt.Errorf("failed to create temp export file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(CSV(c)); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close export: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to move export into place: %w", err)
	}
	return path, nil
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
}

func mark(done bool) string {
	if done {
		return "X"
	}
	return ""
}
