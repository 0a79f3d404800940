package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/utils"
)

// DayColumns is the column list shared by every backend's days queries, in
// the order ScanDay and DayValues use.
const DayColumns = `id, number, date,
	drank_water, worked_out, followed_diet, under_drink_limit,
	read, cold_shower, meditated, social_media_limit,
	critical_task_one, critical_task_two, did_critical_task_one, did_critical_task_two,
	note`

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// ScanDay reads one day row selected with DayColumns.
func ScanDay(row RowScanner) (*models.Day, error) {
	var (
		d              models.Day
		date           string
		one, two       string
		didOne, didTwo bool
	)
	err := row.Scan(
		&d.ID, &d.Number, &date,
		&d.DrankWater, &d.WorkedOut, &d.FollowedDiet, &d.UnderDrinkLimit,
		&d.Read, &d.ColdShower, &d.Meditated, &d.SocialMediaLimit,
		&one, &two, &didOne, &didTwo,
		&d.Note,
	)
	if err != nil {
		return nil, err
	}
	if d.Date, err = ParseDate(date); err != nil {
		return nil, fmt.Errorf("day %d: %w", d.Number, err)
	}
	d.RestoreCriticalTasks(one, two, didOne, didTwo)
	return &d, nil
}

// DayValues returns the values of d in DayColumns order.
func DayValues(d *models.Day) []any {
	return []any{
		d.ID, d.Number, FormatDate(d.Date),
		d.DrankWater, d.WorkedOut, d.FollowedDiet, d.UnderDrinkLimit,
		d.Read, d.ColdShower, d.Meditated, d.SocialMediaLimit,
		d.CriticalTaskOne(), d.CriticalTaskTwo(), d.DidCriticalTaskOne(), d.DidCriticalTaskTwo(),
		d.Note,
	}
}

// FormatDate stores a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate loads a stored calendar date at midnight local time.
func ParseDate(s string) (time.Time, error) {
	t, err := utils.ParseDateInLocation(s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored date %q: %w", s, err)
	}
	return t, nil
}

var dayFields = []string{
	"drank_water", "worked_out", "followed_diet", "under_drink_limit",
	"read", "cold_shower", "meditated", "social_media_limit",
	"critical_task_one", "critical_task_two", "did_critical_task_one", "did_critical_task_two",
	"note",
}

// Placeholder renders the n-th (1-based) bind parameter of a dialect.
type Placeholder func(n int) string

// QuestionMark is the SQLite placeholder style.
func QuestionMark(int) string { return "?" }

// Dollar is the PostgreSQL placeholder style.
func Dollar(n int) string { return fmt.Sprintf("$%d", n) }

// UpsertDaySQL inserts a day row for a challenge, or updates its mutable
// fields if the id already exists. Arguments are the challenge id followed
// by DayValues.
func UpsertDaySQL(ph Placeholder) string {
	n := 1 + len(DayValues(&models.Day{}))
	params := make([]string, n)
	for i := range params {
		params[i] = ph(i + 1)
	}
	sets := make([]string, len(dayFields))
	for i, f := range dayFields {
		sets[i] = f + " = excluded." + f
	}
	return "INSERT INTO days (challenge_id, " + DayColumns + ") VALUES (" +
		strings.Join(params, ", ") + ") ON CONFLICT (id) DO UPDATE SET " +
		strings.Join(sets, ", ")
}

// UpdateDaySQL updates the mutable fields of one day. Arguments are the
// DayValues fields after the date, then the challenge id and day number.
func UpdateDaySQL(ph Placeholder) string {
	sets := make([]string, len(dayFields))
	for i, f := range dayFields {
		sets[i] = fmt.Sprintf("%s = %s", f, ph(i+1))
	}
	next := len(dayFields) + 1
	return "UPDATE days SET " + strings.Join(sets, ", ") +
		fmt.Sprintf(" WHERE challenge_id = %s AND number = %s", ph(next), ph(next+1))
}

// UpdateDayArgs returns the arguments for UpdateDaySQL.
func UpdateDayArgs(challengeID string, d *models.Day) []any {
	args := DayValues(d)[3:]
	return append(args, challengeID, d.Number)
}
