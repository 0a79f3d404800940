package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/eighty/internal/models"
	"github.com/julianstephens/eighty/internal/storage"
)

const challengeColumns = "id, start_date, end_date, quit_date, status, created_at"

func (s *Store) SaveChallenge(c *models.Challenge) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var quitDate sql.NullString
	if c.QuitDate != nil {
		quitDate = sql.NullString{String: storage.FormatDate(*c.QuitDate), Valid: true}
	}

	_, err = tx.Exec(`
		INSERT INTO challenges (`+challengeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			quit_date = EXCLUDED.quit_date,
			status = EXCLUDED.status`,
		c.ID,
		storage.FormatDate(c.StartDate),
		storage.FormatDate(c.EndDate),
		quitDate,
		string(c.Status),
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}

	stmt, err := tx.Prepare(storage.UpsertDaySQL(storage.Dollar))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, d := range c.Days {
		args := append([]any{c.ID}, storage.DayValues(d)...)
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to save day %d: %w", d.Number, err)
		}
	}

	return tx.Commit()
}

func (s *Store) SaveDay(challengeID string, d *models.Day) error {
	res, err := s.db.Exec(storage.UpdateDaySQL(storage.Dollar), storage.UpdateDayArgs(challengeID, d)...)
	if err != nil {
		return fmt.Errorf("failed to save day %d: %w", d.Number, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("day %d of challenge %s: %w", d.Number, challengeID, storage.ErrNotFound)
	}
	return nil
}

func (s *Store) GetChallenge(id string) (*models.Challenge, error) {
	row := s.db.QueryRow("SELECT "+challengeColumns+" FROM challenges WHERE id = $1", id)
	c, err := s.scanChallenge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("challenge %s: %w", id, storage.ErrNotFound)
	}
	return c, err
}

func (s *Store) GetActiveChallenge() (*models.Challenge, error) {
	row := s.db.QueryRow(
		"SELECT "+challengeColumns+" FROM challenges WHERE status = $1 ORDER BY created_at DESC LIMIT 1",
		string(models.StatusInProgress),
	)
	c, err := s.scanChallenge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNoActiveChallenge
	}
	return c, err
}

func (s *Store) GetAllChallenges() ([]*models.Challenge, error) {
	rows, err := s.db.Query("SELECT " + challengeColumns + " FROM challenges ORDER BY start_date DESC, created_at DESC")
	if err != nil {
		return nil, err
	}

	var challenges []*models.Challenge
	for rows.Next() {
		c, err := scanChallengeRow(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		challenges = append(challenges, c)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, err
	}

	for _, c := range challenges {
		if err := s.loadDays(c); err != nil {
			return nil, err
		}
	}
	return challenges, nil
}

func (s *Store) DeleteChallenge(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM days WHERE challenge_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete days: %w", err)
	}
	res, err := tx.Exec("DELETE FROM challenges WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("challenge %s: %w", id, storage.ErrNotFound)
	}
	return tx.Commit()
}

func (s *Store) scanChallenge(row storage.RowScanner) (*models.Challenge, error) {
	c, err := scanChallengeRow(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadDays(c); err != nil {
		return nil, err
	}
	return c, nil
}

func scanChallengeRow(row storage.RowScanner) (*models.Challenge, error) {
	var (
		c                  models.Challenge
		start, end, status string
		quitDate           sql.NullString
	)
	if err := row.Scan(&c.ID, &start, &end, &quitDate, &status, &c.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	if c.StartDate, err = storage.ParseDate(start); err != nil {
		return nil, err
	}
	if c.EndDate, err = storage.ParseDate(end); err != nil {
		return nil, err
	}
	if quitDate.Valid {
		q, err := storage.ParseDate(quitDate.String)
		if err != nil {
			return nil, err
		}
		c.QuitDate = &q
	}
	c.Status = models.ParseStatus(status)
	return &c, nil
}

func (s *Store) loadDays(c *models.Challenge) error {
	rows, err := s.db.Query("SELECT "+storage.DayColumns+" FROM days WHERE challenge_id = $1 ORDER BY number", c.ID)
	if err != nil {
		return fmt.Errorf("failed to load days: %w", err)
	}
	defer rows.Close()

	var days []*models.Day
	for rows.Next() {
		d, err := storage.ScanDay(rows)
		if err != nil {
			return err
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if err := c.Attach(days); err != nil {
		return fmt.Errorf("challenge %s: %w", c.ID, err)
	}
	return nil
}
