package storage

import (
	"fmt"
	"time"

	"github.com/julianstephens/eighty/internal/constants"
	"github.com/julianstephens/eighty/internal/logger"
	"github.com/julianstephens/eighty/internal/models"
)

// LoadActive returns the in-progress challenge brought up to date as of now.
// A challenge past its end date is finished, and with carry-over enabled an
// empty today inherits yesterday's critical tasks. Either change is saved
// before returning. A finished challenge is still returned.
func LoadActive(p Provider, settings models.Settings, now time.Time) (*models.Challenge, models.RefreshResult, error) {
	c, err := p.GetActiveChallenge()
	if err != nil {
		return nil, models.RefreshResult{}, err
	}
	c.DaysBeforeGrade = settings.DaysBeforeGrade

	res := c.Refresh(now, settings.CarryOverCriticalTasks)
	switch {
	case res.Finished:
		if err := p.SaveChallenge(c); err != nil {
			return nil, res, fmt.Errorf("failed to save finished challenge: %w", err)
		}
		logger.WithChallenge(c.ID).Info("Challenge finished", "end", c.EndDate.Format(constants.DateFormat))
	case res.CarriedOver:
		if err := p.SaveDay(c.ID, c.CurrentDay(now)); err != nil {
			return nil, res, fmt.Errorf("failed to save carried-over tasks: %w", err)
		}
		logger.WithChallenge(c.ID).Debug("Carried over critical tasks")
	}
	return c, res, nil
}
