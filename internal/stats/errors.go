package stats

import (
	"fmt"
	"time"
)

// MissingTeamStatsError is returned when a participating team has no efficiency profile for a date.
type MissingTeamStatsError struct {
	TeamID int64
	Date   time.Time
}

func (e *MissingTeamStatsError) Error() string {
	if e.Date.IsZero() {
		return fmt.Sprintf("no efficiency profile for team %d", e.TeamID)
	}
	return fmt.Sprintf("no efficiency profile for team %d as of %s", e.TeamID, e.Date.Format("2006-01-02"))
}

// DataIntegrityError is returned when a game record cannot describe a single winner.
type DataIntegrityError struct {
	GameID string
	Date   time.Time
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("game %s on %s: %s", e.GameID, e.Date.Format("2006-01-02"), e.Reason)
}

// PrerequisiteNotMetError is returned when a game is summarized before its characteristics are derived.
type PrerequisiteNotMetError struct {
	GameID string
	Date   time.Time
}

func (e *PrerequisiteNotMetError) Error() string {
	return fmt.Sprintf("game %s on %s has no winning characteristics", e.GameID, e.Date.Format("2006-01-02"))
}
