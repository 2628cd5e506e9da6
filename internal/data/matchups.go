package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reallyasi9/nbapredict/internal/blobstore"
	"github.com/reallyasi9/nbapredict/internal/nbadata"
	"github.com/reallyasi9/nbapredict/internal/stats"
)

// DefaultDaysOfHistory is how far back MatchupReport looks when not told otherwise.
const DefaultDaysOfHistory = 30

// Matchup is a scheduled game between two identified teams.
type Matchup struct {
	GameID string     `json:"gameId"`
	Date   time.Time  `json:"gameDate"`
	Home   stats.Team `json:"homeTeam"`
	Away   stats.Team `json:"awayTeam"`
}

func (m Matchup) String() string {
	return fmt.Sprintf("%s: %s @ %s", m.GameID, m.Away.Abbreviation, m.Home.Abbreviation)
}

// GameNotFoundError is returned when a game is not on a day's schedule.
type GameNotFoundError struct {
	GameID string
	Date   time.Time
}

func (e *GameNotFoundError) Error() string {
	return fmt.Sprintf("game %s not scheduled on %s", e.GameID, e.Date.Format(nbadata.FileDateLayout))
}

// Matchups returns the games scheduled on date, sorted by game ID.
// A date with no stored schedule has no games.
func (s *Service) Matchups(ctx context.Context, date time.Time) ([]Matchup, error) {
	date = nbadata.Day(date)
	return cached(s, s.sched, "matchups", dateKey(date), func() ([]Matchup, error) {
		body, ok, err := s.get(ctx, blobstore.Matchups, date)
		if err != nil {
			return nil, fmt.Errorf("Matchups: %w", err)
		}
		if !ok {
			s.log.Infow("no matchup data found", "date", dateKey(date))
			return []Matchup{}, nil
		}
		scheduled, err := nbadata.ParseScoreboard(body, date)
		if err != nil {
			return nil, fmt.Errorf("Matchups: %s: %w", blobstore.Matchups.Key(date), err)
		}
		out := make([]Matchup, len(scheduled))
		for i, g := range scheduled {
			home, err := s.roster.Team(g.HomeTeamID)
			if err != nil {
				return nil, fmt.Errorf("Matchups: game %s: %w", g.GameID, err)
			}
			away, err := s.roster.Team(g.AwayTeamID)
			if err != nil {
				return nil, fmt.Errorf("Matchups: game %s: %w", g.GameID, err)
			}
			out[i] = Matchup{GameID: g.GameID, Date: date, Home: home, Away: away}
		}
		return out, nil
	})
}

// Matchup finds one scheduled game.
func (s *Service) Matchup(ctx context.Context, date time.Time, gameID string) (Matchup, error) {
	matchups, err := s.Matchups(ctx, date)
	if err != nil {
		return Matchup{}, err
	}
	for _, m := range matchups {
		if m.GameID == gameID {
			return m, nil
		}
	}
	return Matchup{}, &GameNotFoundError{GameID: gameID, Date: nbadata.Day(date)}
}

// ErrNotScheduled is returned when a team has no game on the requested day.
var ErrNotScheduled = errors.New("team not scheduled")

// TeamMatchup finds the game scheduled on date in which the team with the given tricode plays.
func (s *Service) TeamMatchup(ctx context.Context, date time.Time, abbrev string) (Matchup, error) {
	team, err := s.roster.ByAbbreviation(abbrev)
	if err != nil {
		return Matchup{}, fmt.Errorf("TeamMatchup: %w", err)
	}
	matchups, err := s.Matchups(ctx, date)
	if err != nil {
		return Matchup{}, fmt.Errorf("TeamMatchup: %w", err)
	}
	for _, m := range matchups {
		if m.Home.ID == team.ID || m.Away.ID == team.ID {
			return m, nil
		}
	}
	return Matchup{}, fmt.Errorf("TeamMatchup: %s on %s: %w", team.Abbreviation, dateKey(nbadata.Day(date)), ErrNotScheduled)
}

// TeamReport is one side of a matchup report.
type TeamReport struct {
	Team       stats.Team              `json:"team"`
	Gap        stats.StatGap           `json:"statGaps"`
	Predictors stats.MatchupPredictors `json:"predictors"`
}

// Report is the full prediction input for one scheduled game.
type Report struct {
	Date          time.Time        `json:"gameDate"`
	GameID        string           `json:"gameId"`
	DaysOfHistory int              `json:"daysOfHistory"`
	Tolerances    stats.Tolerances `json:"tolerances"`
	Home          TeamReport       `json:"homeTeam"`
	Away          TeamReport       `json:"awayTeam"`
}

// MatchupReport looks up both teams of a scheduled game as of its date, computes each side's
// gap over the other, and builds each side's predictors from the games of the preceding days.
func (s *Service) MatchupReport(ctx context.Context, date time.Time, gameID string, days int, p stats.Predictor) (Report, error) {
	date = nbadata.Day(date)
	m, err := s.Matchup(ctx, date, gameID)
	if err != nil {
		return Report{}, fmt.Errorf("MatchupReport: %w", err)
	}
	home, err := s.Team(ctx, m.Home.ID, date)
	if err != nil {
		return Report{}, fmt.Errorf("MatchupReport: %w", err)
	}
	away, err := s.Team(ctx, m.Away.ID, date)
	if err != nil {
		return Report{}, fmt.Errorf("MatchupReport: %w", err)
	}

	homeGap, err := stats.ComputeGap(home, away)
	if err != nil {
		return Report{}, fmt.Errorf("MatchupReport: %w", err)
	}
	awayGap, err := stats.ComputeGap(away, home)
	if err != nil {
		return Report{}, fmt.Errorf("MatchupReport: %w", err)
	}

	history, err := s.History(ctx, date, days)
	if err != nil {
		return Report{}, fmt.Errorf("MatchupReport: %w", err)
	}

	homePredictors, err := p.Predict(home, homeGap, history)
	if err != nil {
		return Report{}, fmt.Errorf("MatchupReport: home team: %w", err)
	}
	awayPredictors, err := p.Predict(away, awayGap, history)
	if err != nil {
		return Report{}, fmt.Errorf("MatchupReport: away team: %w", err)
	}

	s.log.Debugw("built matchup report",
		"gameID", gameID,
		"date", dateKey(date),
		"home", home.Abbreviation,
		"away", away.Abbreviation,
		"historyGames", history.GameCount,
	)
	return Report{
		Date:          date,
		GameID:        gameID,
		DaysOfHistory: days,
		Tolerances:    p.Tolerances,
		Home:          TeamReport{Team: home, Gap: homeGap, Predictors: homePredictors},
		Away:          TeamReport{Team: away, Gap: awayGap, Predictors: awayPredictors},
	}, nil
}

// MatchupReports builds a report for every game scheduled on date.
func (s *Service) MatchupReports(ctx context.Context, date time.Time, days int, p stats.Predictor) ([]Report, error) {
	matchups, err := s.Matchups(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("MatchupReports: %w", err)
	}
	reports := make([]Report, 0, len(matchups))
	for _, m := range matchups {
		r, err := s.MatchupReport(ctx, date, m.GameID, days, p)
		if err != nil {
			return nil, fmt.Errorf("MatchupReports: %w", err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}
