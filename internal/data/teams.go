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

// Teams returns every team with its efficiency profile as of the latest stored date not after asOf.
// If nothing is stored on or before asOf the error wraps blobstore.ErrNotFound. Teams are sorted by name. The returned slice is shared; do not modify it.
func (s *Service) Teams(ctx context.Context, asOf time.Time) ([]stats.Team, error) {
	date, err := s.resolve(ctx, blobstore.TeamStats, nbadata.Day(asOf))
	if err != nil {
		return nil, fmt.Errorf("Teams: %w", err)
	}
	return cached(s, s.teams, "teams", dateKey(date), func() ([]stats.Team, error) {
		body, ok, err := s.get(ctx, blobstore.TeamStats, date)
		if err != nil {
			return nil, fmt.Errorf("Teams: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("Teams: %s: %w", blobstore.TeamStats.Key(date), blobstore.ErrNotFound)
		}
		teams, err := nbadata.ParseTeamStats(body)
		if err != nil {
			return nil, fmt.Errorf("Teams: %s: %w", blobstore.TeamStats.Key(date), err)
		}
		for i := range teams {
			teams[i].Abbreviation = s.roster.Abbreviation(teams[i].ID)
			if teams[i].Abbreviation == "" {
				s.log.Warnw("team not in roster", "teamID", teams[i].ID, "teamName", teams[i].Name)
			}
		}
		s.log.Debugw("loaded team stats", "date", dateKey(date), "teams", len(teams))
		return teams, nil
	})
}

// Team returns one team's profile as of asOf.
// A team missing from the stored statistics is a *stats.MissingTeamStatsError.
func (s *Service) Team(ctx context.Context, id int64, asOf time.Time) (stats.Team, error) {
	teams, err := s.Teams(ctx, asOf)
	if errors.Is(err, blobstore.ErrNotFound) {
		return stats.Team{}, fmt.Errorf("Team: %w", &stats.MissingTeamStatsError{TeamID: id, Date: nbadata.Day(asOf)})
	}
	if err != nil {
		return stats.Team{}, err
	}
	for _, t := range teams {
		if t.ID == id {
			return t, nil
		}
	}
	return stats.Team{}, fmt.Errorf("Team: %w", &stats.MissingTeamStatsError{TeamID: id, Date: nbadata.Day(asOf)})
}

// Profiles returns the efficiency profiles in effect on date, keyed by team ID.
// Before the first stored statistics there are no profiles.
func (s *Service) Profiles(ctx context.Context, date time.Time) (stats.Profiles, error) {
	teams, err := s.Teams(ctx, date)
	if errors.Is(err, blobstore.ErrNotFound) {
		s.log.Debugw("no team stats in effect", "date", dateKey(date))
		return stats.Profiles{}, nil
	}
	if err != nil {
		return nil, err
	}
	return stats.NewProfiles(teams), nil
}
