package data

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reallyasi9/nbapredict/internal/blobstore"
	"github.com/reallyasi9/nbapredict/internal/nbadata"
	"github.com/reallyasi9/nbapredict/internal/stats"
)

// EnrichedGames returns the games played on day with profiles attached and characteristics derived.
// A day with no stored box scores, including any day after the newest stored one, has no games.
// Games played before the first stored team statistics fail with a *stats.MissingTeamStatsError.
// The returned slice is shared; do not modify it.
func (s *Service) EnrichedGames(ctx context.Context, day time.Time) ([]stats.EnrichedGame, error) {
	day = nbadata.Day(day)
	return cached(s, s.games, "games", dateKey(day), func() ([]stats.EnrichedGame, error) {
		newest, err := s.Newest(ctx, blobstore.BoxScores)
		if errors.Is(err, blobstore.ErrNotFound) {
			s.log.Infow("no box scores stored", "date", dateKey(day), "store", s.store.Location())
			return []stats.EnrichedGame{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("EnrichedGames: %w", err)
		}
		if day.After(newest) {
			s.log.Debugw("no box scores stored yet", "date", dateKey(day), "newest", dateKey(newest))
			return []stats.EnrichedGame{}, nil
		}

		body, ok, err := s.get(ctx, blobstore.BoxScores, day)
		if err != nil {
			return nil, fmt.Errorf("EnrichedGames: %w", err)
		}
		if !ok {
			s.log.Infow("no box score data found", "date", dateKey(day))
			return []stats.EnrichedGame{}, nil
		}
		raw, err := nbadata.ParseBoxScores(body)
		if err != nil {
			return nil, fmt.Errorf("EnrichedGames: %s: %w", blobstore.BoxScores.Key(day), err)
		}
		if len(raw) == 0 {
			return []stats.EnrichedGame{}, nil
		}

		profiles, err := s.Profiles(ctx, day)
		if err != nil {
			return nil, fmt.Errorf("EnrichedGames: %w", err)
		}
		games := make([]stats.EnrichedGame, len(raw))
		for i, r := range raw {
			if games[i], err = stats.EnrichAndDerive(r, profiles); err != nil {
				return nil, fmt.Errorf("EnrichedGames: %w", err)
			}
		}
		s.log.Debugw("loaded box scores", "date", dateKey(day), "games", len(games))
		return games, nil
	})
}

// History returns every game played from days before end through end, inclusive,
// sorted by date and then game ID.
func (s *Service) History(ctx context.Context, end time.Time, days int) (stats.GameWindow, error) {
	if days < 0 {
		return stats.GameWindow{}, fmt.Errorf("History: negative days of history %d", days)
	}
	end = nbadata.Day(end)
	from := end.AddDate(0, 0, -days)

	perDay := make([][]stats.EnrichedGame, days+1)
	g, gctx := errgroup.WithContext(ctx)
	if s.Concurrency > 0 {
		g.SetLimit(s.Concurrency)
	}
	for i := 0; i <= days; i++ {
		i := i
		g.Go(func() error {
			games, err := s.EnrichedGames(gctx, from.AddDate(0, 0, i))
			if err != nil {
				return err
			}
			perDay[i] = games
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats.GameWindow{}, fmt.Errorf("History: %w", err)
	}

	var n int
	for _, games := range perDay {
		n += len(games)
	}
	window := stats.GameWindow{From: from, To: end, Games: make([]stats.EnrichedGame, 0, n)}
	for _, games := range perDay {
		window.Games = append(window.Games, games...)
	}
	sort.SliceStable(window.Games, func(i, j int) bool {
		a, b := window.Games[i], window.Games[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.GameID < b.GameID
	})
	window.GameCount = len(window.Games)
	return window, nil
}

// Summary is the unfiltered History window ending on end with the rates of every game in it.
// Games are dropped from the result unless includeGames is set.
func (s *Service) Summary(ctx context.Context, end time.Time, days int, includeGames bool) (stats.GameWindow, error) {
	history, err := s.History(ctx, end, days)
	if err != nil {
		return stats.GameWindow{}, fmt.Errorf("Summary: %w", err)
	}
	window, err := stats.SummarizeWindow(history, stats.WindowOptions{Keep: stats.All, IncludeGames: includeGames})
	if err != nil {
		return stats.GameWindow{}, fmt.Errorf("Summary: %w", err)
	}
	return window, nil
}
