// Package data assembles the inputs of the prediction engine from stored daily documents.
//
// A Service caches every parsed document by date for its lifetime. Concurrent requests
// for the same document share one load.
package data

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/reallyasi9/nbapredict/internal/blobstore"
	"github.com/reallyasi9/nbapredict/internal/nbadata"
	"github.com/reallyasi9/nbapredict/internal/roster"
	"github.com/reallyasi9/nbapredict/internal/stats"
)

// DefaultConcurrency bounds how many days History loads at once.
const DefaultConcurrency = 8

// Service reads documents from a blob store and turns them into engine inputs.
type Service struct {
	store  blobstore.Store
	roster *roster.Roster
	log    *zap.SugaredLogger

	// Concurrency bounds parallel day loads in History.
	Concurrency int

	mu      sync.Mutex
	teams   map[string][]stats.Team
	games   map[string][]stats.EnrichedGame
	sched   map[string][]Matchup
	dates   map[blobstore.Source][]time.Time
	flights singleflight.Group
}

// New creates a Service. The roster must not be nil; a nil logger discards log output.
func New(store blobstore.Store, r *roster.Roster, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Service{
		store:       store,
		roster:      r,
		log:         log,
		Concurrency: DefaultConcurrency,
		teams:       make(map[string][]stats.Team),
		games:       make(map[string][]stats.EnrichedGame),
		sched:       make(map[string][]Matchup),
		dates:       make(map[blobstore.Source][]time.Time),
	}
}

func dateKey(t time.Time) string {
	return t.Format(nbadata.FileDateLayout)
}

// cached returns cache[key], computing and storing it with load on a miss.
// Concurrent misses on the same key run load once.
func cached[T any](s *Service, cache map[string]T, flight, key string, load func() (T, error)) (T, error) {
	s.mu.Lock()
	v, ok := cache[key]
	s.mu.Unlock()
	if ok {
		return v, nil
	}

	out, err, _ := s.flights.Do(flight+"/"+key, func() (any, error) {
		s.mu.Lock()
		v, ok := cache[key]
		s.mu.Unlock()
		if ok {
			return v, nil
		}
		v, err := load()
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		cache[key] = v
		s.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out.(T), nil
}

// storedDates lists the dates with a document for src. It is resolved once per Service.
func (s *Service) storedDates(ctx context.Context, src blobstore.Source) ([]time.Time, error) {
	s.mu.Lock()
	dates, ok := s.dates[src]
	s.mu.Unlock()
	if ok {
		return dates, nil
	}

	out, err, _ := s.flights.Do("dates/"+string(src), func() (any, error) {
		return s.store.Dates(ctx, src)
	})
	if err != nil {
		return nil, err
	}
	dates = out.([]time.Time)
	s.mu.Lock()
	s.dates[src] = dates
	s.mu.Unlock()
	return dates, nil
}

// Newest returns the most recent date with a stored document for src.
func (s *Service) Newest(ctx context.Context, src blobstore.Source) (time.Time, error) {
	dates, err := s.storedDates(ctx, src)
	if err != nil {
		return time.Time{}, fmt.Errorf("Newest: %w", err)
	}
	d, ok := blobstore.Newest(dates)
	if !ok {
		return time.Time{}, fmt.Errorf("Newest: no %s documents in %s: %w", src, s.store.Location(), blobstore.ErrNotFound)
	}
	return d, nil
}

// resolve picks the stored date of src to use for a request as of t: the latest one not after t.
func (s *Service) resolve(ctx context.Context, src blobstore.Source, t time.Time) (time.Time, error) {
	dates, err := s.storedDates(ctx, src)
	if err != nil {
		return time.Time{}, err
	}
	d, ok := blobstore.NotAfter(dates, t)
	if !ok {
		return time.Time{}, fmt.Errorf("no %s documents in %s on or before %s: %w", src, s.store.Location(), dateKey(t), blobstore.ErrNotFound)
	}
	return d, nil
}

// get reads a document, mapping a missing document to (nil, false).
func (s *Service) get(ctx context.Context, src blobstore.Source, date time.Time) ([]byte, bool, error) {
	b, err := s.store.Get(ctx, src, date)
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}
