// Package blobstore keeps one JSON document per data source per day, either in a local
// directory or in a Google Cloud Storage bucket.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/fasthash/jody"
)

// Source names a kind of stored document.
type Source string

const (
	BoxScores Source = "box-scores"
	TeamStats Source = "advanced-team-stats"
	Matchups  Source = "matchups"
)

const dateLayout = "2006-01-02"

// Key is the object name of a source's document for a date.
func (s Source) Key(date time.Time) string {
	return path.Join(string(s), fmt.Sprintf("%s-%s.json", s, date.Format(dateLayout)))
}

// parseKey returns the date encoded in the base name of an object of source s.
func (s Source) parseKey(name string) (time.Time, bool) {
	base := path.Base(name)
	prefix := string(s) + "-"
	if !strings.HasPrefix(base, prefix) || !strings.HasSuffix(base, ".json") {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, strings.TrimSuffix(strings.TrimPrefix(base, prefix), ".json"))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ErrNotFound is returned when no document exists for a source and date.
var ErrNotFound = errors.New("blob not found")

// PutResult says what Put did.
type PutResult int

const (
	Written PutResult = iota
	Unchanged
)

func (r PutResult) String() string {
	if r == Unchanged {
		return "unchanged"
	}
	return "written"
}

// Store reads and writes daily documents.
type Store interface {
	// Get returns the document for a source and date, or ErrNotFound.
	Get(ctx context.Context, src Source, date time.Time) ([]byte, error)

	// Put stores a document. If the stored document already has the same fingerprint, nothing is written.
	Put(ctx context.Context, src Source, date time.Time, body []byte) (PutResult, error)

	// Dates lists the dates with a stored document, oldest first.
	Dates(ctx context.Context, src Source) ([]time.Time, error)

	// Location describes where the store lives.
	Location() string

	Close() error
}

// Newest returns the last of sorted dates. It reports false when dates is empty.
func Newest(dates []time.Time) (time.Time, bool) {
	if len(dates) == 0 {
		return time.Time{}, false
	}
	return dates[len(dates)-1], true
}

// NotAfter picks from sorted dates the latest one not after t.
// It reports false when dates is empty or every date is after t.
func NotAfter(dates []time.Time, t time.Time) (time.Time, bool) {
	i := sort.Search(len(dates), func(i int) bool { return dates[i].After(t) })
	if i == 0 {
		return time.Time{}, false
	}
	return dates[i-1], true
}

// Fingerprint is the content hash recorded alongside every document.
func Fingerprint(body []byte) string {
	return strconv.FormatUint(jody.HashString64(string(body)), 16)
}

// Open returns a Google Cloud Storage store for locations of the form gs://bucket[/prefix]
// and a local directory store for anything else.
func Open(ctx context.Context, location string) (Store, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("Open: unable to parse location '%s': %w", location, err)
	}
	switch u.Scheme {
	case "gs":
		s, err := openGCS(ctx, u.Host, strings.Trim(u.Path, "/"))
		if err != nil {
			return nil, err
		}
		return s, nil

	case "file", "":
		root := u.Path
		if u.Scheme == "" {
			root = location
		}
		s, err := openLocal(root)
		if err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("Open: unable to determine how to open '%s'", location)
	}
}

func sortDates(dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
}
