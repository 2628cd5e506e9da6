package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2020, m, d, 0, 0, 0, 0, time.UTC)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "box-scores/box-scores-2020-01-28.json", BoxScores.Key(day(time.January, 28)))
	assert.Equal(t, "advanced-team-stats/advanced-team-stats-2020-02-01.json", TeamStats.Key(day(time.February, 1)))

	d, ok := Matchups.parseKey("prefix/matchups/matchups-2020-01-29.json")
	require.True(t, ok)
	assert.True(t, day(time.January, 29).Equal(d))

	_, ok = Matchups.parseKey("matchups/box-scores-2020-01-29.json")
	assert.False(t, ok)
	_, ok = Matchups.parseKey("matchups/matchups-latest.json")
	assert.False(t, ok)
}

func TestLocalRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(ctx, BoxScores, day(time.January, 28))
	assert.ErrorIs(t, err, ErrNotFound)

	res, err := s.Put(ctx, BoxScores, day(time.January, 28), []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, Written, res)

	res, err = s.Put(ctx, BoxScores, day(time.January, 28), []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, Unchanged, res)

	res, err = s.Put(ctx, BoxScores, day(time.January, 28), []byte(`{"a":2}`))
	require.NoError(t, err)
	assert.Equal(t, Written, res)

	b, err := s.Get(ctx, BoxScores, day(time.January, 28))
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(b))
}

func TestLocalDates(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	s, err := Open(ctx, "file://"+root)
	require.NoError(t, err)

	dates, err := s.Dates(ctx, TeamStats)
	require.NoError(t, err)
	assert.Empty(t, dates)
	_, ok := Newest(dates)
	assert.False(t, ok)

	for _, d := range []time.Time{day(time.January, 30), day(time.January, 2), day(time.January, 15)} {
		_, err := s.Put(ctx, TeamStats, d, []byte("{}"))
		require.NoError(t, err)
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "advanced-team-stats", "notes.txt"), []byte("x"), 0o644))

	dates, err = s.Dates(ctx, TeamStats)
	require.NoError(t, err)
	require.Len(t, dates, 3)
	assert.True(t, day(time.January, 2).Equal(dates[0]))
	assert.True(t, day(time.January, 30).Equal(dates[2]))

	newest, ok := Newest(dates)
	require.True(t, ok)
	assert.True(t, day(time.January, 30).Equal(newest))
}

func TestNotAfter(t *testing.T) {
	dates := []time.Time{day(time.January, 2), day(time.January, 15), day(time.January, 30)}
	tests := []struct {
		name string
		asOf time.Time
		want time.Time
		ok   bool
	}{
		{"between", day(time.January, 20), day(time.January, 15), true},
		{"exact", day(time.January, 15), day(time.January, 15), true},
		{"after newest", day(time.March, 1), day(time.January, 30), true},
		{"before oldest", day(time.January, 1), time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NotAfter(dates, tt.asOf)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "as of %s got %s", tt.asOf, got)
		})
	}

	_, ok := NotAfter(nil, day(time.January, 1))
	assert.False(t, ok)
}

func TestOpenUnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "s3://bucket/prefix")
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abc")))
	assert.NotEqual(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abd")))
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	name := filepath.Join(t.TempDir(), "out.bin")

	w, err := Create(ctx, name)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	b, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	w, err = Create(ctx, "file://"+name)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	b, err = os.ReadFile(name)
	require.NoError(t, err)
	assert.Empty(t, b)

	_, err = Create(ctx, "gs://bucket-only")
	assert.ErrorContains(t, err, "names no object")
	_, err = Create(ctx, "s3://bucket/key")
	assert.Error(t, err)
}
