package fetchstats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reallyasi9/nbapredict/internal/blobstore"
	"github.com/reallyasi9/nbapredict/internal/nbadata"
)

const emptyGameLog = `{"resource":"leaguegamelog","parameters":{},"resultSets":[{"name":"LeagueGameLog",
"headers":["TEAM_ID","TEAM_ABBREVIATION","TEAM_NAME","GAME_ID","GAME_DATE","MATCHUP","WL","PTS"],"rowSet":[]}]}`

const scoreboard = `{"resource":"scoreboardV2","parameters":{},"resultSets":[{"name":"GameHeader",
"headers":["GAME_ID","HOME_TEAM_ID","VISITOR_TEAM_ID"],"rowSet":[["0021900710",1610612747,1610612746]]}]}`

func newTestContext(t *testing.T, handler http.HandlerFunc) *Context {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := blobstore.Open(context.Background(), t.TempDir())
	require.NoError(t, err)

	ctx := NewContext(context.Background())
	ctx.Store = store
	ctx.Client = nbadata.NewClient(nbadata.WithBaseURL(srv.URL), nbadata.WithRateLimit(0))
	ctx.NoProgress = true
	ctx.From = time.Date(2020, time.January, 27, 0, 0, 0, 0, time.UTC)
	ctx.To = time.Date(2020, time.January, 29, 0, 0, 0, 0, time.UTC)
	return ctx
}

func TestFetchBoxScores(t *testing.T) {
	var calls int32
	ctx := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/leaguegamelog", r.URL.Path)
		assert.Equal(t, r.URL.Query().Get("DateFrom"), r.URL.Query().Get("DateTo"))
		w.Write([]byte(emptyGameLog))
	})

	summary, err := FetchBoxScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Written: 3}, summary)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))

	dates, err := ctx.Store.Dates(ctx, blobstore.BoxScores)
	require.NoError(t, err)
	assert.Len(t, dates, 3)

	// stored days are not fetched again
	summary, err = FetchBoxScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Skipped: 3}, summary)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))

	// unless forced, and then identical documents are not rewritten
	ctx.Force = true
	summary, err = FetchBoxScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Unchanged: 3}, summary)
	assert.EqualValues(t, 6, atomic.LoadInt32(&calls))
	assert.Equal(t, "0 written, 3 unchanged, 0 skipped", summary.String())
}

func TestFetchMatchupsDryRun(t *testing.T) {
	ctx := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scoreboardV2", r.URL.Path)
		w.Write([]byte(scoreboard))
	})
	ctx.DryRun = true
	ctx.To = ctx.From

	summary, err := FetchMatchups(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Skipped: 1}, summary)

	_, err = ctx.Store.Get(ctx, blobstore.Matchups, ctx.From)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestFetchRejectsUnparsableDocuments(t *testing.T) {
	ctx := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resource":"leaguedashteamstats","resultSets":[]}`))
	})

	summary, err := FetchTeamStats(ctx)
	assert.Error(t, err)
	assert.Equal(t, Summary{}, summary)

	dates, err := ctx.Store.Dates(ctx, blobstore.TeamStats)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestFetchRejectsReversedRange(t *testing.T) {
	ctx := newTestContext(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	ctx.From, ctx.To = ctx.To, ctx.From
	_, err := FetchBoxScores(ctx)
	assert.ErrorContains(t, err, "before start date")
}
