package nbadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boxScoreFixture = `{
  "resource": "leaguegamelog",
  "parameters": {},
  "resultSets": [{
    "name": "LeagueGameLog",
    "headers": ["SEASON_ID","TEAM_ID","TEAM_ABBREVIATION","TEAM_NAME","GAME_ID","GAME_DATE","MATCHUP","WL","MIN","PTS"],
    "rowSet": [
      ["22019",1610612747,"LAL","Los Angeles Lakers","0021900700","2020-01-28","LAL vs. LAC","W",240,112],
      ["22019",1610612746,"LAC","LA Clippers","0021900700","2020-01-28","LAC @ LAL","L",240,103],
      ["22019",1610612738,"BOS","Boston Celtics","0021900650","2020-01-27","BOS @ MIA","W",265,124],
      ["22019",1610612748,"MIA","Miami Heat","0021900650","2020-01-27","MIA vs. BOS","L",265,120]
    ]
  }]
}`

const teamStatsFixture = `{
  "resource": "leaguedashteamstats",
  "parameters": {},
  "resultSets": [{
    "name": "LeagueDashTeamStats",
    "headers": ["TEAM_ID","TEAM_NAME","GP","W","L","W_PCT","OFF_RATING","DEF_RATING","OFF_RATING_RANK","DEF_RATING_RANK"],
    "rowSet": [
      [1610612747,"Los Angeles Lakers",46,36,10,0.783,113.2,105.1,3,3],
      [1610612738,"Boston Celtics",46,31,15,0.674,112.9,104.8,5,2]
    ]
  }]
}`

const scoreboardFixture = `{
  "resource": "scoreboardV2",
  "parameters": {},
  "resultSets": [
    {"name": "GameHeader", "headers": ["GAME_DATE_EST","GAME_ID","HOME_TEAM_ID","VISITOR_TEAM_ID"],
     "rowSet": [
       ["2020-01-29T00:00:00","0021900712",1610612738,1610612741],
       ["2020-01-29T00:00:00","0021900710",1610612747,1610612746]
     ]},
    {"name": "LineScore", "headers": [], "rowSet": []}
  ]
}`

func TestSeason(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2020, time.January, 28, 0, 0, 0, 0, time.UTC), "2019-20"},
		{time.Date(2019, time.October, 22, 0, 0, 0, 0, time.UTC), "2019-20"},
		{time.Date(2020, time.July, 31, 0, 0, 0, 0, time.UTC), "2019-20"},
		{time.Date(2020, time.August, 1, 0, 0, 0, 0, time.UTC), "2020-21"},
		{time.Date(1999, time.December, 1, 0, 0, 0, 0, time.UTC), "1999-00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Season(tt.date), tt.date.Format(FileDateLayout))
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2020, time.January, 28, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"20200128", "2020-01-28"} {
		got, err := ParseDate(s)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), s)
	}
	_, err := ParseDate("01/28/2020")
	assert.Error(t, err)
}

func TestParseBoxScores(t *testing.T) {
	games, err := ParseBoxScores([]byte(boxScoreFixture))
	require.NoError(t, err)
	require.Len(t, games, 2)

	first := games[0]
	assert.Equal(t, "0021900650", first.GameID)
	assert.Equal(t, int64(1610612748), first.Home.TeamID)
	assert.Equal(t, int64(1610612738), first.Away.TeamID)
	assert.True(t, first.Away.WonGame)
	assert.False(t, first.Home.WonGame)
	assert.Equal(t, 124, first.Away.Points)

	second := games[1]
	assert.Equal(t, "0021900700", second.GameID)
	assert.Equal(t, "LAL", second.Home.Abbreviation)
	assert.Equal(t, "LA Clippers", second.Away.Name)
	assert.True(t, time.Date(2020, time.January, 28, 0, 0, 0, 0, time.UTC).Equal(second.Date))
}

func TestParseBoxScoresIncompleteGame(t *testing.T) {
	doc := `{"resource":"leaguegamelog","resultSets":[{"name":"LeagueGameLog",
	  "headers":["TEAM_ID","TEAM_ABBREVIATION","TEAM_NAME","GAME_ID","GAME_DATE","MATCHUP","WL","PTS"],
	  "rowSet":[[1610612747,"LAL","Los Angeles Lakers","0021900700","2020-01-28","LAL vs. LAC","W",112]]}]}`
	_, err := ParseBoxScores([]byte(doc))
	assert.ErrorContains(t, err, "has 1 lines")
}

func TestParseBoxScoresTwoHomeLines(t *testing.T) {
	doc := `{"resource":"leaguegamelog","resultSets":[{"name":"LeagueGameLog",
	  "headers":["TEAM_ID","TEAM_ABBREVIATION","TEAM_NAME","GAME_ID","GAME_DATE","MATCHUP","WL","PTS"],
	  "rowSet":[
	    [1610612747,"LAL","Los Angeles Lakers","0021900700","2020-01-28","LAL vs. LAC","W",112],
	    [1610612746,"LAC","LA Clippers","0021900700","2020-01-28","LAC vs. LAL","L",103]]}]}`
	_, err := ParseBoxScores([]byte(doc))
	assert.ErrorContains(t, err, "one home and one away")
}

func TestParseBoxScoresMissingColumn(t *testing.T) {
	doc := `{"resource":"leaguegamelog","resultSets":[{"name":"LeagueGameLog",
	  "headers":["TEAM_ID","GAME_ID"],
	  "rowSet":[[1610612747,"0021900700"]]}]}`
	_, err := ParseBoxScores([]byte(doc))
	assert.ErrorContains(t, err, "no column")
}

func TestParseTeamStats(t *testing.T) {
	teams, err := ParseTeamStats([]byte(teamStatsFixture))
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, "Boston Celtics", teams[0].Name)
	lakers := teams[1]
	assert.Equal(t, int64(1610612747), lakers.ID)
	require.NotNil(t, lakers.Profile)
	assert.InDelta(t, 0.783, lakers.Profile.WinningPercentage, 1e-12)
	assert.InDelta(t, 113.2, lakers.Profile.OffensiveEfficiency, 1e-12)
	assert.Equal(t, 3, lakers.Profile.OffensiveRank)
	assert.InDelta(t, 105.1, lakers.Profile.DefensiveEfficiency, 1e-12)
	assert.Equal(t, 3, lakers.Profile.DefensiveRank)
}

func TestParseScoreboard(t *testing.T) {
	day := time.Date(2020, time.January, 29, 0, 0, 0, 0, time.UTC)
	games, err := ParseScoreboard([]byte(scoreboardFixture), day)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, ScheduledGame{GameID: "0021900710", Date: day, HomeTeamID: 1610612747, AwayTeamID: 1610612746}, games[0])
	assert.Equal(t, "0021900712", games[1].GameID)
}

func TestClientSendsHeadersAndParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leaguegamelog", r.URL.Path)
		assert.Equal(t, "01/01/2020", r.URL.Query().Get("DateFrom"))
		assert.Equal(t, "01/28/2020", r.URL.Query().Get("DateTo"))
		assert.Equal(t, "2019-20", r.URL.Query().Get("Season"))
		assert.Equal(t, "stats", r.Header.Get("x-nba-stats-origin"))
		assert.Equal(t, "https://stats.nba.com/", r.Header.Get("Referer"))
		w.Write([]byte(boxScoreFixture))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(0))
	body, err := c.BoxScores(context.Background(),
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, time.January, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	games, err := ParseBoxScores(body)
	require.NoError(t, err)
	assert.Len(t, games, 2)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(teamStatsFixture))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(0), WithRetries(3, time.Millisecond, 5*time.Millisecond))
	body, err := c.TeamStats(context.Background(), time.Date(2020, time.January, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))

	teams, err := ParseTeamStats(body)
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}

func TestClientStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(0))
	_, err := c.Scoreboard(context.Background(), time.Date(2020, time.January, 29, 0, 0, 0, 0, time.UTC))
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestClientHonorsCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(scoreboardFixture))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Scoreboard(ctx, time.Date(2020, time.January, 29, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
		w.Write([]byte(scoreboardFixture))
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(0), WithRetries(0, time.Millisecond, time.Millisecond), WithTimeout(20*time.Millisecond))
	start := time.Now()
	_, err := c.Scoreboard(context.Background(), time.Date(2020, time.January, 29, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
