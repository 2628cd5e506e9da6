package firestore

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/reallyasi9/nbapredict/internal/data"
	"github.com/reallyasi9/nbapredict/internal/stats"
)

func testReport() data.Report {
	from := time.Date(2019, time.December, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, time.January, 29, 0, 0, 0, 0, time.UTC)
	tol := 0.05
	window := stats.GameWindow{
		From:            from,
		To:              to,
		Games:           []stats.EnrichedGame{},
		GameCount:       12,
		Rates:           &stats.CharacteristicRates{WasHomeTeam: 0.583, AveragePointGap: 11.25},
		ComparisonRange: &tol,
	}
	return data.Report{
		Date:          to,
		GameID:        "0021900710",
		DaysOfHistory: 30,
		Tolerances:    stats.DefaultTolerances,
		Home: data.TeamReport{
			Team: stats.Team{ID: 1610612747, Name: "Los Angeles Lakers", Abbreviation: "LAL"},
			Gap:  stats.StatGap{WinningPercentage: 0.102, OffensiveEfficiency: 1.2, OffensiveRank: 3},
			Predictors: stats.MatchupPredictors{
				TeamID:              1610612747,
				WinningPercentage:   window,
				OffensiveEfficiency: stats.GameWindow{From: from, To: to},
				DefensiveEfficiency: window,
			},
		},
		Away: data.TeamReport{
			Team: stats.Team{ID: 1610612746, Name: "LA Clippers", Abbreviation: "LAC"},
			Gap:  stats.StatGap{WinningPercentage: -0.102, OffensiveEfficiency: -1.2, OffensiveRank: -3},
		},
	}
}

func TestNewPrediction(t *testing.T) {
	p := NewPrediction(testReport())

	assert.Equal(t, "0021900710", p.GameID)
	assert.Equal(t, 30, p.DaysOfHistory)
	assert.Equal(t, stats.DefaultTolerances, p.Tolerances)
	assert.Equal(t, int64(1610612747), p.Home.Team.ID)
	assert.Equal(t, -3, p.Away.Gap.OffensiveRank)

	w := p.Home.WinningPercentage
	assert.Equal(t, 12, w.GameCount)
	assert.Equal(t, 0.05, w.ComparisonRange)
	assert.Equal(t, 0.583, w.Rates.WasHomeTeam)
	assert.Equal(t, 11.25, w.Rates.AveragePointGap)

	// a window without rates or range stores zeros
	assert.Equal(t, Window{From: w.From, To: w.To}, p.Home.OffensiveEfficiency)
}

func TestPredictionString(t *testing.T) {
	s := NewPrediction(testReport()).String()
	lines := strings.Split(s, "\n")
	require.Greater(t, len(lines), 10)
	assert.Equal(t, "Prediction", lines[0])
	assert.Equal(t, "├ GameID: 0021900710", lines[1])
	assert.Equal(t, "├ Date: 2020-01-29", lines[2])
	assert.Contains(t, s, "├ Team: Los Angeles Lakers (1610612747)")
	assert.Contains(t, s, "    ├ GameCount: 12")
	assert.Contains(t, s, "  ├ OffensiveRankGap: -3")
	assert.Contains(t, s, "└ Away")
	assert.True(t, strings.HasSuffix(s, "└ AveragePointGap: 0"))
}

// Runs against the Firestore emulator when FIRESTORE_EMULATOR_HOST is set.
func TestWriteAndGetPredictions(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "nbapredict-test")
	require.NoError(t, err)
	defer client.Close()

	p := NewPrediction(testReport())
	ref, err := WritePrediction(ctx, client, p, true)
	require.NoError(t, err)
	assert.Equal(t, "0021900710", ref.ID)

	_, err = WritePrediction(ctx, client, p, false)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	got, ok, err := GetPrediction(ctx, client, p.Date, p.GameID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.Home.Team.Name, got.Home.Team.Name)
	assert.Equal(t, p.Home.WinningPercentage.GameCount, got.Home.WinningPercentage.GameCount)
	assert.False(t, got.Timestamp.IsZero())

	_, ok, err = GetPrediction(ctx, client, p.Date, "0000000000")
	require.NoError(t, err)
	assert.False(t, ok)

	preds, refs, err := GetPredictions(ctx, client, p.Date)
	require.NoError(t, err)
	require.Len(t, refs, len(preds))
	require.NotEmpty(t, preds)
	assert.Equal(t, p.GameID, preds[0].GameID)

	preds, _, err = GetPredictions(ctx, client, p.Date.AddDate(-5, 0, 0))
	require.NoError(t, err)
	assert.Empty(t, preds)
}
