package matchups

import (
	"context"
	"io"
	"os"
	"time"

	fs "cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"github.com/reallyasi9/nbapredict/internal/data"
	"github.com/reallyasi9/nbapredict/internal/stats"
)

type Context struct {
	context.Context

	Force  bool
	DryRun bool

	Service         *data.Service
	FirestoreClient *fs.Client
	Logger          *zap.SugaredLogger
	Output          io.Writer

	Date      time.Time
	GameID    string
	Days      int
	Predictor stats.Predictor

	// JSON prints reports as JSON rather than tables.
	JSON bool

	// Save writes each report to Firestore.
	Save bool

	// Choose picks a game when GameID is empty. It defaults to asking on the terminal.
	Choose func([]data.Matchup) (data.Matchup, error)
}

func NewContext(ctx context.Context) *Context {
	return &Context{
		Context:   ctx,
		Logger:    zap.NewNop().Sugar(),
		Output:    os.Stdout,
		Days:      data.DefaultDaysOfHistory,
		Predictor: stats.NewPredictor(),
		Choose:    SurveyMatchup,
	}
}
