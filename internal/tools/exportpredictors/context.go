package exportpredictors

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/reallyasi9/nbapredict/internal/data"
	"github.com/reallyasi9/nbapredict/internal/stats"
)

type Context struct {
	context.Context

	DryRun bool

	Service *data.Service
	Logger  *zap.SugaredLogger

	Date      time.Time
	Days      int
	Predictor stats.Predictor

	// Output is a local path or a gs:// URL. If empty, rows are printed to Console.
	Output  string
	Console io.Writer
}

func NewContext(ctx context.Context) *Context {
	return &Context{
		Context:   ctx,
		Logger:    zap.NewNop().Sugar(),
		Days:      data.DefaultDaysOfHistory,
		Predictor: stats.NewPredictor(),
		Console:   os.Stdout,
	}
}
