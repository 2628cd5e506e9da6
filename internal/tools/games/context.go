package games

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/reallyasi9/nbapredict/internal/data"
)

type Context struct {
	context.Context

	Service *data.Service
	Logger  *zap.SugaredLogger
	Output  io.Writer

	// Date is the last day of the window.
	Date time.Time

	// Days is how many days before Date the window reaches back. Zero lists Date alone.
	Days int

	IncludeGames bool
	JSON         bool
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Logger: zap.NewNop().Sugar(), Output: os.Stdout}
}
