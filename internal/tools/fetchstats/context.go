package fetchstats

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/reallyasi9/nbapredict/internal/blobstore"
	"github.com/reallyasi9/nbapredict/internal/nbadata"
)

type Context struct {
	context.Context

	Force      bool
	DryRun     bool
	NoProgress bool

	Store  blobstore.Store
	Client *nbadata.Client
	Logger *zap.SugaredLogger

	From time.Time
	To   time.Time
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Logger: zap.NewNop().Sugar()}
}
