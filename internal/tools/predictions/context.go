package predictions

import (
	"context"
	"io"
	"os"
	"time"

	fs "cloud.google.com/go/firestore"
	"go.uber.org/zap"
)

type Context struct {
	context.Context

	FirestoreClient *fs.Client
	Logger          *zap.SugaredLogger
	Output          io.Writer

	Date time.Time

	// GameID, if set, limits the listing to one game.
	GameID string
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Logger: zap.NewNop().Sugar(), Output: os.Stdout}
}
