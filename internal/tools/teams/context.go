package teams

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/reallyasi9/nbapredict/internal/data"
	"github.com/reallyasi9/nbapredict/internal/roster"
)

type Context struct {
	context.Context

	Roster  *roster.Roster
	Service *data.Service
	Output  io.Writer

	// AsOf, if set, lists each team's efficiency profile as of that date.
	AsOf *time.Time
}

func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Output: os.Stdout}
}
