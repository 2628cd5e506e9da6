package matchups

import (
	"fmt"

	"github.com/reallyasi9/nbapredict/internal/tools/render"
)

// LsMatchups prints the games scheduled on ctx.Date.
func LsMatchups(ctx *Context) error {
	matchups, err := ctx.Service.Matchups(ctx, ctx.Date)
	if err != nil {
		return fmt.Errorf("LsMatchups: failed to get matchups: %w", err)
	}
	if len(matchups) == 0 {
		fmt.Fprintf(ctx.Output, "No games scheduled on %s\n", ctx.Date.Format("2006-01-02"))
		return nil
	}
	render.WriteMatchups(ctx.Output, matchups)
	return nil
}
