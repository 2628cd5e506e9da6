package games

import (
	"encoding/json"
	"fmt"

	"github.com/reallyasi9/nbapredict/internal/tools/render"
)

// LsGames prints how the winners of every game in the window won, and optionally the games.
func LsGames(ctx *Context) error {
	window, err := ctx.Service.Summary(ctx, ctx.Date, ctx.Days, ctx.IncludeGames)
	if err != nil {
		return fmt.Errorf("LsGames: %w", err)
	}
	ctx.Logger.Debugw("summarized games", "from", window.From.Format("2006-01-02"), "to", window.To.Format("2006-01-02"), "games", window.GameCount)

	if !ctx.JSON {
		render.WriteWindow(ctx.Output, window)
		return nil
	}
	enc := json.NewEncoder(ctx.Output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(window); err != nil {
		return fmt.Errorf("LsGames: failed to encode window: %w", err)
	}
	return nil
}
