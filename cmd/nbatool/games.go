package main

import (
	"context"

	"github.com/reallyasi9/nbapredict/internal/tools/games"
)

type lsGamesCmd struct {
	Date         date `arg:"" help:"Last day of the window (YYYYMMDD)."`
	Days         int  `help:"Days before DATE to include. Zero lists DATE alone." default:"0"`
	IncludeGames bool `help:"List the games as well as the rates."`
	JSON         bool `help:"Print the window as JSON." name:"json"`
}

func (c *lsGamesCmd) Run(g *globalCmd) error {
	ctx := games.NewContext(context.Background())
	svc, _, closer, err := g.newService(ctx)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Service = svc
	ctx.Logger = g.Logger()
	ctx.Date = c.Date.Time
	ctx.Days = c.Days
	ctx.IncludeGames = c.IncludeGames
	ctx.JSON = c.JSON
	return games.LsGames(ctx)
}
