package main

import (
	"context"

	"github.com/reallyasi9/nbapredict/internal/tools/teams"
)

type lsTeamsCmd struct {
	AsOf date `help:"Show each team's efficiency as of this day (YYYYMMDD)."`
}

func (c *lsTeamsCmd) Run(g *globalCmd) error {
	ctx := teams.NewContext(context.Background())
	svc, r, closer, err := g.newService(ctx)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Service = svc
	ctx.Roster = r
	if !c.AsOf.IsZero() {
		ctx.AsOf = &c.AsOf.Time
	}
	return teams.LsTeams(ctx)
}
