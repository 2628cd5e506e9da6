package main

import (
	"context"

	"github.com/reallyasi9/nbapredict/internal/tools/matchups"
)

type lsMatchupsCmd struct {
	Date date `arg:"" help:"Day of the games (YYYYMMDD)."`
}

func (c *lsMatchupsCmd) Run(g *globalCmd) error {
	ctx := matchups.NewContext(context.Background())
	svc, _, closer, err := g.newService(ctx)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Service = svc
	ctx.Logger = g.Logger()
	ctx.Date = c.Date.Time
	return matchups.LsMatchups(ctx)
}

type predictCmd struct {
	predictorFlags

	Date         date   `arg:"" help:"Day of the game (YYYYMMDD)."`
	GameID       string `arg:"" optional:"" help:"ID of the game, or the tricode of a team playing that day. If not given, choose from the day's games."`
	IncludeGames bool   `help:"Include the matched games in the report."`
	JSON         bool   `help:"Print the report as JSON." name:"json"`
	Save         bool   `help:"Save the prediction to Firestore."`
}

func (c *predictCmd) Run(g *globalCmd) error {
	ctx := matchups.NewContext(context.Background())
	svc, _, closer, err := g.newService(ctx)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Service = svc
	ctx.Logger = g.Logger()
	ctx.DryRun = g.DryRun
	ctx.Force = g.Force
	ctx.Date = c.Date.Time
	ctx.GameID = c.GameID
	ctx.Days = c.Days
	ctx.Predictor = c.predictor(c.IncludeGames)
	ctx.JSON = c.JSON
	ctx.Save = c.Save
	if c.Save && !g.DryRun {
		ctx.FirestoreClient, err = g.firestoreClient(ctx)
		if err != nil {
			return err
		}
		defer ctx.FirestoreClient.Close()
	}
	return matchups.Predict(ctx)
}
