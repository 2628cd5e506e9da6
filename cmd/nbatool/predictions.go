package main

import (
	"context"

	"github.com/reallyasi9/nbapredict/internal/tools/predictions"
)

type lsPredictionsCmd struct {
	Date   date   `arg:"" help:"Day of the games (YYYYMMDD)."`
	GameID string `arg:"" optional:"" help:"Only show the prediction for this game."`
}

func (c *lsPredictionsCmd) Run(g *globalCmd) error {
	ctx := predictions.NewContext(context.Background())
	client, err := g.firestoreClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()
	ctx.FirestoreClient = client
	ctx.Logger = g.Logger()
	ctx.Date = c.Date.Time
	ctx.GameID = c.GameID
	return predictions.LsPredictions(ctx)
}
