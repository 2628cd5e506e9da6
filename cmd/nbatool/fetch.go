package main

import (
	"context"
	"fmt"
	"time"

	"github.com/reallyasi9/nbapredict/internal/nbadata"
	"github.com/reallyasi9/nbapredict/internal/tools/fetchstats"
)

type fetchRange struct {
	From       date          `arg:"" help:"First day to download (YYYYMMDD)."`
	To         date          `arg:"" optional:"" help:"Last day to download (YYYYMMDD). Defaults to the first day."`
	NoProgress bool          `help:"Hide the progress bar."`
	Timeout    time.Duration `help:"Timeout of each request to stats.nba.com." default:"30s"`
}

func (f fetchRange) newContext(g *globalCmd) (*fetchstats.Context, func() error, error) {
	ctx := fetchstats.NewContext(context.Background())
	store, err := g.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	ctx.Store = store
	ctx.Client = nbadata.NewClient(nbadata.WithTimeout(f.Timeout))
	ctx.Logger = g.Logger()
	ctx.DryRun = g.DryRun
	ctx.Force = g.Force
	ctx.NoProgress = f.NoProgress
	ctx.From = f.From.Time
	ctx.To = f.To.Time
	return ctx, store.Close, nil
}

func runFetch(g *globalCmd, f fetchRange, fetch func(*fetchstats.Context) (fetchstats.Summary, error)) error {
	ctx, closer, err := f.newContext(g)
	if err != nil {
		return err
	}
	defer closer()
	summary, err := fetch(ctx)
	if err != nil {
		return err
	}
	fmt.Println(summary)
	return nil
}

type fetchBoxScoresCmd struct {
	fetchRange
}

func (c *fetchBoxScoresCmd) Run(g *globalCmd) error {
	return runFetch(g, c.fetchRange, fetchstats.FetchBoxScores)
}

type fetchTeamStatsCmd struct {
	fetchRange
}

func (c *fetchTeamStatsCmd) Run(g *globalCmd) error {
	return runFetch(g, c.fetchRange, fetchstats.FetchTeamStats)
}

type fetchMatchupsCmd struct {
	fetchRange
}

func (c *fetchMatchupsCmd) Run(g *globalCmd) error {
	return runFetch(g, c.fetchRange, fetchstats.FetchMatchups)
}
