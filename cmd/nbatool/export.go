package main

import (
	"context"

	"github.com/reallyasi9/nbapredict/internal/tools/exportpredictors"
)

type exportCmd struct {
	predictorFlags

	Date   date   `arg:"" help:"Day of the games (YYYYMMDD)."`
	Output string `arg:"" optional:"" help:"Workbook to write: a local path or a gs:// URL. If not given, rows are printed."`
}

func (c *exportCmd) Run(g *globalCmd) error {
	ctx := exportpredictors.NewContext(context.Background())
	svc, _, closer, err := g.newService(ctx)
	if err != nil {
		return err
	}
	defer closer()
	ctx.Service = svc
	ctx.Logger = g.Logger()
	ctx.DryRun = g.DryRun
	ctx.Date = c.Date.Time
	ctx.Days = c.Days
	ctx.Predictor = c.predictor(false)
	ctx.Output = c.Output
	return exportpredictors.ExportPredictors(ctx)
}
