package exportpredictors

import (
	"fmt"
	"strconv"
	"strings"

	excelize "github.com/xuri/excelize/v2"

	"github.com/reallyasi9/nbapredict/internal/blobstore"
	"github.com/reallyasi9/nbapredict/internal/data"
	"github.com/reallyasi9/nbapredict/internal/tools/render"
)

const (
	predictorsSheet = "Predictors"
	matchupsSheet   = "Matchups"
)

// ExportPredictors writes the predictor reports of every game on ctx.Date to a workbook.
func ExportPredictors(ctx *Context) error {
	reports, err := ctx.Service.MatchupReports(ctx, ctx.Date, ctx.Days, ctx.Predictor)
	if err != nil {
		return fmt.Errorf("ExportPredictors: failed to build reports: %w", err)
	}
	ctx.Logger.Infow("built matchup reports", "date", ctx.Date.Format("2006-01-02"), "games", len(reports))

	xl, err := makePredictorsExcelFile(reports)
	if err != nil {
		return fmt.Errorf("ExportPredictors: failed to make workbook: %w", err)
	}
	defer xl.Close()

	if ctx.Output == "" || ctx.DryRun {
		rows, err := xl.GetRows(predictorsSheet)
		if err != nil {
			return fmt.Errorf("ExportPredictors: failed to read back rows: %w", err)
		}
		for _, row := range rows {
			fmt.Fprintln(ctx.Console, strings.Join(row, ", "))
		}
		return nil
	}

	writer, err := blobstore.Create(ctx, ctx.Output)
	if err != nil {
		return fmt.Errorf("ExportPredictors: failed to open '%s': %w", ctx.Output, err)
	}
	if _, err := xl.WriteTo(writer); err != nil {
		writer.Close()
		return fmt.Errorf("ExportPredictors: failed to write Excel file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("ExportPredictors: failed to close '%s': %w", ctx.Output, err)
	}
	ctx.Logger.Infow("wrote predictors", "output", ctx.Output)
	return nil
}

func setRow(xl *excelize.File, sheet string, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if f, ok := numeric(v); ok {
			if err := xl.SetCellFloat(sheet, cell, f, -1, 64); err != nil {
				return err
			}
			continue
		}
		if err := xl.SetCellStr(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// numeric parses v as a number. Game IDs keep their leading zeros as text.
func numeric(v string) (float64, bool) {
	if len(v) > 1 && v[0] == '0' && v[1] != '.' {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	return f, err == nil
}

func makePredictorsExcelFile(reports []data.Report) (*excelize.File, error) {
	xl := excelize.NewFile()
	if err := xl.SetSheetName(xl.GetSheetName(0), predictorsSheet); err != nil {
		return nil, err
	}
	if _, err := xl.NewSheet(matchupsSheet); err != nil {
		return nil, err
	}

	if err := setRow(xl, predictorsSheet, 1, render.PredictorHeader); err != nil {
		return nil, err
	}
	row := 2
	for _, r := range reports {
		for _, values := range render.PredictorRows(r) {
			if err := setRow(xl, predictorsSheet, row, values); err != nil {
				return nil, err
			}
			row++
		}
	}

	if err := setRow(xl, matchupsSheet, 1, []string{"Game", "Date", "Away", "Home", "Days of History"}); err != nil {
		return nil, err
	}
	for i, r := range reports {
		values := []string{r.GameID, r.Date.Format("2006-01-02"), r.Away.Team.Name, r.Home.Team.Name, strconv.Itoa(r.DaysOfHistory)}
		if err := setRow(xl, matchupsSheet, i+2, values); err != nil {
			return nil, err
		}
	}
	return xl, nil
}
