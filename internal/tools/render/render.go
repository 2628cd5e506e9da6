// Package render formats matchup reports for terminals and spreadsheets.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/exp/constraints"

	"github.com/reallyasi9/nbapredict/internal/data"
	"github.com/reallyasi9/nbapredict/internal/stats"
)

// Signed formats a number with an explicit sign and the given number of decimals.
func Signed[T constraints.Integer | constraints.Float](x T, decimals int) string {
	return fmt.Sprintf("%+.*f", decimals, float64(x))
}

// Percent formats a rate in [0, 1] as a percentage with one decimal.
func Percent[T constraints.Float](x T) string {
	return fmt.Sprintf("%.1f%%", float64(x)*100)
}

// PredictorHeader names the columns of PredictorRows.
var PredictorHeader = []string{
	"Game", "Team", "Opponent", "Dimension", "Gap", "Tolerance", "Games",
	"Home", "More Off. Eff.", "More Def. Eff.", "Higher Win %", "Avg. Point Gap",
}

func gapDecimals(d stats.Dimension) int {
	if d == stats.WinningPercentageDimension {
		return stats.PercentageDigits
	}
	return stats.EfficiencyDigits
}

func teamRows(gameID string, side, opponent data.TeamReport) [][]string {
	rows := make([][]string, 0, len(stats.Dimensions))
	for _, d := range stats.Dimensions {
		w := side.Predictors.Window(d)
		var rates stats.CharacteristicRates
		if w.Rates != nil {
			rates = *w.Rates
		}
		tolerance := ""
		if w.ComparisonRange != nil {
			tolerance = strconv.FormatFloat(*w.ComparisonRange, 'g', -1, 64)
		}
		rows = append(rows, []string{
			gameID,
			side.Team.Abbreviation,
			opponent.Team.Abbreviation,
			d.String(),
			Signed(d.SubjectGap(side.Gap), gapDecimals(d)),
			tolerance,
			strconv.Itoa(w.GameCount),
			Percent(rates.WasHomeTeam),
			Percent(rates.MoreOffensivelyEfficient),
			Percent(rates.MoreDefensivelyEfficient),
			Percent(rates.HadHigherWinningPercentage),
			strconv.FormatFloat(rates.AveragePointGap, 'f', stats.PointGapDigits, 64),
		})
	}
	return rows
}

// PredictorRows flattens a report into one row per team per dimension, home team first.
func PredictorRows(r data.Report) [][]string {
	rows := teamRows(r.GameID, r.Home, r.Away)
	return append(rows, teamRows(r.GameID, r.Away, r.Home)...)
}

// WriteReport renders a report as a table.
func WriteReport(w io.Writer, r data.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s @ %s, %s (%d days of history)",
		r.Away.Team.Name, r.Home.Team.Name, r.Date.Format("2006-01-02"), r.DaysOfHistory))
	t.AppendHeader(toRow(PredictorHeader[1:]))
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, AutoMerge: true},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
		{Number: 10, Align: text.AlignRight},
		{Number: 11, Align: text.AlignRight},
	})
	for i, row := range PredictorRows(r) {
		if i == len(stats.Dimensions) {
			t.AppendSeparator()
		}
		t.AppendRow(toRow(row[1:]))
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// WriteMatchups renders a day's schedule as a table.
func WriteMatchups(w io.Writer, matchups []data.Matchup) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Game", "Away", "Home"})
	for _, m := range matchups {
		t.AppendRow(table.Row{m.GameID, m.Away.Name, m.Home.Name})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// WriteTeams renders teams as a table, with their efficiency profiles if any team has one.
func WriteTeams(w io.Writer, teams []stats.Team) {
	withProfiles := false
	for _, team := range teams {
		if team.Profile != nil {
			withProfiles = true
			break
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	if withProfiles {
		t.AppendHeader(table.Row{"ID", "Team", "Name", "Win %", "Off. Eff.", "Off. Rank", "Def. Eff.", "Def. Rank"})
	} else {
		t.AppendHeader(table.Row{"ID", "Team", "Name"})
	}
	for _, team := range teams {
		row := table.Row{team.ID, team.Abbreviation, team.Name}
		if withProfiles {
			if p := team.Profile; p != nil {
				row = append(row,
					fmt.Sprintf("%.3f", p.WinningPercentage),
					fmt.Sprintf("%.1f", p.OffensiveEfficiency), p.OffensiveRank,
					fmt.Sprintf("%.1f", p.DefensiveEfficiency), p.DefensiveRank)
			} else {
				row = append(row, "", "", "", "", "")
			}
		}
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// WriteWindow renders the rates of a window of games, followed by the games themselves if it holds any.
func WriteWindow(w io.Writer, window stats.GameWindow) {
	var rates stats.CharacteristicRates
	if window.Rates != nil {
		rates = *window.Rates
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("%s to %s", window.From.Format("2006-01-02"), window.To.Format("2006-01-02")))
	t.AppendHeader(table.Row{"Games", "Home", "More Off. Eff.", "More Def. Eff.", "Higher Win %", "Avg. Point Gap"})
	t.AppendRow(table.Row{
		window.GameCount,
		Percent(rates.WasHomeTeam),
		Percent(rates.MoreOffensivelyEfficient),
		Percent(rates.MoreDefensivelyEfficient),
		Percent(rates.HadHigherWinningPercentage),
		strconv.FormatFloat(rates.AveragePointGap, 'f', stats.PointGapDigits, 64),
	})
	t.SetStyle(table.StyleLight)
	t.Render()

	if len(window.Games) > 0 {
		WriteGames(w, window.Games)
	}
}

// gameGapDecimals is the precision of the gaps stored on each game.
const gameGapDecimals = 3

// WriteGames renders final scores with the winner's gaps.
func WriteGames(w io.Writer, games []stats.EnrichedGame) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Game", "Away", "Home", "Score", "Win % Gap", "Off. Eff. Gap", "Def. Eff. Gap", "Point Gap"})
	for _, g := range games {
		row := table.Row{
			g.Date.Format("2006-01-02"), g.GameID, g.Away.Abbreviation, g.Home.Abbreviation,
			fmt.Sprintf("%d-%d", g.Away.Points, g.Home.Points),
		}
		if c := g.Characteristics; c != nil {
			row = append(row,
				Signed(c.WinningPercentageGap, gameGapDecimals),
				Signed(c.OffensiveEfficiencyGap, gameGapDecimals),
				Signed(c.DefensiveEfficiencyGap, gameGapDecimals),
				c.PointGap)
		}
		t.AppendRow(row)
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func toRow(ss []string) table.Row {
	row := make(table.Row, len(ss))
	for i, s := range ss {
		row[i] = s
	}
	return row
}
