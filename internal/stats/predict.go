package stats

import "fmt"

// Filter returns a copy of window holding only the games keep accepts.
// Rates and the comparison range are cleared; window itself is not modified.
func Filter(window GameWindow, keep Predicate) GameWindow {
	if keep == nil {
		keep = All
	}
	out := GameWindow{
		From:  window.From,
		To:    window.To,
		Games: make([]EnrichedGame, 0, len(window.Games)),
	}
	for _, g := range window.Games {
		if keep(g) {
			out.Games = append(out.Games, g)
		}
	}
	out.GameCount = len(out.Games)
	return out
}

// WindowOptions control how SummarizeWindow builds its report.
type WindowOptions struct {
	// Keep selects the games to summarize. Nil keeps every game.
	Keep Predicate

	// IncludeGames keeps the summarized games in the report. By default only the rates are kept.
	IncludeGames bool

	// ComparisonRange, if not nil, is recorded on the report.
	ComparisonRange *float64
}

// SummarizeWindow filters a window and attaches the rates of what remains.
func SummarizeWindow(window GameWindow, opts WindowOptions) (GameWindow, error) {
	out := Filter(window, opts.Keep)
	rates, err := Summarize(out.Games)
	if err != nil {
		return GameWindow{}, fmt.Errorf("SummarizeWindow: %w", err)
	}
	out.Rates = &rates
	if opts.ComparisonRange != nil {
		r := *opts.ComparisonRange
		out.ComparisonRange = &r
	}
	if !opts.IncludeGames {
		out.Games = []EnrichedGame{}
	}
	return out, nil
}

// Predictor builds similarity windows for a team ahead of a matchup.
type Predictor struct {
	Tolerances Tolerances

	// IncludeGames keeps the matched games in each window rather than only the rates.
	IncludeGames bool
}

// NewPredictor returns a Predictor using DefaultTolerances that reports rates only.
func NewPredictor() Predictor {
	return Predictor{Tolerances: DefaultTolerances}
}

// Predict selects, for each dimension, the past games whose winner held an advantage
// similar to gap and summarizes how those winners won. The subject is the team gap
// was computed for.
func (p Predictor) Predict(subject Team, gap StatGap, corpus GameWindow) (MatchupPredictors, error) {
	for _, g := range corpus.Games {
		if g.Characteristics == nil {
			return MatchupPredictors{}, fmt.Errorf("Predict: %w", &PrerequisiteNotMetError{GameID: g.GameID, Date: g.Date})
		}
	}

	out := MatchupPredictors{TeamID: subject.ID, Gap: gap}
	for _, d := range Dimensions {
		tolerance := d.Tolerance(p.Tolerances)
		window, err := SummarizeWindow(corpus, WindowOptions{
			Keep:            d.Similar(d.SubjectGap(gap), tolerance),
			IncludeGames:    p.IncludeGames,
			ComparisonRange: &tolerance,
		})
		if err != nil {
			return MatchupPredictors{}, fmt.Errorf("Predict: %s: %w", d, err)
		}
		switch d {
		case WinningPercentageDimension:
			out.WinningPercentage = window
		case OffensiveEfficiencyDimension:
			out.OffensiveEfficiency = window
		case DefensiveEfficiencyDimension:
			out.DefensiveEfficiency = window
		}
	}
	return out, nil
}
