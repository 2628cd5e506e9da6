package stats

import (
	"fmt"
	"math"
)

// Predicate reports whether a game belongs in a window.
type Predicate func(EnrichedGame) bool

// All keeps every game.
func All(EnrichedGame) bool { return true }

// Dimension is one of the metrics a matchup can be compared on.
type Dimension int

const (
	WinningPercentageDimension Dimension = iota
	OffensiveEfficiencyDimension
	DefensiveEfficiencyDimension
)

// Dimensions lists every comparison dimension in report order.
var Dimensions = []Dimension{
	WinningPercentageDimension,
	OffensiveEfficiencyDimension,
	DefensiveEfficiencyDimension,
}

func (d Dimension) String() string {
	switch d {
	case WinningPercentageDimension:
		return "winningPercentage"
	case OffensiveEfficiencyDimension:
		return "offensiveEfficiency"
	case DefensiveEfficiencyDimension:
		return "defensiveEfficiency"
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// SubjectGap selects this dimension from a team's current gap.
func (d Dimension) SubjectGap(g StatGap) float64 {
	switch d {
	case OffensiveEfficiencyDimension:
		return g.OffensiveEfficiency
	case DefensiveEfficiencyDimension:
		return g.DefensiveEfficiency
	default:
		return g.WinningPercentage
	}
}

// GameGap selects this dimension from a past game's winner gap.
func (d Dimension) GameGap(c WinningCharacteristics) float64 {
	switch d {
	case OffensiveEfficiencyDimension:
		return c.OffensiveEfficiencyGap
	case DefensiveEfficiencyDimension:
		return c.DefensiveEfficiencyGap
	default:
		return c.WinningPercentageGap
	}
}

// Tolerance selects this dimension's band.
func (d Dimension) Tolerance(t Tolerances) float64 {
	switch d {
	case OffensiveEfficiencyDimension:
		return t.OffensiveEfficiency
	case DefensiveEfficiencyDimension:
		return t.DefensiveEfficiency
	default:
		return t.WinningPercentage
	}
}

// toleranceSlack absorbs floating point noise in the band comparison,
// so |0.35 - 0.30| is within a 0.05 band.
const toleranceSlack = 1e-9

// Similar keeps games whose winner gap in this dimension is within tolerance of subjectGap.
// Games without derived characteristics are never similar.
func (d Dimension) Similar(subjectGap, tolerance float64) Predicate {
	return func(g EnrichedGame) bool {
		if g.Characteristics == nil {
			return false
		}
		return math.Abs(subjectGap-d.GameGap(*g.Characteristics)) <= tolerance+toleranceSlack
	}
}
