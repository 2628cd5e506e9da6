package stats

import (
	"gonum.org/v1/gonum/stat"
)

// Summarize reduces games to the fraction of winners showing each characteristic
// and the mean winning margin. An empty slice summarizes to all zeros.
func Summarize(games []EnrichedGame) (CharacteristicRates, error) {
	var rates CharacteristicRates
	if len(games) == 0 {
		return rates, nil
	}

	var home, offense, defense, pct int
	gaps := make([]float64, len(games))
	for i, g := range games {
		c := g.Characteristics
		if c == nil {
			return CharacteristicRates{}, &PrerequisiteNotMetError{GameID: g.GameID, Date: g.Date}
		}
		if c.WasHomeTeam {
			home++
		}
		if c.MoreOffensivelyEfficient {
			offense++
		}
		if c.MoreDefensivelyEfficient {
			defense++
		}
		if c.HadHigherWinningPercentage {
			pct++
		}
		gaps[i] = float64(c.PointGap)
	}

	n := float64(len(games))
	rates.WasHomeTeam = Round(float64(home)/n, RateDigits)
	rates.MoreOffensivelyEfficient = Round(float64(offense)/n, RateDigits)
	rates.MoreDefensivelyEfficient = Round(float64(defense)/n, RateDigits)
	rates.HadHigherWinningPercentage = Round(float64(pct)/n, RateDigits)
	rates.AveragePointGap = Round(stat.Mean(gaps, nil), PointGapDigits)
	return rates, nil
}
