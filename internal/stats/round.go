package stats

import "math"

// Precision of the values reported by this package.
const (
	PercentageDigits = 3
	EfficiencyDigits = 1
	RateDigits       = 3
	PointGapDigits   = 2

	// characteristicDigits is the precision of gaps stored on individual games.
	characteristicDigits = 3
)

// Round rounds x to the given number of decimal digits, halves away from zero.
func Round(x float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(x*p) / p
}
