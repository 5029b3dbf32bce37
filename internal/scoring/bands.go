package scoring

import "github.com/jonathan/survey-profiler/internal/types"

// BandFor classifies a 0-5 display score into its qualitative band. The
// thresholds form a total order; classification is pure and has no
// hysteresis.
func BandFor(score float64) types.Band {
	switch {
	case score >= 4.5:
		return types.BandVeryHigh
	case score >= 3.5:
		return types.BandHigh
	case score >= 2.5:
		return types.BandModerate
	case score >= 1.5:
		return types.BandDeveloping
	default:
		return types.BandLow
	}
}
