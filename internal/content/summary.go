package content

import (
	"fmt"
	"strings"

	"github.com/jonathan/survey-profiler/internal/types"
)

// joinWithAnd joins items as natural language: "A", "A and B",
// "A, B, and C".
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// topDimensions returns up to three dimensions in the given bands, ordered
// by score (descending when desc) with the fixed dimension tie-break. The
// ordering rules mirror the Key Strength and Development Area selections.
func topDimensions(scores types.DimensionScores, desc bool, bands ...types.Band) []types.Dimension {
	candidates := filterBands(scoredDimensions(scores), bands...)
	sortByScore(candidates, desc)
	if len(candidates) > selectionSize {
		candidates = candidates[:selectionSize]
	}
	dims := make([]types.Dimension, len(candidates))
	for i, sd := range candidates {
		dims[i] = sd.Dim
	}
	return dims
}

// ComposeSummary builds the deterministic three-sentence narrative: top
// strengths, development priorities, then fixed guidance. When no dimension
// has a score at all, a single fixed fallback paragraph is returned.
func ComposeSummary(scores types.DimensionScores) string {
	if !scores.AnyPresent() {
		return summaryNoData
	}

	strengths := topDimensions(scores, true, types.BandHigh, types.BandVeryHigh)
	development := topDimensions(scores, false, types.BandDeveloping, types.BandLow)

	sentence1 := summaryNoStrengths
	if len(strengths) > 0 {
		labels := make([]string, len(strengths))
		for i, dim := range strengths {
			labels[i] = dim.Label()
		}
		sentence1 = fmt.Sprintf("Your strongest areas are %s.", joinWithAnd(labels))
	}

	sentence2 := summaryNoDevelopment
	if len(development) > 0 {
		labels := make([]string, len(development))
		for i, dim := range development {
			labels[i] = dim.Label()
		}
		sentence2 = fmt.Sprintf("Priority development areas include %s.", joinWithAnd(labels))
	}

	sentence3 := summaryAllStrong
	if len(development) > 0 {
		sentence3 = summaryWithDevelopment
	}

	return fmt.Sprintf("%s %s %s", sentence1, sentence2, sentence3)
}
