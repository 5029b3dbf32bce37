package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/survey-profiler/internal/types"
)

func TestJoinWithAnd(t *testing.T) {
	assert.Equal(t, "", joinWithAnd(nil))
	assert.Equal(t, "A", joinWithAnd([]string{"A"}))
	assert.Equal(t, "A and B", joinWithAnd([]string{"A", "B"}))
	assert.Equal(t, "A, B, and C", joinWithAnd([]string{"A", "B", "C"}))
}

func TestComposeSummaryMixedProfile(t *testing.T) {
	scores := scoresOf(map[types.Dimension]float64{
		types.DimDirectness:   4.6,
		types.DimTaskRelation: 3.8,
		types.DimConflict:     3.0,
		types.DimAdaptability: 1.2,
		types.DimEmpathy:      2.0,
	})

	summary := ComposeSummary(scores)

	assert.Contains(t, summary, "Your strongest areas are Directness & Transparency and Task vs Relational Accountability.")
	assert.Contains(t, summary, "Priority development areas include Cultural Adaptability and Empathy & Perspective-Taking.")
	assert.Contains(t, summary, summaryWithDevelopment)
}

func TestComposeSummaryAllStrong(t *testing.T) {
	scores := scoresOf(map[types.Dimension]float64{
		types.DimDirectness:   4.6,
		types.DimTaskRelation: 4.2,
		types.DimConflict:     4.9,
		types.DimAdaptability: 3.8,
		types.DimEmpathy:      4.0,
	})

	summary := ComposeSummary(scores)

	// Top three strengths by score, joined with the serial comma.
	assert.Contains(t, summary,
		"Your strongest areas are Conflict Orientation, Directness & Transparency, and Task vs Relational Accountability.")
	assert.Contains(t, summary, summaryNoDevelopment)
	assert.Contains(t, summary, summaryAllStrong)
}

func TestComposeSummaryNoStrengths(t *testing.T) {
	scores := scoresOf(map[types.Dimension]float64{
		types.DimDirectness: 3.0,
		types.DimEmpathy:    2.8,
	})

	summary := ComposeSummary(scores)

	assert.Contains(t, summary, summaryNoStrengths)
	assert.Contains(t, summary, summaryNoDevelopment)
}

func TestComposeSummaryNoData(t *testing.T) {
	assert.Equal(t, summaryNoData, ComposeSummary(scoresOf(nil)))
}

func TestTextBankCoversAllDimensions(t *testing.T) {
	for _, dim := range types.DimensionOrder {
		for _, band := range []types.Band{
			types.BandLow, types.BandDeveloping, types.BandModerate,
			types.BandHigh, types.BandVeryHigh,
		} {
			assert.NotEmpty(t, Interpretations[dim][band], "interpretation %s/%s", dim, band)
		}
		assert.NotEmpty(t, strengthTexts[dim][types.BandHigh], "strength %s high", dim)
		assert.NotEmpty(t, strengthTexts[dim][types.BandVeryHigh], "strength %s very high", dim)
		assert.NotEmpty(t, developmentTexts[dim][types.BandDeveloping], "development %s developing", dim)
		assert.NotEmpty(t, developmentTexts[dim][types.BandLow], "development %s low", dim)
		assert.NotEmpty(t, recommendationTexts[dim], "recommendation %s", dim)
	}
}
