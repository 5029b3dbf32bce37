package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/survey-profiler/internal/types"
)

func responsesFrom(values []int) types.SurveyResponse {
	var resp types.SurveyResponse
	for i, v := range values {
		val := v
		resp[i] = &val
	}
	return resp
}

func TestAggregateAppliesReverseScoring(t *testing.T) {
	resp := responsesFrom([]int{
		5, 2, 5, 5, 5,
		5, 3, 5, 5, 5,
		2, 4, 5, 5, 5,
		5, 5, 5, 5, 5,
		5, 5, 5, 5, 5,
	})

	raw := Aggregate(resp)

	// DT items {1,6,11,16,21}: 5, 5, reverse(2)=4, 5, 5 -> 4.8
	dt, ok := raw.Get(types.DimDirectness)
	require.True(t, ok)
	assert.InDelta(t, 4.8, dt, 1e-9)

	// TR items {2,7,12,17,22}: reverse(2)=4, 3, 4, 5, 5 -> 4.2
	tr, ok := raw.Get(types.DimTaskRelation)
	require.True(t, ok)
	assert.InDelta(t, 4.2, tr, 1e-9)
}

func TestScoreRescalesToDisplayScale(t *testing.T) {
	resp := responsesFrom([]int{
		5, 2, 5, 5, 5,
		5, 3, 5, 5, 5,
		2, 4, 5, 5, 5,
		5, 5, 5, 5, 5,
		5, 5, 5, 5, 5,
	})

	display, err := Score(resp)
	require.NoError(t, err)

	dt, ok := display.Get(types.DimDirectness)
	require.True(t, ok)
	assert.InDelta(t, (4.8-1.0)*5.0/6.0, dt, 1e-9)
	assert.Equal(t, types.BandModerate, BandFor(dt))
}

func TestAggregatePartialAndAbsentDimensions(t *testing.T) {
	var resp types.SurveyResponse
	three := 3
	resp[0] = &three // Q1 only: DT from one item

	raw := Aggregate(resp)

	dt, ok := raw.Get(types.DimDirectness)
	require.True(t, ok)
	assert.Equal(t, 3.0, dt)

	// Every other dimension has no present items and must be nil, not zero.
	for _, dim := range []types.Dimension{types.DimTaskRelation, types.DimConflict, types.DimAdaptability, types.DimEmpathy} {
		_, ok := raw.Get(dim)
		assert.False(t, ok, "dimension %s should be absent", dim)
	}
}

func TestScoreAllAbsent(t *testing.T) {
	var resp types.SurveyResponse

	display, err := Score(resp)
	require.NoError(t, err)
	assert.False(t, display.AnyPresent())
	assert.Len(t, display, len(types.DimensionOrder))
}

func TestDisplayScoresAlwaysInRange(t *testing.T) {
	// Exhaustive over uniform response vectors plus the scale extremes.
	for v := 1; v <= 5; v++ {
		values := make([]int, types.QuestionCount)
		for i := range values {
			values[i] = v
		}
		display, err := Score(responsesFrom(values))
		require.NoError(t, err)
		for dim, score := range display {
			require.NotNil(t, score)
			assert.GreaterOrEqual(t, *score, 0.0, "dim %s", dim)
			assert.LessOrEqual(t, *score, 5.0, "dim %s", dim)
			assert.False(t, math.IsNaN(*score))
		}
	}
}

func TestReverseScore(t *testing.T) {
	assert.Equal(t, 5, ReverseScore(1))
	assert.Equal(t, 1, ReverseScore(5))
	assert.Equal(t, 3, ReverseScore(3))
}

func TestBandThresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  types.Band
	}{
		{0.0, types.BandLow},
		{1.49, types.BandLow},
		{1.5, types.BandDeveloping},
		{2.49, types.BandDeveloping},
		{2.5, types.BandModerate},
		{3.49, types.BandModerate},
		{3.5, types.BandHigh},
		{4.49, types.BandHigh},
		{4.5, types.BandVeryHigh},
		{5.0, types.BandVeryHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.score), "score %v", tt.score)
	}
}
