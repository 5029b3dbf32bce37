package scoring

import (
	"fmt"

	"github.com/jonathan/survey-profiler/internal/types"
)

// reverseItems holds the 1-indexed question numbers whose raw scale is
// inverted before aggregation.
var reverseItems = map[int]bool{2: true, 11: true}

// dimensionItems maps each dimension to its five 1-indexed constituent
// questions.
var dimensionItems = map[types.Dimension][]int{
	types.DimDirectness:   {1, 6, 11, 16, 21},
	types.DimTaskRelation: {2, 7, 12, 17, 22},
	types.DimConflict:     {3, 8, 13, 18, 23},
	types.DimAdaptability: {4, 9, 14, 19, 24},
	types.DimEmpathy:      {5, 10, 15, 20, 25},
}

// InternalError reports a display score outside [0,5] after rescaling. This
// is a scorer defect, never bad input, and must not be swallowed or retried.
type InternalError struct {
	Dim   types.Dimension
	Score float64
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal scoring defect: %s display score %v outside [0, 5]", e.Dim, e.Score)
}

// ReverseScore inverts a 1-5 Likert value.
func ReverseScore(v int) int {
	return 6 - v
}

// Aggregate computes the raw per-dimension scores from 25 parsed responses:
// reverse-corrected values averaged over whichever constituent items are
// present. A dimension with no present items gets a nil score, which must
// propagate as missing rather than a false low value.
func Aggregate(resp types.SurveyResponse) types.DimensionScores {
	corrected := make([]*int, len(resp))
	for i, v := range resp {
		if v == nil {
			continue
		}
		q := i + 1
		val := *v
		if reverseItems[q] {
			val = ReverseScore(val)
		}
		corrected[i] = &val
	}

	scores := make(types.DimensionScores, len(dimensionItems))
	for dim, items := range dimensionItems {
		sum, n := 0, 0
		for _, q := range items {
			if v := corrected[q-1]; v != nil {
				sum += *v
				n++
			}
		}
		if n == 0 {
			scores[dim] = nil
			continue
		}
		mean := float64(sum) / float64(n)
		scores[dim] = &mean
	}
	return scores
}

// rescale maps a raw score onto the 0-5 display scale.
func rescale(x float64) float64 {
	return (x - 1.0) * (5.0 / 6.0)
}

// clamp bounds a display score to [0, 5].
func clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 5 {
		return 5
	}
	return x
}

// Rescale converts raw dimension scores to the 0-5 display scale via
// (x-1)*5/6 with clamping. It returns InternalError if any clamped score
// still falls outside [0, 5].
func Rescale(raw types.DimensionScores) (types.DimensionScores, error) {
	display := make(types.DimensionScores, len(raw))
	for dim, v := range raw {
		if v == nil {
			display[dim] = nil
			continue
		}
		s := clamp(rescale(*v))
		if s < 0.0 || s > 5.0 {
			return nil, &InternalError{Dim: dim, Score: s}
		}
		display[dim] = &s
	}
	return display, nil
}

// Score runs the full scoring stage: aggregation then display rescale.
func Score(resp types.SurveyResponse) (types.DimensionScores, error) {
	return Rescale(Aggregate(resp))
}
