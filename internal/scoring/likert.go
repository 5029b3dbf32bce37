// Package scoring converts raw survey cells into validated Likert responses
// and aggregates them into per-dimension scores on the 0-5 display scale.
package scoring

import (
	"fmt"
	"strconv"
	"strings"
)

// ScaleViolationError reports a response that belongs to a 7-point
// questionnaire (a 6/7 value or "somewhat" hedged phrasing). The instrument
// is a strict 5-point scale, so this aborts the whole dataset rather than
// being coerced.
type ScaleViolationError struct {
	Value string
}

func (e *ScaleViolationError) Error() string {
	return fmt.Sprintf("response %q indicates a 7-point scale (6/7 value or 'somewhat' phrasing); this survey uses a strict 5-point Likert scale", e.Value)
}

// phraseValues maps Likert phrases to values. Longest phrases come first so
// that "agree" never matches inside "strongly agree".
var phraseValues = []struct {
	phrase string
	value  int
}{
	{"neither agree nor disagree", 3},
	{"strongly disagree", 1},
	{"strongly agree", 5},
	{"disagree", 2},
	{"agree", 4},
	{"neutral", 3},
}

// ParseResponse converts one raw cell into a 1-5 value or absent (nil).
//
// Numeric values 1-5 and the exact strings "1".."5" are accepted. A numeric
// 6 or 7, or any text containing "somewhat", returns ScaleViolationError.
// Blank cells and unrecognized text are absent, not errors: a Likert parser
// should only reject on the invalid-numeric side.
func ParseResponse(raw string) (*int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		v := int(f)
		switch {
		case v >= 1 && v <= 5:
			return &v, nil
		case v == 6 || v == 7:
			return nil, &ScaleViolationError{Value: s}
		default:
			return nil, nil
		}
	}

	lower := strings.ToLower(s)
	if strings.Contains(lower, "somewhat") {
		return nil, &ScaleViolationError{Value: s}
	}

	for _, pv := range phraseValues {
		if strings.Contains(lower, pv.phrase) {
			v := pv.value
			return &v, nil
		}
	}

	return nil, nil
}
