package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseNumeric(t *testing.T) {
	for _, s := range []string{"1", "2", "3", "4", "5", " 3 ", "4.0"} {
		v, err := ParseResponse(s)
		require.NoError(t, err, "input %q", s)
		require.NotNil(t, v, "input %q", s)
	}

	v, err := ParseResponse("5")
	require.NoError(t, err)
	assert.Equal(t, 5, *v)
}

func TestParseResponseScaleViolation(t *testing.T) {
	for _, s := range []string{"6", "7", " 6 ", "6.5", "Somewhat agree", "somewhat disagree"} {
		_, err := ParseResponse(s)
		require.Error(t, err, "input %q", s)

		var sv *ScaleViolationError
		assert.True(t, errors.As(err, &sv), "input %q should be a scale violation", s)
	}
}

func TestParseResponsePhrases(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"Strongly Disagree", 1},
		{"disagree", 2},
		{"Neutral", 3},
		{"Neither agree nor disagree", 3},
		{"Agree", 4},
		{"Strongly agree", 5},
		// Longest-phrase-first: "agree" must not win inside these.
		{"strongly agree!", 5},
		{"I strongly disagree", 1},
	}

	for _, tt := range tests {
		v, err := ParseResponse(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		require.NotNil(t, v, "input %q", tt.in)
		assert.Equal(t, tt.want, *v, "input %q", tt.in)
	}
}

func TestParseResponseAbsent(t *testing.T) {
	for _, s := range []string{"", "   ", "n/a", "prefer not to say", "0", "8", "-1"} {
		v, err := ParseResponse(s)
		require.NoError(t, err, "input %q", s)
		assert.Nil(t, v, "input %q should be absent", s)
	}
}
