package content

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/survey-profiler/internal/scoring"
	"github.com/jonathan/survey-profiler/internal/types"
)

// bodyLineCount is the fixed number of lines every content body carries.
const bodyLineCount = 3

// formatBodyToLines reformats a paragraph into exactly three lines by
// splitting on sentence-terminal punctuation ('.' or ';'), keeping the
// delimiter, taking the first three fragments and padding with empty lines.
func formatBodyToLines(text string) []string {
	var segments []string
	var current strings.Builder

	for _, ch := range text {
		current.WriteRune(ch)
		if ch == '.' || ch == ';' {
			if s := strings.TrimSpace(current.String()); s != "" {
				segments = append(segments, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		segments = append(segments, s)
	}

	for len(segments) < bodyLineCount {
		segments = append(segments, "")
	}
	return segments[:bodyLineCount]
}

// splitBodyLines splits an already line-broken body into exactly three
// lines, padding with empty lines. Used for the recommendation bank, whose
// bodies are pre-split and may contain internal periods.
func splitBodyLines(text string) []string {
	lines := strings.Split(text, "\n")
	for len(lines) < bodyLineCount {
		lines = append(lines, "")
	}
	return lines[:bodyLineCount]
}

// formatScore1DP renders a score with one decimal, rounding half up.
func formatScore1DP(score float64) string {
	return fmt.Sprintf("%.1f", math.Floor(score*10+0.5)/10)
}

// itemTitle builds the "<dimension label> - <score>" title for a real
// selection.
func itemTitle(dim types.Dimension, score float64) string {
	return fmt.Sprintf("%s - %s", dim.Label(), formatScore1DP(score))
}

// FormatScoreCell renders the per-dimension score cell: "N/A" when the
// dimension is absent, otherwise the score to two decimals followed by the
// first sentence of its band interpretation.
func FormatScoreCell(scores types.DimensionScores, dim types.Dimension) string {
	score, ok := scores.Get(dim)
	if !ok {
		return "N/A"
	}

	band := scoring.BandFor(score)
	interp := Interpretations[dim][band]
	if interp == "" {
		interp = "Score interpretation not available"
	}

	first := interp
	if idx := strings.Index(interp, "."); idx >= 0 {
		first = interp[:idx+1]
	}

	return fmt.Sprintf("%.2f - %s", score, first)
}
