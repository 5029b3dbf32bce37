package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/survey-profiler/internal/types"
)

func TestPrintParticipant(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	dt := 4.2
	rec := &types.ParticipantRecord{
		ID:    "42",
		Name:  "Alice Smith",
		Email: "alice@example.com",
		Date:  "15/03/2024",
		Scores: types.DimensionScores{
			types.DimDirectness: &dt,
		},
		KeyStrengths: []types.ContentItem{
			{Title: "Directness & Transparency - 4.2"},
		},
	}

	p.PrintParticipant(rec)
	output := buf.String()

	assert.Contains(t, output, "Participant 42")
	assert.Contains(t, output, "Alice Smith")
	assert.Contains(t, output, "alice@example.com")
	assert.Contains(t, output, "DT  4.20  High")
	assert.Contains(t, output, "TR  N/A")
	assert.Contains(t, output, "KS1: Directness & Transparency - 4.2")
}

func TestPrintParticipant_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParticipant(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSpan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	table := &types.ResponseTable{
		Columns: make([]types.Column, 30),
	}
	table.Columns[2] = types.Column{Name: "I prefer to be clear and direct"}
	table.Columns[26] = types.Column{Name: "Q25"}

	p.PrintSpan(types.ColumnSpan{Start: 2, End: 26}, table)
	output := buf.String()

	assert.Contains(t, output, "Survey Columns")
	assert.Contains(t, output, "2..26 (25 wide)")
	assert.Contains(t, output, "Q25")
}

func TestPrintRunSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRunSummary(7, 2)
	output := buf.String()

	assert.Contains(t, output, "Run Complete")
	assert.Contains(t, output, "Processed: 7")
	assert.Contains(t, output, "Skipped:   2")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(false)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	verbose, err := NewLogger(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(-1)) // debug level
}
