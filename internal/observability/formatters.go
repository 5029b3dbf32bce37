// Package observability provides the pipeline's structured logger and the
// formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/survey-profiler/internal/scoring"
	"github.com/jonathan/survey-profiler/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSpan outputs the detected survey column block.
func (p *Printer) PrintSpan(span types.ColumnSpan, table *types.ResponseTable) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Columns:  %d..%d (%d wide)\n", span.Start, span.End, span.Width()))
	sb.WriteString(fmt.Sprintf("Q1 head:  %s\n", truncate(table.Header(span.Start), 40)))
	sb.WriteString(fmt.Sprintf("Q25 head: %s", truncate(table.Header(span.End), 40)))

	p.printBox("Survey Columns", sb.String())
}

// PrintParticipant outputs one scored participant: identity, per-dimension
// scores with bands, and the selected content titles.
func (p *Printer) PrintParticipant(rec *types.ParticipantRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", rec.Name))
	if rec.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", rec.Email))
	}
	sb.WriteString(fmt.Sprintf("Date:   %s\n", rec.Date))
	sb.WriteString("\n")

	for _, dim := range types.DimensionOrder {
		if score, ok := rec.Scores.Get(dim); ok {
			sb.WriteString(fmt.Sprintf("%s  %.2f  %s\n", dim, score, scoring.BandFor(score)))
		} else {
			sb.WriteString(fmt.Sprintf("%s  N/A\n", dim))
		}
	}

	sb.WriteString("\n")
	for i, item := range rec.KeyStrengths {
		sb.WriteString(fmt.Sprintf("KS%d: %s\n", i+1, truncate(item.Title, 45)))
	}
	for i, item := range rec.DevelopmentAreas {
		sb.WriteString(fmt.Sprintf("DA%d: %s\n", i+1, truncate(item.Title, 45)))
	}

	p.printBox(fmt.Sprintf("Participant %s", rec.ID), sb.String())
}

// PrintRunSummary outputs the end-of-run totals.
func (p *Printer) PrintRunSummary(processed, skipped int) {
	content := fmt.Sprintf("Processed: %d\nSkipped:   %d", processed, skipped)
	p.printBox("Run Complete", content)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
