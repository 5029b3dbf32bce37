// Package types defines the shared data model for the survey profiler:
// the raw response table, the detected question span, dimension scores,
// bands, and the per-participant output record.
package types

import "strings"

// QuestionCount is the number of Likert items in the instrument.
const QuestionCount = 25

// Column is a single named column of a response table. Cell values are kept
// as raw strings exactly as they appeared in the export; empty or
// whitespace-only strings mean the cell was blank.
type Column struct {
	Name   string
	Values []string
}

// ResponseTable is an immutable tabular survey export: ordered columns, each
// holding one value per row. Nothing in the pipeline mutates it.
type ResponseTable struct {
	Columns []Column
}

// NumCols returns the number of columns.
func (t *ResponseTable) NumCols() int {
	return len(t.Columns)
}

// NumRows returns the number of rows, taken as the longest column.
func (t *ResponseTable) NumRows() int {
	rows := 0
	for _, col := range t.Columns {
		if len(col.Values) > rows {
			rows = len(col.Values)
		}
	}
	return rows
}

// Header returns the header of column idx, or "" if out of range.
func (t *ResponseTable) Header(idx int) string {
	if idx < 0 || idx >= len(t.Columns) {
		return ""
	}
	return t.Columns[idx].Name
}

// Cell returns the raw value at (row, col). Out-of-range coordinates and
// short columns yield "".
func (t *ResponseTable) Cell(row, col int) string {
	if col < 0 || col >= len(t.Columns) {
		return ""
	}
	values := t.Columns[col].Values
	if row < 0 || row >= len(values) {
		return ""
	}
	return values[row]
}

// CellBlank reports whether the cell at (row, col) is missing or
// whitespace-only.
func (t *ResponseTable) CellBlank(row, col int) bool {
	return strings.TrimSpace(t.Cell(row, col)) == ""
}

// ColumnIndex returns the index of the first column whose trimmed,
// case-folded header equals name, or -1.
func (t *ResponseTable) ColumnIndex(name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, col := range t.Columns {
		if strings.ToLower(strings.TrimSpace(col.Name)) == want {
			return i
		}
	}
	return -1
}

// ColumnSpan identifies the 25 contiguous survey-response columns,
// 0-indexed and inclusive on both ends.
type ColumnSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Width returns the number of columns covered by the span, inclusive.
func (s ColumnSpan) Width() int {
	return s.End - s.Start + 1
}

// Valid reports whether the span covers exactly QuestionCount columns with a
// non-negative start.
func (s ColumnSpan) Valid() bool {
	return s.Start >= 0 && s.Width() == QuestionCount
}

// SurveyResponse holds the parsed answers for one participant row. Index i
// corresponds to question i+1. A nil entry means the answer was absent,
// which is distinct from any numeric value.
type SurveyResponse [QuestionCount]*int
