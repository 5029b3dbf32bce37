// Package locate finds the 25 contiguous survey-response columns in a raw
// export via an ordered cascade of heuristic strategies.
package locate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/survey-profiler/internal/types"
)

// ErrSpanNotFound means no strategy could place the response block. The
// caller cannot score anything without it.
var ErrSpanNotFound = errors.New("could not locate the 25-column survey response block")

// AmbiguousSpanError means more than one plausible 25-wide block exists.
// Proceeding would risk mis-mapping every question to the wrong dimension,
// so the search aborts instead of guessing.
type AmbiguousSpanError struct {
	Candidates []types.ColumnSpan
}

func (e *AmbiguousSpanError) Error() string {
	ranges := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		ranges[i] = fmt.Sprintf("%d-%d", c.Start, c.End)
	}
	return fmt.Sprintf("multiple plausible 25-wide response blocks found (%s); specify the question columns explicitly", strings.Join(ranges, ", "))
}

// MissingHeadersError means the header search matched some but not all 25
// question headers. A partial match is a broken export, not a reason to fall
// through to weaker heuristics.
type MissingHeadersError struct {
	Missing []string
}

func (e *MissingHeadersError) Error() string {
	return fmt.Sprintf("missing question columns: %s", strings.Join(e.Missing, ", "))
}
