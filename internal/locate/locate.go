package locate

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/survey-profiler/internal/types"
)

// Anchor is the known Q1 header fragment used to find the response block.
const Anchor = "prefer to be clear and direct"

// fixedAnchorColumn is where the canonical export places the anchor header
// (spreadsheet column I, 0-indexed).
const fixedAnchorColumn = 8

// Locator runs the strategy cascade against a response table.
type Locator struct {
	logger *zap.Logger
}

// New creates a Locator. A nil logger disables logging.
func New(logger *zap.Logger) *Locator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locator{logger: logger}
}

// strategy is one detection heuristic: it either finds a span, declines
// (found=false) so the next strategy runs, or fails fatally which aborts the
// whole cascade.
type strategy struct {
	name string
	run  func(*types.ResponseTable) (types.ColumnSpan, bool, error)
}

// Locate returns the span of the 25 response columns. Strategies run in a
// fixed priority order, each relaxing one assumption of the previous:
// position, adjacency, header text, then statistical shape. The first
// definite answer wins; a fatal error from any strategy short-circuits the
// rest; ErrSpanNotFound is returned when every strategy declines.
func (l *Locator) Locate(table *types.ResponseTable) (types.ColumnSpan, error) {
	strategies := []strategy{
		{"FixedPosition", l.fixedPosition},
		{"AfterAnchor", l.afterAnchor},
		{"AnchorIsQ1", l.anchorIsFirstQuestion},
		{"HeaderSearch", l.headerSearch},
		{"StatisticalHeuristic", l.statisticalHeuristic},
	}

	for _, s := range strategies {
		span, found, err := s.run(table)
		if err != nil {
			return types.ColumnSpan{}, err
		}
		if found {
			l.logger.Info("located survey response block",
				zap.String("strategy", s.name),
				zap.Int("start", span.Start),
				zap.Int("end", span.End))
			return span, nil
		}
	}

	l.logger.Warn("no strategy located the survey response block")
	return types.ColumnSpan{}, ErrSpanNotFound
}

func headerHasAnchor(header string) bool {
	return strings.Contains(strings.ToLower(header), Anchor)
}

// fixedPosition covers the canonical export: the anchor header sits at
// spreadsheet column I and the 25 questions run from there.
func (l *Locator) fixedPosition(table *types.ResponseTable) (types.ColumnSpan, bool, error) {
	if table.NumCols() <= fixedAnchorColumn {
		return types.ColumnSpan{}, false, nil
	}
	if !headerHasAnchor(table.Header(fixedAnchorColumn)) {
		return types.ColumnSpan{}, false, nil
	}
	if table.NumCols() < fixedAnchorColumn+types.QuestionCount {
		return types.ColumnSpan{}, false, nil
	}
	return types.ColumnSpan{Start: fixedAnchorColumn, End: fixedAnchorColumn + types.QuestionCount - 1}, true, nil
}

// afterAnchor finds the anchor anywhere and takes the 25 columns strictly
// after it; the anchor column itself is a preceding, non-response column.
func (l *Locator) afterAnchor(table *types.ResponseTable) (types.ColumnSpan, bool, error) {
	for idx := 0; idx < table.NumCols(); idx++ {
		if !headerHasAnchor(table.Header(idx)) {
			continue
		}
		if idx+types.QuestionCount < table.NumCols() {
			return types.ColumnSpan{Start: idx + 1, End: idx + types.QuestionCount}, true, nil
		}
	}
	return types.ColumnSpan{}, false, nil
}

// anchorIsFirstQuestion treats the anchor column itself as question 1 with
// 24 more columns after it.
func (l *Locator) anchorIsFirstQuestion(table *types.ResponseTable) (types.ColumnSpan, bool, error) {
	for idx := 0; idx < table.NumCols(); idx++ {
		if !headerHasAnchor(table.Header(idx)) {
			continue
		}
		if idx+types.QuestionCount-1 < table.NumCols() {
			return types.ColumnSpan{Start: idx, End: idx + types.QuestionCount - 1}, true, nil
		}
	}
	return types.ColumnSpan{}, false, nil
}

// questionHeaderVariants returns the accepted header spellings for question q.
func questionHeaderVariants(q int) []string {
	return []string{
		fmt.Sprintf("q%d", q),
		fmt.Sprintf("q %d", q),
		fmt.Sprintf("q%02d", q),
		fmt.Sprintf("q%d_response", q),
		fmt.Sprintf("q%d response", q),
	}
}

// headerSearch accepts named question headers (Q1..Q25 with spelling
// variants) in any column order. Finding only part of the set is fatal:
// proceeding with a subset would silently drop items.
func (l *Locator) headerSearch(table *types.ResponseTable) (types.ColumnSpan, bool, error) {
	variants := make(map[string]int, types.QuestionCount*5)
	for q := 1; q <= types.QuestionCount; q++ {
		for _, v := range questionHeaderVariants(q) {
			variants[v] = q
		}
	}

	found := make(map[int]int, types.QuestionCount)
	for idx := 0; idx < table.NumCols(); idx++ {
		header := strings.ToLower(strings.TrimSpace(table.Header(idx)))
		q, ok := variants[header]
		if !ok {
			continue
		}
		if _, seen := found[q]; !seen {
			found[q] = idx
		}
	}

	if len(found) == 0 {
		return types.ColumnSpan{}, false, nil
	}

	var missing []string
	for q := 1; q <= types.QuestionCount; q++ {
		if _, ok := found[q]; !ok {
			missing = append(missing, "Q"+strconv.Itoa(q))
		}
	}
	if len(missing) > 0 {
		return types.ColumnSpan{}, false, &MissingHeadersError{Missing: missing}
	}

	minIdx, maxIdx := found[1], found[1]
	for _, idx := range found {
		if idx < minIdx {
			minIdx = idx
		}
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	return types.ColumnSpan{Start: minIdx, End: maxIdx}, true, nil
}

// likertPhrases are the cell shapes counted as Likert-like by the
// statistical heuristic. Substring matching mirrors the tolerant parser.
var likertPhrases = []string{
	"strongly disagree", "strongly_disagree",
	"strongly agree", "strongly_agree",
	"disagree", "neutral", "agree",
	"1", "2", "3", "4", "5", "6", "7",
}

func cellLooksLikert(cell string) bool {
	s := strings.ToLower(strings.TrimSpace(cell))
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		v := int(f)
		if v >= 1 && v <= 7 {
			return true
		}
	}
	for _, p := range likertPhrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// statisticalHeuristic slides a 25-wide window across the table. A window
// qualifies when its first column carries the anchor and more than half of
// its non-blank cells look like 1-7 numeric or Likert-phrase text. Exactly
// one qualifying window is accepted; more than one is fatal because picking
// between them would be a guess.
func (l *Locator) statisticalHeuristic(table *types.ResponseTable) (types.ColumnSpan, bool, error) {
	var candidates []types.ColumnSpan

	for start := 0; start+types.QuestionCount <= table.NumCols(); start++ {
		if !headerHasAnchor(table.Header(start)) {
			continue
		}

		total, likert := 0, 0
		for col := start; col < start+types.QuestionCount; col++ {
			for row := 0; row < table.NumRows(); row++ {
				if table.CellBlank(row, col) {
					continue
				}
				total++
				if cellLooksLikert(table.Cell(row, col)) {
					likert++
				}
			}
		}

		if total > 0 && float64(likert)/float64(total) > 0.5 {
			candidates = append(candidates, types.ColumnSpan{Start: start, End: start + types.QuestionCount - 1})
		}
	}

	switch len(candidates) {
	case 0:
		return types.ColumnSpan{}, false, nil
	case 1:
		return candidates[0], true, nil
	default:
		return types.ColumnSpan{}, false, &AmbiguousSpanError{Candidates: candidates}
	}
}
