package intake

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/survey-profiler/internal/types"
)

// DateLayout is the fixed report date format (day first).
const DateLayout = "02/01/2006"

// excelEpoch is the origin for Excel date serials.
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order when parsing a Date cell. Day-first layouts
// take precedence.
var dateLayouts = []string{
	"2006-01-02",
	"2/1/2006",
	"1/2/2006",
	"2-1-2006",
	"2006/01/02",
}

// startTimeLayouts extend the date layouts with the timestamp shapes survey
// platforms emit in Start time columns.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/06 15:04:05",
	"2/1/06 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

// DeriveDates returns one dd/mm/yyyy date string per data row. An existing
// Date column wins; otherwise a Start time column is parsed; otherwise every
// row gets the source file's modified date, or today when the source is not
// on disk. Unparseable cells fall back the same way.
func DeriveDates(table *types.ResponseTable, srcPath string, logger *zap.Logger) []string {
	if logger == nil {
		logger = zap.NewNop()
	}

	fallback := fallbackDate(srcPath)
	dates := make([]string, table.NumRows())

	if col := table.ColumnIndex("date"); col >= 0 {
		logger.Info("using existing Date column")
		for row := range dates {
			if t, ok := parseDate(table.Cell(row, col)); ok {
				dates[row] = t.Format(DateLayout)
			} else {
				dates[row] = fallback
			}
		}
		return dates
	}

	col := table.ColumnIndex("start time")
	if col < 0 {
		col = table.ColumnIndex("start_time")
	}
	if col >= 0 {
		logger.Info("deriving dates from Start time column")
		failed := 0
		for row := range dates {
			if t, ok := parseStartTime(table.Cell(row, col)); ok {
				dates[row] = t.Format(DateLayout)
			} else {
				dates[row] = fallback
				failed++
			}
		}
		if failed > 0 {
			logger.Warn("some Start time cells were unparseable",
				zap.Int("rows", failed),
				zap.String("fallback", fallback))
		}
		return dates
	}

	logger.Warn("input lacks Date and Start time columns",
		zap.String("fallback", fallback))
	for row := range dates {
		dates[row] = fallback
	}
	return dates
}

// parseDate parses a Date cell against the known date layouts.
func parseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseStartTime parses a Start time cell: Excel date serials first, then
// timestamp layouts, then plain date layouts. Internal whitespace is
// normalised before the second pass.
func parseStartTime(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial <= 0 {
			return time.Time{}, false
		}
		return excelEpoch.Add(time.Duration(serial * float64(24*time.Hour))), true
	}

	candidates := []string{s, strings.Join(strings.Fields(s), " ")}
	for _, c := range candidates {
		for _, layout := range startTimeLayouts {
			if t, err := time.Parse(layout, c); err == nil {
				return t, true
			}
		}
		if t, ok := parseDate(c); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// fallbackDate is the source file's modified date, or today when the path
// does not resolve.
func fallbackDate(srcPath string) string {
	if srcPath != "" {
		if info, err := os.Stat(srcPath); err == nil {
			return info.ModTime().Format(DateLayout)
		}
	}
	return time.Now().Format(DateLayout)
}
