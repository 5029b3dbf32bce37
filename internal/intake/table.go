// Package intake loads survey exports into response tables and derives the
// per-row report date. Workbook, CSV, and HTML table exports are supported;
// every cell is carried as its raw string so the downstream parsers own all
// interpretation.
package intake

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jonathan/survey-profiler/internal/types"
)

// ErrEmptyInput indicates the source contained no header row.
var ErrEmptyInput = fmt.Errorf("input contains no rows")

// UnsupportedFormatError indicates a source file whose extension maps to no
// known reader.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported input format %q (expected .xlsx, .csv, or .html)", e.Ext)
}

// Reader loads survey exports.
type Reader struct {
	logger *zap.Logger
}

// NewReader returns a Reader logging through the given logger.
func NewReader(logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{logger: logger}
}

// Load reads the file at path, choosing the reader by extension.
func (r *Reader) Load(path string) (*types.ResponseTable, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var read func(io.Reader) (*types.ResponseTable, error)
	switch ext {
	case ".xlsx", ".xlsm":
		read = r.ReadWorkbook
	case ".csv":
		read = r.ReadCSV
	case ".html", ".htm":
		read = r.ReadHTML
	default:
		return nil, &UnsupportedFormatError{Ext: ext}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return read(f)
}

// ReadWorkbook reads the first sheet of an xlsx workbook. Raw cell values
// are kept so date serials and numeric responses arrive unformatted.
func (r *Reader) ReadWorkbook(src io.Reader) (*types.ResponseTable, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyInput
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	r.logger.Info("loaded workbook sheet",
		zap.String("sheet", sheets[0]),
		zap.Int("rows", len(rows)))
	return tableFromRows(rows)
}

// ReadCSV reads a comma-separated export. Ragged rows are tolerated and
// padded to the header width.
func (r *Reader) ReadCSV(src io.Reader) (*types.ResponseTable, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	r.logger.Info("loaded csv", zap.Int("rows", len(rows)))
	return tableFromRows(rows)
}

// ReadHTML reads the first <table> element of an HTML survey export. The
// first row supplies the headers whether it uses <th> or <td> cells.
func (r *Reader) ReadHTML(src io.Reader) (*types.ResponseTable, error) {
	doc, err := goquery.NewDocumentFromReader(src)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrEmptyInput
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})

	r.logger.Info("loaded html table", zap.Int("rows", len(rows)))
	return tableFromRows(rows)
}

// tableFromRows converts row-major raw rows into a column-major response
// table. The first row is the header; data rows are padded with blanks to
// the widest row.
func tableFromRows(rows [][]string) (*types.ResponseTable, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, ErrEmptyInput
	}

	cell := func(row []string, col int) string {
		if col < len(row) {
			return row[col]
		}
		return ""
	}

	columns := make([]types.Column, width)
	for col := 0; col < width; col++ {
		values := make([]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			values = append(values, cell(row, col))
		}
		columns[col] = types.Column{
			Name:   cell(rows[0], col),
			Values: values,
		}
	}

	return &types.ResponseTable{Columns: columns}, nil
}
