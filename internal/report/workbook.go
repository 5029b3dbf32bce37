package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jonathan/survey-profiler/internal/types"
)

// SheetName is the single sheet carrying participant results.
const SheetName = "Profile Results"

// RequiredColumns is the locked output schema. Order and names are
// authoritative; the writer refuses to emit anything else.
var RequiredColumns = []string{
	"Date", "ID", "Name", "Email",
	"DT_Score", "TR_Score", "CO_Score", "CA_Score", "EP_Score",
	"KS1_Icon", "KS1_Title", "KS1_Body",
	"KS2_Icon", "KS2_Title", "KS2_Body",
	"KS3_Icon", "KS3_Title", "KS3_Body",
	"DA1_Icon", "DA1_Title", "DA1_Body",
	"DA2_Icon", "DA2_Title", "DA2_Body",
	"DA3_Icon", "DA3_Title", "DA3_Body",
	"PR1_Icon", "PR1_Title", "PR1_Body",
	"PR2_Icon", "PR2_Title", "PR2_Body",
	"PR3_Icon", "PR3_Title", "PR3_Body",
	"RQ1", "RQ2", "RQ3", "RQ4",
	"Summary", "Radar_Chart",
}

// columnIndex maps a column name to its zero-based position. Derived from
// RequiredColumns so the two can never drift.
var columnIndex = func() map[string]int {
	m := make(map[string]int, len(RequiredColumns))
	for i, name := range RequiredColumns {
		m[name] = i
	}
	return m
}()

// SchemaError reports drift between a produced sheet and the locked schema.
type SchemaError struct {
	Detail string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("report schema violation: %s", e.Detail)
}

// ValidateColumns checks headers against the locked schema.
func ValidateColumns(headers []string) error {
	if len(headers) != len(RequiredColumns) {
		return &SchemaError{Detail: fmt.Sprintf("expected %d columns, got %d", len(RequiredColumns), len(headers))}
	}
	for i, name := range headers {
		if name != RequiredColumns[i] {
			return &SchemaError{Detail: fmt.Sprintf("column %d is %q, expected %q", i, name, RequiredColumns[i])}
		}
	}
	return nil
}

// dataRowHeight keeps image rows tall enough for the scaled radar.
const dataRowHeight = 160.0

// WorkbookWriter renders participant records to the report workbook.
// rasterizer may be nil; image cells are then left blank.
type WorkbookWriter struct {
	logger     *zap.Logger
	rasterizer *Rasterizer
}

// NewWorkbookWriter returns a writer. Pass a nil rasterizer to skip icon
// and radar embedding.
func NewWorkbookWriter(logger *zap.Logger, rasterizer *Rasterizer) *WorkbookWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkbookWriter{logger: logger, rasterizer: rasterizer}
}

// WriteFile renders the workbook and saves it at path.
func (w *WorkbookWriter) WriteFile(ctx context.Context, records []types.ParticipantRecord, path string) error {
	data, err := w.Write(ctx, records)
	if err != nil {
		return err
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("reopen workbook: %w", err)
	}
	defer func() { _ = f.Close() }()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Write renders the workbook and returns its bytes.
func (w *WorkbookWriter) Write(ctx context.Context, records []types.ParticipantRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName("Sheet1", SheetName)

	if err := w.writeHeader(f); err != nil {
		return nil, err
	}
	if err := w.setColumnWidths(f); err != nil {
		return nil, err
	}

	for i, rec := range records {
		rowValues, err := buildRow(&rec)
		if err != nil {
			return nil, err
		}

		excelRow := i + 2 // 1-based, after header
		start, _ := excelize.CoordinatesToCellName(1, excelRow)
		if err := f.SetSheetRow(SheetName, start, &rowValues); err != nil {
			return nil, fmt.Errorf("write row %d: %w", excelRow, err)
		}
		if err := f.SetRowHeight(SheetName, excelRow, dataRowHeight); err != nil {
			return nil, fmt.Errorf("set row height %d: %w", excelRow, err)
		}

		w.embedImages(ctx, f, excelRow, &rec)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// buildRow maps a record onto the locked schema. Every cell is written so
// the produced row always has exactly len(RequiredColumns) values.
func buildRow(rec *types.ParticipantRecord) ([]interface{}, error) {
	if len(rec.KeyStrengths) != 3 || len(rec.DevelopmentAreas) != 3 || len(rec.Recommendations) != 3 {
		return nil, &SchemaError{Detail: fmt.Sprintf(
			"participant %s carries %d/%d/%d content items, expected 3/3/3",
			rec.ID, len(rec.KeyStrengths), len(rec.DevelopmentAreas), len(rec.Recommendations))}
	}

	row := make([]interface{}, len(RequiredColumns))
	set := func(name string, value string) {
		row[columnIndex[name]] = value
	}

	set("Date", rec.Date)
	set("ID", rec.ID)
	set("Name", rec.Name)
	set("Email", rec.Email)

	for _, dim := range types.DimensionOrder {
		set(string(dim)+"_Score", rec.ScoreCells[dim])
	}

	blocks := []struct {
		prefix string
		items  []types.ContentItem
	}{
		{"KS", rec.KeyStrengths},
		{"DA", rec.DevelopmentAreas},
		{"PR", rec.Recommendations},
	}
	for _, block := range blocks {
		for i, item := range block.items {
			set(fmt.Sprintf("%s%d_Icon", block.prefix, i+1), "")
			set(fmt.Sprintf("%s%d_Title", block.prefix, i+1), item.Title)
			set(fmt.Sprintf("%s%d_Body", block.prefix, i+1), strings.Join(item.Body, "\n"))
		}
	}

	for _, name := range []string{"RQ1", "RQ2", "RQ3", "RQ4"} {
		set(name, "")
	}
	set("Summary", rec.Summary)
	set("Radar_Chart", "")

	return row, nil
}

func (w *WorkbookWriter) writeHeader(f *excelize.File) error {
	if err := ValidateColumns(RequiredColumns); err != nil {
		return err
	}

	headers := make([]interface{}, len(RequiredColumns))
	for i, name := range RequiredColumns {
		headers[i] = name
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4A90E2"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	last, _ := excelize.CoordinatesToCellName(len(RequiredColumns), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	return nil
}

func (w *WorkbookWriter) setColumnWidths(f *excelize.File) error {
	widthOf := func(name string) float64 {
		switch {
		case name == "Summary":
			return 35
		case name == "Radar_Chart":
			return 40
		case strings.HasSuffix(name, "_Score"):
			return 20
		case strings.HasSuffix(name, "_Icon"):
			return 12
		case strings.HasSuffix(name, "_Title"):
			return 28
		case strings.HasSuffix(name, "_Body"):
			return 36
		default:
			return 18 // meta and RQ columns
		}
	}

	for i, name := range RequiredColumns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
		if err := f.SetColWidth(SheetName, col, col, widthOf(name)); err != nil {
			return fmt.Errorf("set width of %s: %w", name, err)
		}
	}
	return nil
}

// embedImages rasterizes and inserts the icon and radar images for one row.
// Failures degrade to blank cells with a warning; the workbook itself is
// still produced.
func (w *WorkbookWriter) embedImages(ctx context.Context, f *excelize.File, excelRow int, rec *types.ParticipantRecord) {
	if w.rasterizer == nil {
		return
	}

	insert := func(column string, svg string, width, height int, scale float64) {
		png, err := w.rasterizer.Render(ctx, svg, width, height)
		if err != nil {
			w.logger.Warn("image embedding skipped",
				zap.String("participant", rec.ID),
				zap.String("column", column),
				zap.Error(err))
			return
		}
		cell, _ := excelize.CoordinatesToCellName(columnIndex[column]+1, excelRow)
		err = f.AddPictureFromBytes(SheetName, cell, &excelize.Picture{
			Extension: ".png",
			File:      png,
			Format: &excelize.GraphicOptions{
				ScaleX:      scale,
				ScaleY:      scale,
				OffsetX:     2,
				OffsetY:     2,
				Positioning: "oneCell",
			},
		})
		if err != nil {
			w.logger.Warn("image insert failed",
				zap.String("participant", rec.ID),
				zap.String("column", column),
				zap.Error(err))
		}
	}

	blocks := []struct {
		prefix string
		items  []types.ContentItem
	}{
		{"KS", rec.KeyStrengths},
		{"DA", rec.DevelopmentAreas},
		{"PR", rec.Recommendations},
	}
	for _, block := range blocks {
		for i, item := range block.items {
			svg, ok := IconSVG(item.Icon)
			if !ok {
				continue
			}
			column := fmt.Sprintf("%s%d_Icon", block.prefix, i+1)
			insert(column, svg, IconPNGSize, IconPNGSize, 0.08)
		}
	}

	insert("Radar_Chart", RadarSVG(rec.Scores), RadarPNGWidth, RadarPNGHeight, 0.12)
}
