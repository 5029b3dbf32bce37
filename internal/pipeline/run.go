// Package pipeline provides the high-level orchestration for survey scoring
// runs: intake, column location, identity resolution, per-row scoring and
// content selection, and report generation.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/survey-profiler/internal/content"
	"github.com/jonathan/survey-profiler/internal/db"
	"github.com/jonathan/survey-profiler/internal/identity"
	"github.com/jonathan/survey-profiler/internal/intake"
	"github.com/jonathan/survey-profiler/internal/locate"
	"github.com/jonathan/survey-profiler/internal/observability"
	"github.com/jonathan/survey-profiler/internal/report"
	"github.com/jonathan/survey-profiler/internal/scoring"
	"github.com/jonathan/survey-profiler/internal/types"
)

// rowWorkers bounds the per-row scoring fan-out.
const rowWorkers = 8

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	InputPath   string
	OutputPath  string
	Verbose     bool
	DatabaseURL string
	EmbedImages bool
	Logger      *zap.Logger
	OnProgress  ProgressCallback
}

// Result carries the outcome of a completed run.
type Result struct {
	RunID        uuid.UUID
	Span         types.ColumnSpan
	Participants []types.ParticipantRecord
	Skipped      int
	Workbook     []byte
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// RunPipeline orchestrates a full scoring run. The returned Result always
// carries the rendered workbook bytes; OutputPath, when set, receives a copy
// on disk.
func RunPipeline(ctx context.Context, opts RunOptions) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	printer := observability.NewPrinter(os.Stdout)

	// Database persistence is optional; a failed connection degrades to an
	// unpersisted run.
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			logger.Warn("database unavailable, continuing without persistence", zap.Error(err))
			database = nil
		} else {
			defer database.Close()
			runID, err = database.CreateRun(ctx, opts.InputPath)
			if err != nil {
				logger.Warn("failed to create run record, continuing without persistence", zap.Error(err))
				database.Close()
				database = nil
			}
		}
	}
	// Unpersisted runs still get an identity so callers can address the result.
	if runID == uuid.Nil {
		runID = uuid.New()
	}

	failRun := func(err error) (*Result, error) {
		if database != nil && runID != uuid.Nil {
			_ = database.CompleteRun(ctx, runID, db.StatusFailed, 0)
		}
		return nil, err
	}

	table, err := intake.NewReader(logger).Load(opts.InputPath)
	if err != nil {
		return failRun(fmt.Errorf("loading survey input failed: %w", err))
	}
	logger.Info("survey input loaded",
		zap.Int("rows", table.NumRows()),
		zap.Int("columns", table.NumCols()))

	span, err := locate.New(logger).Locate(table)
	if err != nil {
		return failRun(fmt.Errorf("locating survey columns failed: %w", err))
	}
	if opts.Verbose {
		printer.PrintSpan(span, table)
	}
	emitProgress(&opts, db.StepSurveySpan, db.CategoryIntake,
		fmt.Sprintf("Survey columns located at %d..%d", span.Start, span.End), span)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepSurveySpan, db.CategoryIntake, span)
	}

	resolver := identity.New(logger)
	resolution := resolver.Resolve(table)
	dates := intake.DeriveDates(table, opts.InputPath, logger)
	idCol := table.ColumnIndex("id")

	// Rows are scored in parallel; the slice is indexed by row so the output
	// order matches the input regardless of scheduling.
	results := make([]*types.ParticipantRecord, table.NumRows())
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(rowWorkers)

	for row := 0; row < table.NumRows(); row++ {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rec, err := processRow(table, row, span, resolver, resolution, dates, idCol)
			if err != nil {
				return err
			}
			results[row] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return failRun(err)
	}

	validate := validator.New()
	var records []types.ParticipantRecord
	skipped := 0
	for row, rec := range results {
		if rec == nil {
			skipped++
			continue
		}
		if err := validate.Struct(rec); err != nil {
			return failRun(fmt.Errorf("row %d produced an invalid record: %w", row, err))
		}
		if opts.Verbose {
			printer.PrintParticipant(rec)
		}
		records = append(records, *rec)
	}
	logger.Info("scoring complete",
		zap.Int("participants", len(records)),
		zap.Int("skipped", skipped))
	emitProgress(&opts, db.StepParticipants, db.CategoryScoring,
		fmt.Sprintf("Scored %d participants (%d rows skipped)", len(records), skipped), nil)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepParticipants, db.CategoryScoring, records)
	}

	var rasterizer *report.Rasterizer
	if opts.EmbedImages {
		rasterizer = report.NewRasterizer(logger)
	}
	workbook, err := report.NewWorkbookWriter(logger, rasterizer).Write(ctx, records)
	if err != nil {
		return failRun(fmt.Errorf("rendering report workbook failed: %w", err))
	}
	if opts.OutputPath != "" {
		if err := os.WriteFile(opts.OutputPath, workbook, 0o644); err != nil {
			return failRun(fmt.Errorf("writing report workbook failed: %w", err))
		}
		logger.Info("report workbook written", zap.String("path", opts.OutputPath))
	}
	emitProgress(&opts, db.StepReportBook, db.CategoryReport, "Report workbook rendered", nil)
	if database != nil && runID != uuid.Nil {
		_ = database.SaveBinaryArtifact(ctx, runID, db.StepReportBook, db.CategoryReport, workbook)
		_ = database.CompleteRun(ctx, runID, db.StatusCompleted, len(records))
	}

	if opts.Verbose {
		printer.PrintRunSummary(len(records), skipped)
	}

	return &Result{
		RunID:        runID,
		Span:         span,
		Participants: records,
		Skipped:      skipped,
		Workbook:     workbook,
	}, nil
}

// processRow scores a single data row. A nil record with a nil error means
// the row was skipped: it carries no ID or no scoreable response.
func processRow(table *types.ResponseTable, row int, span types.ColumnSpan,
	resolver *identity.Resolver, resolution identity.Resolution,
	dates []string, idCol int) (*types.ParticipantRecord, error) {

	var id string
	if idCol >= 0 {
		id = strings.TrimSpace(table.Cell(row, idCol))
	}
	if id == "" {
		return nil, nil
	}

	var responses types.SurveyResponse
	for q := 0; q < types.QuestionCount; q++ {
		v, err := scoring.ParseResponse(table.Cell(row, span.Start+q))
		if err != nil {
			return nil, fmt.Errorf("row %d, question %d: %w", row, q+1, err)
		}
		responses[q] = v
	}

	scores, err := scoring.Score(responses)
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", row, err)
	}
	if !scores.AnyPresent() {
		return nil, nil
	}

	name, email := resolver.Extract(table, row, resolution)

	scoreCells := make(map[types.Dimension]string, len(types.DimensionOrder))
	for _, dim := range types.DimensionOrder {
		scoreCells[dim] = content.FormatScoreCell(scores, dim)
	}

	developmentAreas := content.SelectDevelopmentAreas(scores)

	return &types.ParticipantRecord{
		Row:              row,
		ID:               id,
		Name:             name,
		Email:            email,
		Date:             dates[row],
		Scores:           scores,
		ScoreCells:       scoreCells,
		KeyStrengths:     content.SelectKeyStrengths(scores),
		DevelopmentAreas: developmentAreas,
		Recommendations:  content.SelectPriorityRecommendations(scores, developmentAreas),
		Summary:          content.ComposeSummary(scores),
	}, nil
}
