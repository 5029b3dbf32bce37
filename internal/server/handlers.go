package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/survey-profiler/internal/db"
	"github.com/jonathan/survey-profiler/internal/intake"
	"github.com/jonathan/survey-profiler/internal/locate"
	"github.com/jonathan/survey-profiler/internal/pipeline"
	"github.com/jonathan/survey-profiler/internal/scoring"
	"github.com/jonathan/survey-profiler/internal/types"
)

const maxUploadBytes = 32 << 20

const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// runEntry caches a completed run for the life of the process.
type runEntry struct {
	ID           uuid.UUID
	Source       string
	Status       string
	Participants int
	Skipped      int
	CreatedAt    time.Time
	CompletedAt  time.Time
	result       *pipeline.Result
}

// LoginRequest is the body for /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in_hours"`
}

// RunResponse summarizes a completed scoring run.
type RunResponse struct {
	RunID        string           `json:"run_id"`
	Status       string           `json:"status"`
	Source       string           `json:"source"`
	Participants int              `json:"participants"`
	Skipped      int              `json:"skipped"`
	Span         types.ColumnSpan `json:"survey_span"`
}

// StatusResponse is the body for GET /api/runs/{id}.
type StatusResponse struct {
	RunID        string `json:"run_id"`
	Source       string `json:"source"`
	Status       string `json:"status"`
	Participants int    `json:"participants"`
	CreatedAt    string `json:"created_at"`
	CompletedAt  string `json:"completed_at,omitempty"`
}

// handleLogin verifies the admin credential and issues a token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if !s.auth.VerifyAdmin(req.Username, req.Password) {
		err := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(req.Username)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	s.jsonResponse(w, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresIn: s.auth.ExpirationHours,
	})
}

// handleRun accepts a survey workbook upload and scores it synchronously.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	path, source, cleanup, err := s.saveUpload(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	result, err := pipeline.RunPipeline(r.Context(), s.runOptions(r, path, nil))
	if err != nil {
		s.runErrorResponse(w, err)
		return
	}

	entry := s.storeRun(source, result)
	s.jsonResponse(w, http.StatusCreated, runResponse(entry))
}

// handleRunStream scores an upload while streaming progress as SSE.
func (s *Server) handleRunStream(w http.ResponseWriter, r *http.Request) {
	path, source, cleanup, err := s.saveUpload(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := pipeline.RunPipeline(r.Context(), s.runOptions(r, path, sse.WriteProgress))
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	entry := s.storeRun(source, result)
	sse.WriteComplete(runResponse(entry))
}

// handleGetRun returns the status of a run, from cache or database.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	if entry := s.lookupRun(runID); entry != nil {
		s.jsonResponse(w, http.StatusOK, StatusResponse{
			RunID:        entry.ID.String(),
			Source:       entry.Source,
			Status:       entry.Status,
			Participants: entry.Participants,
			CreatedAt:    entry.CreatedAt.Format(time.RFC3339),
			CompletedAt:  entry.CompletedAt.Format(time.RFC3339),
		})
		return
	}

	if s.db == nil {
		s.notFound(w, runID)
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.logger.Error("run lookup failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "run lookup failed")
		return
	}
	if run == nil {
		s.notFound(w, runID)
		return
	}

	resp := StatusResponse{
		RunID:        run.ID.String(),
		Source:       run.Source,
		Status:       run.Status,
		Participants: run.Participants,
		CreatedAt:    run.CreatedAt.Format(time.RFC3339),
	}
	if run.CompletedAt != nil {
		resp.CompletedAt = run.CompletedAt.Format(time.RFC3339)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListRuns lists recent runs. The database is authoritative when
// configured; otherwise the in-memory cache is listed.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		runs, err := s.db.ListRuns(r.Context(), 50)
		if err != nil {
			s.logger.Error("run listing failed", zap.Error(err))
			s.errorResponse(w, http.StatusInternalServerError, "run listing failed")
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
		return
	}

	s.mu.RLock()
	entries := make([]StatusResponse, 0, len(s.runs))
	for _, entry := range s.runs {
		entries = append(entries, StatusResponse{
			RunID:        entry.ID.String(),
			Source:       entry.Source,
			Status:       entry.Status,
			Participants: entry.Participants,
			CreatedAt:    entry.CreatedAt.Format(time.RFC3339),
			CompletedAt:  entry.CompletedAt.Format(time.RFC3339),
		})
	}
	s.mu.RUnlock()

	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": entries})
}

// handleReport returns the scored participant records for a run as JSON.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	if entry := s.lookupRun(runID); entry != nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"run_id":       entry.ID.String(),
			"participants": entry.result.Participants,
		})
		return
	}

	if s.db == nil {
		s.notFound(w, runID)
		return
	}

	raw, err := s.db.GetArtifact(r.Context(), runID, db.StepParticipants)
	if err != nil {
		s.logger.Error("artifact lookup failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "artifact lookup failed")
		return
	}
	if raw == nil {
		notFound := &ErrArtifactNotFound{RunID: runID, Step: db.StepParticipants}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"run_id":%q,"participants":%s}`, runID, raw)
}

// handleWorkbook streams the report workbook as an xlsx download.
func (s *Server) handleWorkbook(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.parseRunID(w, r)
	if !ok {
		return
	}

	var workbook []byte
	if entry := s.lookupRun(runID); entry != nil {
		workbook = entry.result.Workbook
	} else if s.db != nil {
		data, err := s.db.GetBinaryArtifact(r.Context(), runID, db.StepReportBook)
		if err != nil {
			s.logger.Error("workbook lookup failed", zap.Error(err))
			s.errorResponse(w, http.StatusInternalServerError, "workbook lookup failed")
			return
		}
		workbook = data
	}

	if len(workbook) == 0 {
		notFound := &ErrArtifactNotFound{RunID: runID, Step: db.StepReportBook}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	w.Header().Set("Content-Type", workbookContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="profile_results_%s.xlsx"`, runID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook); err != nil {
		s.logger.Error("workbook write failed", zap.Error(err))
	}
}

// saveUpload extracts the survey file from a multipart form and writes it
// to a temp directory, keeping the original extension for format detection.
func (s *Server) saveUpload(r *http.Request) (path, source string, cleanup func(), err error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return "", "", nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	file, header, err := r.FormFile("survey")
	if err != nil {
		return "", "", nil, fmt.Errorf("survey file is required: %w", err)
	}
	defer file.Close()

	dir, err := os.MkdirTemp("", "survey-upload-*")
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	cleanup = func() { os.RemoveAll(dir) }

	ext := filepath.Ext(header.Filename)
	path = filepath.Join(dir, "survey"+ext)

	out, err := os.Create(path)
	if err != nil {
		cleanup()
		return "", "", nil, fmt.Errorf("failed to store upload: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		cleanup()
		return "", "", nil, fmt.Errorf("failed to store upload: %w", err)
	}

	return path, header.Filename, cleanup, nil
}

func (s *Server) runOptions(r *http.Request, path string, onProgress pipeline.ProgressCallback) pipeline.RunOptions {
	embed := s.embedImages
	if v := r.FormValue("embed_images"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			embed = b
		}
	}

	return pipeline.RunOptions{
		InputPath:   path,
		DatabaseURL: s.databaseURL,
		EmbedImages: embed,
		Logger:      s.logger,
		OnProgress:  onProgress,
	}
}

// runErrorResponse maps pipeline failures to status codes. Malformed or
// out-of-contract input is the caller's fault, everything else is ours.
func (s *Server) runErrorResponse(w http.ResponseWriter, err error) {
	var unsupported *intake.UnsupportedFormatError
	var violation *scoring.ScaleViolationError
	var ambiguous *locate.AmbiguousSpanError
	var missing *locate.MissingHeadersError

	switch {
	case errors.As(err, &unsupported):
		s.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &violation):
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, intake.ErrEmptyInput):
		s.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, locate.ErrSpanNotFound):
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &ambiguous):
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &missing):
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.logger.Error("scoring run failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) storeRun(source string, result *pipeline.Result) *runEntry {
	now := time.Now()
	entry := &runEntry{
		ID:           result.RunID,
		Source:       source,
		Status:       db.StatusCompleted,
		Participants: len(result.Participants),
		Skipped:      result.Skipped,
		CreatedAt:    now,
		CompletedAt:  now,
		result:       result,
	}

	s.mu.Lock()
	s.runs[entry.ID.String()] = entry
	s.mu.Unlock()

	return entry
}

func (s *Server) lookupRun(runID uuid.UUID) *runEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runs[runID.String()]
}

func (s *Server) parseRunID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return uuid.Nil, false
	}
	return runID, true
}

func (s *Server) notFound(w http.ResponseWriter, runID uuid.UUID) {
	err := &ErrRunNotFound{RunID: runID}
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

func runResponse(entry *runEntry) RunResponse {
	return RunResponse{
		RunID:        entry.ID.String(),
		Status:       entry.Status,
		Source:       entry.Source,
		Participants: entry.Participants,
		Skipped:      entry.Skipped,
		Span:         entry.result.Span,
	}
}
