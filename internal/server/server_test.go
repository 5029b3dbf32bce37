package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonathan/survey-profiler/internal/types"
)

const testAdminPassword = "correct horse"

func newTestServer(t *testing.T) *Server {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("ADMIN_USER", "")
	t.Setenv("RATE_LIMIT_ENABLED", "")

	s, err := New(Config{Addr: ":0", Logger: zap.NewNop()})
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.routes().ServeHTTP(rr, req)
	return rr
}

func login(t *testing.T, s *Server) string {
	t.Helper()

	body, _ := json.Marshal(LoginRequest{Username: "admin", Password: testAdminPassword})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	rr := doRequest(s, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// csvUpload builds a multipart request carrying the given CSV content.
func csvUpload(t *testing.T, path, filename, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("survey", filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// surveyUpload builds a multipart request carrying a small CSV survey.
func surveyUpload(t *testing.T, path, filename string) *http.Request {
	t.Helper()

	header := []string{"ID", "Please type your name.", "Please type your email.", "Date"}
	for q := 1; q <= types.QuestionCount; q++ {
		header = append(header, fmt.Sprintf("Q%d", q))
	}
	row := []string{"1", "Alice Smith", "alice@example.com", "2024-03-15"}
	for q := 0; q < types.QuestionCount; q++ {
		row = append(row, "4")
	}
	content := strings.Join(header, ",") + "\n" + strings.Join(row, ",") + "\n"
	return csvUpload(t, path, filename, content)
}

func TestHealthIsOpen(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)

	body, _ := json.Marshal(LoginRequest{Username: "admin", Password: "battery staple"})
	rr := doRequest(s, httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	rr := doRequest(s, httptest.NewRequest(http.MethodGet, "/api/runs", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr = doRequest(s, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRunUploadAndRetrieval(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	req := surveyUpload(t, "/api/runs", "march_survey.csv")
	req.Header.Set("Authorization", "Bearer "+token)
	rr := doRequest(s, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var run RunResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &run))
	assert.Equal(t, "completed", run.Status)
	assert.Equal(t, "march_survey.csv", run.Source)
	assert.Equal(t, 1, run.Participants)
	assert.Equal(t, 0, run.Skipped)
	assert.Equal(t, types.QuestionCount, run.Span.Width())

	// Status lookup.
	req = httptest.NewRequest(http.MethodGet, "/api/runs/"+run.RunID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = doRequest(s, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var status StatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, run.RunID, status.RunID)
	assert.Equal(t, 1, status.Participants)

	// Report JSON.
	req = httptest.NewRequest(http.MethodGet, "/api/runs/"+run.RunID+"/report", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = doRequest(s, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var report struct {
		RunID        string                    `json:"run_id"`
		Participants []types.ParticipantRecord `json:"participants"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	require.Len(t, report.Participants, 1)
	assert.Equal(t, "Alice Smith", report.Participants[0].Name)

	// Workbook download.
	req = httptest.NewRequest(http.MethodGet, "/api/runs/"+run.RunID+"/workbook", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = doRequest(s, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, workbookContentType, rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), run.RunID)
	assert.NotEmpty(t, rr.Body.Bytes())

	// Listing without a database serves the in-memory cache.
	req = httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = doRequest(s, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), run.RunID)
}

func TestRunUploadRejectsUnsupportedFormat(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	req := surveyUpload(t, "/api/runs", "survey.pdf")
	req.Header.Set("Authorization", "Bearer "+token)
	rr := doRequest(s, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), ".pdf")
}

func TestRunUploadRejectsUnlocatableColumns(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	// No question columns at all.
	content := "ID,Name,Notes\n1,Alice Smith,hello\n"
	req := csvUpload(t, "/api/runs", "survey.csv", content)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := doRequest(s, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), "response block")

	// Named question headers with one missing.
	header := []string{"ID", "Name"}
	row := []string{"1", "Alice Smith"}
	for q := 1; q < types.QuestionCount; q++ {
		header = append(header, fmt.Sprintf("Q%d", q))
		row = append(row, "4")
	}
	content = strings.Join(header, ",") + "\n" + strings.Join(row, ",") + "\n"
	req = csvUpload(t, "/api/runs", "survey.csv", content)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = doRequest(s, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), "Q25")
}

func TestRunLookupErrors(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/runs/not-a-uuid", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := doRequest(s, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/runs/6ba7b810-9dad-11d1-80b4-00c04fd430c8", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = doRequest(s, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRunStreamEmitsEvents(t *testing.T) {
	s := newTestServer(t)
	token := login(t, s)

	req := surveyUpload(t, "/api/runs/stream", "survey.csv")
	req.Header.Set("Authorization", "Bearer "+token)
	rr := doRequest(s, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	assert.Contains(t, body, "event: progress")
	assert.Contains(t, body, "survey_span")
	assert.Contains(t, body, "event: complete")
}
