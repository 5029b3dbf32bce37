package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/survey-profiler/internal/types"
)

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// writeSurvey builds a small CSV export with a single all-4s respondent.
func writeSurvey(t *testing.T) string {
	t.Helper()

	header := []string{"ID", "Please type your name.", "Please type your email.", "Date"}
	row := []string{"1", "Alice Smith", "alice@example.com", "2024-03-15"}
	for q := 1; q <= types.QuestionCount; q++ {
		header = append(header, fmt.Sprintf("Q%d", q))
		row = append(row, "4")
	}

	content := strings.Join(header, ",") + "\n" + strings.Join(row, ",") + "\n"
	path := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunCommand(t *testing.T) {
	input := writeSurvey(t)
	output := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, execute("run", "-i", input, "-o", output))

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRunCommandMissingInput(t *testing.T) {
	err := execute("run", "-i", filepath.Join(t.TempDir(), "absent.csv"), "-o", "out.xlsx")
	require.Error(t, err)
}

func TestRunCommandRequiresInput(t *testing.T) {
	// Reset the flag state left behind by earlier executions.
	runInput = ""
	err := execute("run", "-i", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--in must be provided")
}

func TestRunCommandWithConfigFile(t *testing.T) {
	input := writeSurvey(t)
	output := filepath.Join(t.TempDir(), "report.xlsx")

	cfgPath := filepath.Join(t.TempDir(), "config.json")
	cfg := fmt.Sprintf(`{"input": %q, "output": %q}`, input, output)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	require.NoError(t, execute("run", "--config", cfgPath, "-i", input, "-o", output))
	assert.FileExists(t, output)
}

func TestDetectCommand(t *testing.T) {
	input := writeSurvey(t)
	require.NoError(t, execute("detect", "-i", input))
}

func TestDetectCommandUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))

	err := execute("detect", "-i", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".pdf")
}

func TestValidateReportCommand(t *testing.T) {
	item := `{"dimension":"DT","icon":{"kind":1},"title":"Directness & Transparency - 4.2","body":["a.","b.","c."]}`
	block := "[" + item + "," + item + "," + item + "]"
	valid := fmt.Sprintf(`[{"row":1,"id":"1","name":"Alice Smith","scores":{"DT":4.0},"score_cells":{"DT":"4.20 - Shares views openly."},"key_strengths":%s,"development_areas":%s,"recommendations":%s,"summary":"Narrative."}]`,
		block, block, block)

	path := filepath.Join(t.TempDir(), "participants.json")
	require.NoError(t, os.WriteFile(path, []byte(valid), 0o644))
	require.NoError(t, execute("validate-report", "-i", path))

	invalidPath := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(invalidPath, []byte(`[{"row":1}]`), 0o644))
	err := execute("validate-report", "-i", invalidPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report validation failed")
}

func TestValidateReportCommandMissingFile(t *testing.T) {
	err := execute("validate-report", "-i", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestHashPasswordCommand(t *testing.T) {
	require.NoError(t, execute("hash-password", "hunter2", "--cost", "10"))

	err := execute("hash-password", "hunter2", "--cost", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}
