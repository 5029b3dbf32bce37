package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"input": "survey.xlsx",
		"output": "report.xlsx",
		"database_url": "postgres://localhost/profiler",
		"verbose": true,
		"embed_images": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "survey.xlsx", cfg.Input)
	assert.Equal(t, "report.xlsx", cfg.Output)
	assert.Equal(t, "postgres://localhost/profiler", cfg.DatabaseURL)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.EmbedImages)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MissingInput(t *testing.T) {
	cfg := &Config{Input: "/nonexistent/survey.xlsx"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestValidate_ExistingInput(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "survey.csv")
	require.NoError(t, os.WriteFile(tmpFile, []byte("ID\n"), 0644))

	cfg := &Config{Input: tmpFile}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Output: "custom.xlsx"}
	defaults := Config{
		Input:      "survey.xlsx",
		Output:     "report.xlsx",
		ListenAddr: ":8080",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "survey.xlsx", merged.Input)
	assert.Equal(t, "custom.xlsx", merged.Output, "explicit value must win")
	assert.Equal(t, ":8080", merged.ListenAddr)
}
