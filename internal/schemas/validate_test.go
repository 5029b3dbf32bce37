package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spanSchema = `{
	"type": "object",
	"properties": {
		"start": {"type": "integer", "minimum": 0},
		"end": {"type": "integer", "minimum": 0}
	},
	"required": ["start", "end"],
	"additionalProperties": false
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateJSONAcceptsValidDocument(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "span.schema.json", spanSchema)
	jsonPath := writeFile(t, dir, "span.json", `{"start": 8, "end": 32}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSONReportsMissingField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "span.schema.json", spanSchema)
	jsonPath := writeFile(t, dir, "span.json", `{"start": 8}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "end")
}

func TestValidateJSONReportsTypeMismatch(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "span.schema.json", spanSchema)
	jsonPath := writeFile(t, dir, "span.json", `{"start": "eight", "end": 32}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "start", validationErr.Errors[0].Field)
}

func TestValidateJSONMissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "span.schema.json", spanSchema)
	jsonPath := writeFile(t, dir, "span.json", `{"start": 8, "end": 32}`)

	err := ValidateJSON(filepath.Join(dir, "absent.schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONStringBadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": "nope"}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONStringValid(t *testing.T) {
	assert.NoError(t, ValidateJSONString(spanSchema, `{"start": 0, "end": 24}`))
}

func TestResolveSchemaPath(t *testing.T) {
	// The shipped schemas live two levels up from this package.
	path := ResolveSchemaPath(filepath.Join("schemas", "participants.schema.json"))
	require.NotEmpty(t, path)
	assert.FileExists(t, path)

	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "absent.schema.json")))
}
