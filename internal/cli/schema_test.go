package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_PrintToStdout(t *testing.T) {
	output := captureOutput(t, func() error {
		return Schema("")
	})
	assert.Contains(t, output, `"$schema": "http://json-schema.org/draft-07/schema#"`)
}

func TestSchema_WriteToFile(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "test-schema.json")

	err := Schema(outputFile)
	require.NoError(t, err)

	// Verify file was created
	_, err = os.Stat(outputFile)
	require.NoError(t, err, "Schema file should be created")

	// Verify file contains the registry schema
	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	schemaStr := string(content)
	assert.Contains(t, schemaStr, `"$schema": "http://json-schema.org/draft-07/schema#"`)
	assert.Contains(t, schemaStr, `"title": "viewls SDK registry"`)
	assert.Contains(t, schemaStr, `"components"`)
	assert.Contains(t, schemaStr, `"styleables"`)
	assert.Contains(t, schemaStr, `"attrs"`)
}

func TestSchema_WriteToFile_InvalidPath(t *testing.T) {
	err := Schema("/nonexistent/directory/schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write schema")
}
