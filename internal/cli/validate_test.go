package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidRegistry(t *testing.T) {
	regPath := writeGaugeRegistry(t, t.TempDir())

	err := Validate(regPath)
	require.NoError(t, err)
}

func TestValidate_SchemaViolation(t *testing.T) {
	tmpDir := t.TempDir()
	regPath := filepath.Join(tmpDir, "registry.yml")
	content := `components:
  - qualified: com.acme.widget.Gauge
`
	require.NoError(t, os.WriteFile(regPath, []byte(content), 0644))

	err := Validate(regPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_DuplicateComponent(t *testing.T) {
	tmpDir := t.TempDir()
	regPath := filepath.Join(tmpDir, "registry.yml")
	content := `components:
  - name: Gauge
    qualified: com.acme.widget.Gauge
  - name: Gauge
    qualified: com.acme.widget.Gauge
`
	require.NoError(t, os.WriteFile(regPath, []byte(content), 0644))

	err := Validate(regPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_NoPath(t *testing.T) {
	err := Validate("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no registry file given")
}

func TestValidate_MissingFile(t *testing.T) {
	err := Validate(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read registry file")
}
