package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocs_PrintsMarkdownReference(t *testing.T) {
	tmpDir := chdirTemp(t)
	regPath := writeGaugeRegistry(t, tmpDir)

	output := captureOutput(t, func() error {
		return Docs(DocsParams{
			Registry: RegistryOptions{Registries: []string{regPath}, NoBuiltin: true},
		})
	})

	assert.Contains(t, output, "# Android component reference")
	assert.Contains(t, output, "## Gauge")
	assert.Contains(t, output, "`com.acme.widget.Gauge`")
	assert.Contains(t, output, "Inherits: android.view.View")
	assert.Contains(t, output, "`android:needleColor` | Gauge | red, green")
	assert.Contains(t, output, "`android:max` | Gauge")
}

func TestDocs_BuiltinRegistry(t *testing.T) {
	chdirTemp(t)

	output := captureOutput(t, func() error {
		return Docs(DocsParams{})
	})

	assert.Contains(t, output, "## Button")
	assert.Contains(t, output, "`android.widget.Button`")
	assert.Contains(t, output, "`android:visibility`")
}

func TestDocs_WritesToFile(t *testing.T) {
	tmpDir := chdirTemp(t)
	outputFile := filepath.Join(tmpDir, "reference.md")

	stdout := captureOutput(t, func() error {
		return Docs(DocsParams{Output: outputFile})
	})

	assert.Contains(t, stdout, "Component reference written to:")

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Android component reference")
}

func TestDocs_InvalidOutputPath(t *testing.T) {
	chdirTemp(t)

	err := Docs(DocsParams{Output: "/nonexistent/directory/reference.md"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write docs")
}
