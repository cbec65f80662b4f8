package sdk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewls/viewls/internal/verrors"
)

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "widgets.yml")

	yamlContent := `
namespace: android
components:
  - name: TextView
    qualified: android.widget.TextView
    extends: [android.view.View]
  - name: View
    qualified: android.view.View
styleables:
  TextView:
    - android:text
    - textSize
attrs:
  visibility:
    values: [visible, invisible, gone]
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	reg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "android", reg.Namespace())
	assert.Equal(t, []string{path}, reg.Sources())

	c, ok := reg.Component("TextView")
	require.True(t, ok)
	assert.Equal(t, []string{"android.view.View"}, c.Ancestors)

	g, ok := reg.Styleable("android", "TextView")
	require.True(t, ok)
	require.Len(t, g.Entries, 2)
	assert.Equal(t, "android:text", g.Entries[0].String())
	// Unqualified entries pick up the registry namespace.
	assert.Equal(t, "android:textSize", g.Entries[1].String())

	vals, ok := reg.PossibleValues("visibility")
	require.True(t, ok)
	assert.Len(t, vals, 3)
}

func TestLoad_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "widgets.json")

	jsonContent := `{
  "namespace": "app",
  "components": [
    {"name": "Card", "qualified": "com.acme.Card", "extends": ["android.view.View"]}
  ],
  "styleables": {
    "Card": ["app:cardElevation"]
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(jsonContent), 0644))

	reg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "app", reg.Namespace())
	_, ok := reg.Component("Card")
	assert.True(t, ok)

	g, ok := reg.Styleable("app", "Card")
	require.True(t, ok)
	assert.Equal(t, "app:cardElevation", g.Entries[0].String())
}

func TestLoad_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "widgets.toml")

	tomlContent := `
namespace = "android"

[[components]]
name = "Gauge"
qualified = "com.acme.Gauge"
extends = ["android.view.View"]

[styleables]
Gauge = ["android:max"]

[attrs.orientation]
values = ["horizontal", "vertical"]
`
	require.NoError(t, os.WriteFile(path, []byte(tomlContent), 0644))

	reg, err := Load(path)
	require.NoError(t, err)

	_, ok := reg.Component("Gauge")
	assert.True(t, ok)

	vals, ok := reg.PossibleValues("orientation")
	require.True(t, ok)
	assert.Equal(t, []string{"horizontal", "vertical"}, vals)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("widgets.ini")
	require.Error(t, err)

	var regErr *verrors.RegistryError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, "REGISTRY_ERROR", regErr.Code())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("components:\n  - name: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)

	var regErr *verrors.RegistryError
	assert.ErrorAs(t, err, &regErr)
}

func TestLoadAll_MergesLeftToRight(t *testing.T) {
	tmpDir := t.TempDir()

	basePath := filepath.Join(tmpDir, "base.yml")
	baseContent := `
namespace: android
components:
  - name: TextView
    qualified: android.widget.TextView
styleables:
  TextView:
    - android:text
`
	require.NoError(t, os.WriteFile(basePath, []byte(baseContent), 0644))

	overlayPath := filepath.Join(tmpDir, "overlay.yml")
	overlayContent := `
namespace: android
styleables:
  TextView:
    - android:text
    - android:fontFamily
`
	require.NoError(t, os.WriteFile(overlayPath, []byte(overlayContent), 0644))

	reg, err := LoadAll(basePath, overlayPath)
	require.NoError(t, err)

	g, ok := reg.Styleable("android", "TextView")
	require.True(t, ok)
	assert.Len(t, g.Entries, 2)
	assert.Equal(t, []string{basePath, overlayPath}, reg.Sources())
}

func TestLoadAll_PropagatesErrors(t *testing.T) {
	_, err := LoadAll(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestBuiltin(t *testing.T) {
	reg := Builtin()
	require.NotNil(t, reg)
	assert.Equal(t, "android", reg.Namespace())
	assert.Equal(t, []string{"builtin"}, reg.Sources())

	// The widget chain the engine leans on hardest.
	button, ok := reg.Component("Button")
	require.True(t, ok)
	assert.Contains(t, button.Ancestors, "android.widget.TextView")
	assert.Contains(t, button.Ancestors, "android.view.View")

	for _, name := range []string{"View", "TextView", "EditText", "ImageView", "LinearLayout", "FrameLayout"} {
		_, ok := reg.Component(name)
		assert.True(t, ok, "builtin registry must declare %s", name)
	}

	g, ok := reg.Styleable("android", "TextView")
	require.True(t, ok)
	assert.NotEmpty(t, g.Entries)

	vals, ok := reg.PossibleValues("orientation")
	require.True(t, ok)
	assert.Equal(t, []string{"horizontal", "vertical"}, vals)
}

func TestBuiltin_ReturnsSameInstance(t *testing.T) {
	assert.Same(t, Builtin(), Builtin())
}

func TestMergeOverBuiltin(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yml")
	content := `
namespace: android
components:
  - name: Gauge
    qualified: com.acme.Gauge
    extends: [android.view.View]
styleables:
  Gauge:
    - android:max
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	custom, err := Load(path)
	require.NoError(t, err)

	reg := Merge(Builtin(), custom)

	// Custom widgets join the builtin set and inherit from it.
	gauge, ok := reg.Component("Gauge")
	require.True(t, ok)
	assert.Equal(t, []string{"android.view.View"}, gauge.Ancestors)

	_, ok = reg.Component("TextView")
	assert.True(t, ok)
	assert.Equal(t, []string{"builtin", path}, reg.Sources())
}
