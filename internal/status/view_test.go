package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRender_EmptyData tests rendering with minimal data
func TestRender_EmptyData(t *testing.T) {
	data := &Data{
		Version:    "1.0.0",
		Namespace:  "android",
		LogLevel:   "info",
		Components: make([]ComponentInfo, 0),
	}

	output := Render(data)

	assert.Contains(t, output, "viewls:")
	assert.Contains(t, output, "1.0.0")
	assert.Contains(t, output, "Configuration:")
	assert.Contains(t, output, "none (defaults)")
	assert.Contains(t, output, "Namespace:")
	assert.Contains(t, output, "android")
	assert.Contains(t, output, "Registries (merge order):")
	assert.Contains(t, output, "No registries loaded")
	assert.Contains(t, output, "Components (0):")
	assert.Contains(t, output, "No components registered")
}

// TestRender_WithRegistry tests rendering with a populated registry
func TestRender_WithRegistry(t *testing.T) {
	data := &Data{
		Version:         "1.0.0",
		ConfigPath:      "/project/.viewls.yml",
		Namespace:       "android",
		LogLevel:        "debug",
		BuiltinRegistry: true,
		Sources:         []string{"builtin", "/project/custom.yml"},
		Components: []ComponentInfo{
			{SimpleName: "View", QualifiedName: "android.view.View", Ancestors: 0, Attributes: 2},
			{SimpleName: "Button", QualifiedName: "android.widget.Button", Ancestors: 2, Attributes: 6},
		},
		Styleables: 3,
		ValueAttrs: 2,
	}

	output := Render(data)

	assert.Contains(t, output, "/project/.viewls.yml")
	assert.Contains(t, output, "1. builtin")
	assert.Contains(t, output, "2. /project/custom.yml")
	assert.Contains(t, output, "Components (2):")
	assert.Contains(t, output, "Button")
	assert.Contains(t, output, "android.widget.Button")
	assert.Contains(t, output, "(ancestors 2, attributes 6)")
	assert.Contains(t, output, "Styleable groups:")
	assert.Contains(t, output, "Attributes with known values:")
	assert.NotContains(t, output, "No components registered")
}
