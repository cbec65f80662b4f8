package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_DefaultRegistry(t *testing.T) {
	chdirTemp(t)

	output := captureOutput(t, func() error {
		return Info(InfoParams{})
	})

	assert.Contains(t, output, "viewls:")
	assert.Contains(t, output, "Configuration:")
	assert.Contains(t, output, "Namespace:")
	assert.Contains(t, output, "android")
	assert.Contains(t, output, "Components")
	assert.Contains(t, output, "Button")
}

func TestInfo_WithUserRegistry(t *testing.T) {
	tmpDir := chdirTemp(t)
	regPath := writeGaugeRegistry(t, tmpDir)

	output := captureOutput(t, func() error {
		return Info(InfoParams{
			Registry: RegistryOptions{Registries: []string{regPath}},
		})
	})

	assert.Contains(t, output, "Gauge")
	assert.Contains(t, output, "com.acme.widget.Gauge")
}
