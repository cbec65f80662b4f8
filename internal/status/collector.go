// Package status provides registry information collection and display for
// viewls.
package status

import (
	"github.com/viewls/viewls/internal/completion"
	"github.com/viewls/viewls/internal/config"
	"github.com/viewls/viewls/internal/sdk"
	"github.com/viewls/viewls/pkg/version"
)

// Collect gathers everything the info view renders from a loaded
// configuration and its merged registry.
func Collect(cfg config.Config, configPath string, reg *sdk.Registry) *Data {
	data := &Data{
		Version:         version.Version,
		ConfigPath:      configPath,
		Namespace:       cfg.Namespace,
		LogLevel:        cfg.LogLevel,
		BuiltinRegistry: cfg.BuiltinRegistry,
		Sources:         reg.Sources(),
		Components:      make([]ComponentInfo, 0),
		Styleables:      len(reg.Styleables()),
		ValueAttrs:      len(reg.ValueAttrs()),
	}

	for _, c := range reg.Components() {
		data.Components = append(data.Components, ComponentInfo{
			SimpleName:    c.SimpleName,
			QualifiedName: c.QualifiedName,
			Ancestors:     len(c.Ancestors),
			Attributes:    len(completion.ResolveAttributes(reg, reg, cfg.Namespace, c.QualifiedName)),
		})
	}

	return data
}
