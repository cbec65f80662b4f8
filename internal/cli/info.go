package cli

import (
	"fmt"
	"os"

	"github.com/viewls/viewls/internal/logger"
	"github.com/viewls/viewls/internal/status"
)

// InfoParams contains parameters for the Info command.
type InfoParams struct {
	LogLevel string
	Registry RegistryOptions
}

// Info displays the effective configuration and the merged registry.
func Info(params InfoParams) error {
	cfg, cfgPath, err := resolveConfig(params.Registry)
	if err != nil {
		return err
	}
	cfg.LogLevel = effectiveLogLevel(cfg, params.LogLevel)

	log := logger.New(cfg.LogLevel, os.Stderr)
	reg, err := loadRegistry(cfg, log)
	if err != nil {
		return err
	}
	cfg.Namespace = effectiveNamespace(cfg, reg)

	data := status.Collect(cfg, cfgPath, reg)
	fmt.Println(status.Render(data))
	return nil
}
