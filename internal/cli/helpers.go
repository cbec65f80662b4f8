package cli

import (
	"os"

	"github.com/viewls/viewls/internal/config"
	"github.com/viewls/viewls/internal/logger"
	"github.com/viewls/viewls/internal/sdk"
)

// RegistryOptions carries the flags shared by every command that needs a
// component registry.
type RegistryOptions struct {
	// ConfigPath loads an explicit config file instead of discovering one.
	ConfigPath string
	// Registries are extra registry files appended to the configured set.
	Registries []string
	// NoBuiltin skips the embedded registry.
	NoBuiltin bool
	// Namespace overrides the configured attribute namespace.
	Namespace string
}

// resolveConfig loads the effective configuration: the explicit file when
// given, otherwise the nearest discovered one, then applies flag overrides.
// The returned path is empty when running on pure defaults.
func resolveConfig(opts RegistryOptions) (config.Config, string, error) {
	var (
		cfg     config.Config
		cfgPath string
		err     error
	)

	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
		cfgPath = opts.ConfigPath
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err == nil {
			cfg, cfgPath, err = config.Discover(cwd)
		}
	}
	if err != nil {
		return config.Config{}, "", err
	}

	cfg.Registries = append(cfg.Registries, opts.Registries...)
	if opts.NoBuiltin {
		cfg.BuiltinRegistry = false
	}
	if opts.Namespace != "" {
		cfg.Namespace = opts.Namespace
	}

	return cfg, cfgPath, nil
}

// loadRegistry assembles the merged registry for a configuration: the
// embedded registry first unless disabled, then each configured file in
// order, later sources replacing earlier entries.
func loadRegistry(cfg config.Config, log *logger.Logger) (*sdk.Registry, error) {
	registries := make([]*sdk.Registry, 0, len(cfg.Registries)+1)

	if cfg.BuiltinRegistry {
		registries = append(registries, sdk.Builtin())
	}

	if len(cfg.Registries) > 0 {
		loaded, err := sdk.LoadAll(cfg.Registries...)
		if err != nil {
			return nil, err
		}
		registries = append(registries, loaded)
	}

	reg := sdk.Merge(registries...)
	log.Debug().
		Int("components", len(reg.Components())).
		Int("sources", len(reg.Sources())).
		Msg("Registry loaded")
	return reg, nil
}

// effectiveNamespace prefers the configured namespace and falls back to the
// registry's own declaration.
func effectiveNamespace(cfg config.Config, reg *sdk.Registry) string {
	if cfg.Namespace != "" {
		return cfg.Namespace
	}
	return reg.Namespace()
}

// effectiveLogLevel layers the log level: an explicit flag wins, then the
// config file, then the packaged default.
func effectiveLogLevel(cfg config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	if cfg.LogLevel != "" {
		return cfg.LogLevel
	}
	return "warn"
}
