package cli

import (
	"os"

	"github.com/viewls/viewls/internal/completion"
	"github.com/viewls/viewls/internal/logger"
	"github.com/viewls/viewls/internal/lsp"
	"github.com/viewls/viewls/pkg/version"
)

// ServeParams contains parameters for the Serve command.
type ServeParams struct {
	LogLevel string
	Registry RegistryOptions
	// Verbosity controls protocol-level logging of the language server.
	Verbosity int
}

// Serve runs the language server on stdio until the client disconnects.
func Serve(params ServeParams) error {
	cfg, cfgPath, err := resolveConfig(params.Registry)
	if err != nil {
		return err
	}
	log := logger.New(effectiveLogLevel(cfg, params.LogLevel), os.Stderr)
	reg, err := loadRegistry(cfg, log)
	if err != nil {
		return err
	}

	namespace := effectiveNamespace(cfg, reg)
	log.Info().
		Str("config", cfgPath).
		Str("namespace", namespace).
		Int("components", len(reg.Components())).
		Msg("Starting language server")

	engine := completion.NewEngine(reg, reg, reg, log)
	server := lsp.NewServer(engine, namespace, version.Version, log)
	return server.Run(params.Verbosity)
}
