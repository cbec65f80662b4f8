// Package config handles loading and parsing of viewls configuration files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/viewls/viewls/internal/verrors"
)

// SupportedConfigNames contains supported configuration file names (in order
// of preference).
var SupportedConfigNames = []string{
	".viewls.yml",
	".viewls.yaml",
	".viewls.toml",
	".viewls.json",
}

// Config holds the service configuration shared by the CLI and the language
// server.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// Namespace is the attribute namespace documents are parsed under. Empty
	// means the merged registry's own declaration applies.
	Namespace string `koanf:"namespace"`
	// BuiltinRegistry controls whether the embedded SDK registry is loaded
	// underneath user registries.
	BuiltinRegistry bool `koanf:"builtin_registry"`
	// Registries lists extra registry files, merged left to right over the
	// builtin one. Relative paths resolve against the config file location.
	Registries []string `koanf:"registries"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		LogLevel:        "warn",
		BuiltinRegistry: true,
	}
}

// Find walks from dir upward and returns the nearest config file, so editors
// opened anywhere inside a project pick up the project's settings.
func Find(dir string) (string, bool) {
	for {
		for _, name := range SupportedConfigNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load reads and parses a configuration file. Fields absent from the file
// keep their Default() values.
func Load(path string) (Config, error) {
	cfg := Default()

	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yml", ".yaml":
		parser = yaml.Parser()
	case ".toml":
		parser = toml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return cfg, verrors.NewConfigError(path, "unsupported config format: "+ext, nil)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return cfg, verrors.NewConfigError(path, "failed to load config", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, verrors.NewConfigError(path, "failed to parse config", err)
	}

	// Registry paths are relative to the config file, not the process cwd.
	base := filepath.Dir(path)
	for i, reg := range cfg.Registries {
		if !filepath.IsAbs(reg) {
			cfg.Registries[i] = filepath.Join(base, reg)
		}
	}

	return cfg, nil
}

// Discover finds and loads the nearest config file above dir. When none
// exists it returns Default() and an empty path.
func Discover(dir string) (Config, string, error) {
	path, found := Find(dir)
	if !found {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}
