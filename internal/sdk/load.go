package sdk

import (
	_ "embed"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/viewls/viewls/internal/verrors"
)

//go:embed builtin.yml
var builtinYAML []byte

// registryFile mirrors the on-disk registry document.
type registryFile struct {
	Namespace  string                 `koanf:"namespace"`
	Components []componentEntry       `koanf:"components"`
	Styleables map[string][]string    `koanf:"styleables"`
	Attrs      map[string]valuesEntry `koanf:"attrs"`
}

type componentEntry struct {
	Name      string   `koanf:"name"`
	Qualified string   `koanf:"qualified"`
	Extends   []string `koanf:"extends"`
}

type valuesEntry struct {
	Values []string `koanf:"values"`
}

// Load reads and parses one registry file. The parser is chosen by
// extension: .yml/.yaml, .toml or .json.
func Load(path string) (*Registry, error) {
	rf, err := loadRaw(path)
	if err != nil {
		return nil, err
	}
	return buildRegistry(rf, path), nil
}

// loadRaw parses a registry file into its on-disk shape without collapsing
// duplicates; the validator needs the uncollapsed entries.
func loadRaw(path string) (*registryFile, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, verrors.NewRegistryError(path, "failed to load registry", err)
	}
	return unmarshalRaw(k, path)
}

// LoadAll loads every path and merges left to right, later files replacing
// earlier entries with the same identity.
func LoadAll(paths ...string) (*Registry, error) {
	registries := make([]*Registry, 0, len(paths))
	for _, path := range paths {
		reg, err := Load(path)
		if err != nil {
			return nil, err
		}
		registries = append(registries, reg)
	}
	return Merge(registries...), nil
}

var (
	builtinOnce sync.Once
	builtinReg  *Registry
)

// Builtin returns the embedded base registry: the core widget set, its
// styleables and common enum values. The embedded document is covered by
// tests, so a parse failure here is a build defect.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider(builtinYAML), yaml.Parser()); err != nil {
			panic("sdk: embedded registry is invalid: " + err.Error())
		}
		rf, err := unmarshalRaw(k, "builtin")
		if err != nil {
			panic("sdk: embedded registry is invalid: " + err.Error())
		}
		builtinReg = buildRegistry(rf, "builtin")
	})
	return builtinReg
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, verrors.NewRegistryError(path, "unsupported registry format", nil)
	}
}

func unmarshalRaw(k *koanf.Koanf, source string) (*registryFile, error) {
	rf := &registryFile{}
	if err := k.Unmarshal("", rf); err != nil {
		return nil, verrors.NewRegistryError(source, "failed to unmarshal registry", err)
	}
	return rf, nil
}

func buildRegistry(rf *registryFile, source string) *Registry {
	namespace := rf.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	components := make([]*Component, 0, len(rf.Components))
	for _, entry := range rf.Components {
		if entry.Name == "" && entry.Qualified == "" {
			continue
		}
		components = append(components, &Component{
			SimpleName:    entry.Name,
			QualifiedName: entry.Qualified,
			Ancestors:     entry.Extends,
		})
	}

	styleables := make(map[string][]AttributeRef, len(rf.Styleables))
	for owner, refs := range rf.Styleables {
		entries := make([]AttributeRef, 0, len(refs))
		for _, ref := range refs {
			entries = append(entries, parseRef(ref, namespace))
		}
		styleables[owner] = entries
	}

	values := make(map[string][]string, len(rf.Attrs))
	for attr, entry := range rf.Attrs {
		values[attr] = entry.Values
	}

	reg := New(namespace, components, styleables, values)
	reg.sources = []string{source}
	return reg
}

// parseRef splits a pkg:entry reference; an unqualified entry belongs to the
// registry namespace.
func parseRef(s, namespace string) AttributeRef {
	if i := strings.Index(s, ":"); i >= 0 {
		return AttributeRef{Pkg: s[:i], Entry: s[i+1:]}
	}
	return AttributeRef{Pkg: namespace, Entry: s}
}
