package sdk

import (
	"sort"
	"strings"
)

// DefaultNamespace is assumed when a registry file does not declare one.
const DefaultNamespace = "android"

type styleableKey struct {
	namespace string
	owner     string
}

// Registry is the file-backed aggregate implementing ComponentIndex,
// StyleableIndex and ValueProvider. It is immutable after construction and
// safe for concurrent reads.
type Registry struct {
	namespace   string
	components  []*Component
	byQualified map[string]*Component
	bySimple    map[string][]*Component
	styleables  map[styleableKey]*AttributeGroup
	values      map[string][]string
	sources     []string
}

// New builds an in-memory registry. Components with an empty qualified name
// are keyed by their simple name; a later component with the same qualified
// name replaces an earlier one.
func New(namespace string, components []*Component, styleables map[string][]AttributeRef, values map[string][]string) *Registry {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	r := newEmpty(namespace)
	for _, c := range components {
		r.addComponent(c)
	}
	for owner, entries := range styleables {
		r.styleables[styleableKey{namespace: namespace, owner: owner}] = &AttributeGroup{
			Owner:   owner,
			Entries: append([]AttributeRef(nil), entries...),
		}
	}
	for attr, vals := range values {
		r.values[attr] = append([]string(nil), vals...)
	}
	r.reindex()
	return r
}

// Merge combines registries left to right: a later registry replaces earlier
// entries with the same component qualified name, styleable owner or
// attribute name. The merged namespace is the last non-empty one.
func Merge(registries ...*Registry) *Registry {
	merged := newEmpty(DefaultNamespace)
	for _, reg := range registries {
		if reg == nil {
			continue
		}
		if reg.namespace != "" {
			merged.namespace = reg.namespace
		}
		for _, c := range reg.components {
			merged.addComponent(c)
		}
		for key, g := range reg.styleables {
			merged.styleables[key] = g
		}
		for attr, vals := range reg.values {
			merged.values[attr] = vals
		}
		merged.sources = append(merged.sources, reg.sources...)
	}
	merged.reindex()
	return merged
}

func newEmpty(namespace string) *Registry {
	return &Registry{
		namespace:   namespace,
		byQualified: make(map[string]*Component),
		bySimple:    make(map[string][]*Component),
		styleables:  make(map[styleableKey]*AttributeGroup),
		values:      make(map[string][]string),
	}
}

func (r *Registry) addComponent(c *Component) {
	if c == nil || (c.SimpleName == "" && c.QualifiedName == "") {
		return
	}
	cp := &Component{
		SimpleName:    c.SimpleName,
		QualifiedName: c.QualifiedName,
		Ancestors:     append([]string(nil), c.Ancestors...),
	}
	if cp.QualifiedName == "" {
		cp.QualifiedName = cp.SimpleName
	}
	if cp.SimpleName == "" {
		cp.SimpleName = simpleOf(cp.QualifiedName)
	}
	r.byQualified[cp.QualifiedName] = cp
}

// reindex rebuilds the derived views after components change. Components are
// ordered by qualified name so every listing is deterministic; the first
// element of each simple-name bucket is the collision winner.
func (r *Registry) reindex() {
	r.components = r.components[:0]
	for _, c := range r.byQualified {
		r.components = append(r.components, c)
	}
	sort.Slice(r.components, func(i, j int) bool {
		return r.components[i].QualifiedName < r.components[j].QualifiedName
	})
	r.bySimple = make(map[string][]*Component, len(r.components))
	for _, c := range r.components {
		r.bySimple[c.SimpleName] = append(r.bySimple[c.SimpleName], c)
	}
}

// Namespace returns the namespace this registry serves.
func (r *Registry) Namespace() string {
	return r.namespace
}

// Component resolves a simple or qualified name. When several components
// share a simple name the one with the lexicographically smallest qualified
// name wins, so resolution is stable across loads.
func (r *Registry) Component(name string) (*Component, bool) {
	if name == "" {
		return nil, false
	}
	if strings.Contains(name, ".") {
		c, ok := r.byQualified[name]
		return c, ok
	}
	bucket := r.bySimple[name]
	if len(bucket) == 0 {
		return nil, false
	}
	return bucket[0], true
}

// Components returns all components ordered by qualified name.
func (r *Registry) Components() []*Component {
	return r.components
}

// Styleable returns the attribute group a component declares within the
// given namespace.
func (r *Registry) Styleable(namespace, simpleName string) (*AttributeGroup, bool) {
	g, ok := r.styleables[styleableKey{namespace: namespace, owner: simpleName}]
	return g, ok
}

// Styleables returns every attribute group ordered by owner name.
func (r *Registry) Styleables() []*AttributeGroup {
	keys := make([]styleableKey, 0, len(r.styleables))
	for key := range r.styleables {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].namespace != keys[j].namespace {
			return keys[i].namespace < keys[j].namespace
		}
		return keys[i].owner < keys[j].owner
	})
	groups := make([]*AttributeGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, r.styleables[key])
	}
	return groups
}

// PossibleValues returns the known literal values for an attribute local
// name. Callers must not mutate the returned slice.
func (r *Registry) PossibleValues(attrLocal string) ([]string, bool) {
	vals, ok := r.values[attrLocal]
	return vals, ok
}

// ValueAttrs returns the attribute local names with known values, sorted.
func (r *Registry) ValueAttrs() []string {
	attrs := make([]string, 0, len(r.values))
	for attr := range r.values {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)
	return attrs
}

// Sources lists where this registry's data came from, in merge order.
func (r *Registry) Sources() []string {
	return r.sources
}

func simpleOf(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
