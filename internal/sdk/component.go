// Package sdk models the component metadata completion draws from: widget
// classes, their inheritance chains, the styleable attribute group each class
// declares, and known literal values for attributes.
package sdk

// Component describes one widget class from a loaded registry.
type Component struct {
	// SimpleName is the undotted class name, e.g. TextView.
	SimpleName string
	// QualifiedName is the fully qualified class name, e.g.
	// android.widget.TextView. Falls back to SimpleName when the registry
	// does not qualify the class.
	QualifiedName string
	// Ancestors holds superclass qualified names ordered nearest-first.
	// Registries may list the full flattened chain or only the direct
	// parent; chain resolution handles both.
	Ancestors []string
}

// AttributeRef identifies one attribute entry inside a styleable group.
type AttributeRef struct {
	Pkg   string
	Entry string
}

// String renders the canonical pkg:entry form.
func (r AttributeRef) String() string {
	return r.Pkg + ":" + r.Entry
}

// AttributeGroup is the set of attributes one component declares for itself,
// excluding anything inherited. Identity is the Owner name: two groups with
// the same owner are the same group.
type AttributeGroup struct {
	Owner   string // declaring component's simple name
	Entries []AttributeRef
}

// ComponentIndex resolves tag names to component metadata.
type ComponentIndex interface {
	// Component accepts a simple or qualified name. Dotted names resolve
	// against qualified names only.
	Component(name string) (*Component, bool)
	// Components returns every known component in deterministic order.
	Components() []*Component
}

// StyleableIndex resolves the attribute group a component declares.
type StyleableIndex interface {
	Styleable(namespace, simpleName string) (*AttributeGroup, bool)
}

// ValueProvider enumerates known literal values for an attribute local name.
type ValueProvider interface {
	PossibleValues(attrLocal string) ([]string, bool)
}
