package status

// Data contains all the information to display in the registry summary.
type Data struct {
	// Header
	Version    string
	ConfigPath string // empty when running on defaults

	// Configuration
	Namespace       string
	LogLevel        string
	BuiltinRegistry bool

	// Registry
	Sources    []string
	Components []ComponentInfo
	Styleables int
	ValueAttrs int
}

// ComponentInfo summarizes one component for display.
type ComponentInfo struct {
	SimpleName    string
	QualifiedName string
	Ancestors     int
	Attributes    int
}
