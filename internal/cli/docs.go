package cli

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/viewls/viewls/internal/completion"
	"github.com/viewls/viewls/internal/logger"
	"github.com/viewls/viewls/internal/sdk"
)

// DocsParams contains parameters for the Docs command.
type DocsParams struct {
	LogLevel string
	Registry RegistryOptions
	// Output writes the reference to a file instead of stdout.
	Output string
}

type docsAttribute struct {
	Name   string
	Owner  string
	Values []string
}

type docsComponent struct {
	SimpleName    string
	QualifiedName string
	Ancestors     []string
	Attributes    []docsAttribute
}

type docsData struct {
	Namespace  string
	Components []docsComponent
}

const docsTemplate = `# {{ title .Namespace }} component reference

Generated from {{ len .Components }} registered components.
{{- range .Components }}

## {{ .SimpleName }}

` + "`{{ .QualifiedName }}`" + `
{{- if .Ancestors }}

Inherits: {{ join ", " .Ancestors }}
{{- end }}
{{- if .Attributes }}

| Attribute | Declared by | Values |
|-----------|-------------|--------|
{{- range .Attributes }}
| ` + "`{{ .Name }}`" + ` | {{ .Owner }} | {{ join ", " .Values }} |
{{- end }}
{{- end }}
{{- end }}
`

// Docs renders a markdown reference of every component with its inherited
// attribute set and known values.
func Docs(params DocsParams) error {
	cfg, _, err := resolveConfig(params.Registry)
	if err != nil {
		return err
	}
	log := logger.New(effectiveLogLevel(cfg, params.LogLevel), os.Stderr)
	reg, err := loadRegistry(cfg, log)
	if err != nil {
		return err
	}

	data := collectDocs(reg, effectiveNamespace(cfg, reg))

	tmpl, err := template.New("docs").Funcs(sprig.TxtFuncMap()).Parse(docsTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse docs template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render docs: %w", err)
	}

	if params.Output != "" {
		if err := os.WriteFile(params.Output, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write docs to %s: %w", params.Output, err)
		}
		fmt.Printf("Component reference written to: %s\n", params.Output)
		return nil
	}

	fmt.Print(buf.String())
	return nil
}

func collectDocs(reg *sdk.Registry, namespace string) docsData {
	data := docsData{Namespace: namespace}

	for _, c := range reg.Components() {
		dc := docsComponent{
			SimpleName:    c.SimpleName,
			QualifiedName: c.QualifiedName,
			Ancestors:     c.Ancestors,
		}
		for _, entry := range completion.ResolveAttributes(reg, reg, namespace, c.QualifiedName) {
			attr := docsAttribute{
				Name:  entry.Ref.String(),
				Owner: entry.Owner,
			}
			if vals, ok := reg.PossibleValues(entry.Ref.Entry); ok {
				attr.Values = vals
			}
			dc.Attributes = append(dc.Attributes, attr)
		}
		data.Components = append(data.Components, dc)
	}

	return data
}
