package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors and styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render renders the registry summary to a string.
func Render(data *Data) string {
	var b strings.Builder

	b.WriteString(renderHeader(data))
	b.WriteString("\n")

	b.WriteString(renderConfiguration(data))
	b.WriteString("\n")

	b.WriteString(renderSources(data))
	b.WriteString("\n")

	b.WriteString(renderComponents(data))

	return b.String()
}

func renderHeader(data *Data) string {
	return titleStyle.Render("📦 viewls: ") + valueStyle.Render(data.Version) + "\n"
}

func renderConfiguration(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("⚙️  Configuration:") + "\n")

	if data.ConfigPath != "" {
		b.WriteString("   " + keyStyle.Render("Config file: ") + subtleStyle.Render(data.ConfigPath) + "\n")
	} else {
		b.WriteString("   " + keyStyle.Render("Config file: ") + subtleStyle.Render("none (defaults)") + "\n")
	}
	b.WriteString("   " + keyStyle.Render("Namespace: ") + valueStyle.Render(data.Namespace) + "\n")
	b.WriteString("   " + keyStyle.Render("Log level: ") + valueStyle.Render(data.LogLevel) + "\n")

	return b.String()
}

func renderSources(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("📝 Registries (merge order):") + "\n")

	if len(data.Sources) == 0 {
		b.WriteString("   " + subtleStyle.Render("No registries loaded") + "\n")
		return b.String()
	}

	for i, source := range data.Sources {
		b.WriteString(fmt.Sprintf("   %d. %s\n", i+1, subtleStyle.Render(source)))
	}

	return b.String()
}

func renderComponents(data *Data) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render(fmt.Sprintf("🧩 Components (%d):", len(data.Components))) + "\n")

	if len(data.Components) == 0 {
		b.WriteString("   " + subtleStyle.Render("No components registered") + "\n")
		return b.String()
	}

	for _, c := range data.Components {
		b.WriteString("   " + keyStyle.Render(c.SimpleName) + " " + subtleStyle.Render(c.QualifiedName))
		b.WriteString(valueStyle.Render(fmt.Sprintf("  (ancestors %d, attributes %d)", c.Ancestors, c.Attributes)))
		b.WriteString("\n")
	}

	b.WriteString("   " + keyStyle.Render("Styleable groups: ") + valueStyle.Render(fmt.Sprintf("%d", data.Styleables)) + "\n")
	b.WriteString("   " + keyStyle.Render("Attributes with known values: ") + valueStyle.Render(fmt.Sprintf("%d", data.ValueAttrs)) + "\n")

	return b.String()
}
