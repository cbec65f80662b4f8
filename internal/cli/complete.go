package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/viewls/viewls/internal/completion"
	"github.com/viewls/viewls/internal/logger"
	"github.com/viewls/viewls/internal/markup"
	"github.com/viewls/viewls/internal/timing"
	"github.com/viewls/viewls/internal/trace"
)

// CompleteParams contains parameters for the Complete command.
type CompleteParams struct {
	LogLevel string
	Registry RegistryOptions
	// Path is the document to complete in; "-" reads stdin.
	Path string
	// Offset is the cursor position as a byte offset into the document.
	Offset int
	// Format selects the output encoding: text or json.
	Format string
}

// renderedItem is the JSON shape of one completion entry.
type renderedItem struct {
	Label          string `json:"label"`
	Detail         string `json:"detail,omitempty"`
	Kind           string `json:"kind"`
	Level          string `json:"level"`
	InsertText     string `json:"insert_text,omitempty"`
	Snippet        bool   `json:"snippet,omitempty"`
	TriggerSuggest bool   `json:"trigger_suggest,omitempty"`
	Data           string `json:"data,omitempty"`
}

// Complete prints completion entries for a cursor position in a markup
// document. A cursor outside any completable context prints nothing and
// exits zero; only invocation problems surface as errors.
func Complete(params CompleteParams) error {
	ctx := context.Background()
	defer trace.Region(ctx, "cli.Complete")()

	timer := timing.NewTimer()

	source, err := readDocument(params.Path)
	if err != nil {
		return err
	}
	timer.Mark("read")

	cfg, _, err := resolveConfig(params.Registry)
	if err != nil {
		return err
	}
	log := logger.New(effectiveLogLevel(cfg, params.LogLevel), os.Stderr)
	reg, err := loadRegistry(cfg, log)
	if err != nil {
		return err
	}
	timer.Mark("registry")

	engine := completion.NewEngine(reg, reg, reg, log)

	var items []completion.Item
	trace.WithRegion(ctx, "complete", func() {
		doc := markup.Parse(source, effectiveNamespace(cfg, reg))
		items = engine.Complete(doc, params.Offset)
	})
	timer.Mark("complete")

	log.Debug().
		Int("items", len(items)).
		Str("timing", timer.Summary()).
		Msg("Completion computed")

	return writeItems(os.Stdout, items, params.Format)
}

func readDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

func writeItems(w io.Writer, items []completion.Item, format string) error {
	switch format {
	case "", "text":
		for _, item := range items {
			if item.Detail != "" {
				fmt.Fprintf(w, "%s\t%s\n", item.Label, item.Detail)
			} else {
				fmt.Fprintln(w, item.Label)
			}
		}
		return nil
	case "json":
		rendered := make([]renderedItem, 0, len(items))
		for _, item := range items {
			rendered = append(rendered, renderedItem{
				Label:          item.Label,
				Detail:         item.Detail,
				Kind:           item.Kind.String(),
				Level:          item.Level.String(),
				InsertText:     item.InsertText,
				Snippet:        item.InsertFormat == completion.InsertSnippet,
				TriggerSuggest: item.TriggerSuggest,
				Data:           item.Data,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rendered)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
