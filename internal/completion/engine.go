package completion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viewls/viewls/internal/logger"
	"github.com/viewls/viewls/internal/markup"
	"github.com/viewls/viewls/internal/sdk"
)

// Engine resolves completion requests against SDK metadata. All collaborators
// are injected; the engine itself holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	components sdk.ComponentIndex
	styleables sdk.StyleableIndex
	values     sdk.ValueProvider
	log        *logger.Logger
}

// NewEngine creates a completion engine. values may be nil, which disables
// attribute-value completion; log may be nil.
func NewEngine(components sdk.ComponentIndex, styleables sdk.StyleableIndex, values sdk.ValueProvider, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Discard()
	}
	return &Engine{
		components: components,
		styleables: styleables,
		values:     values,
		log:        log,
	}
}

// Complete classifies the cursor position and returns ranked, render-ready
// entries. It never fails: any internal error degrades to an empty result,
// because "no suggestions" is the only failure shape an editor can use
// mid-keystroke. The result is never nil.
func (e *Engine) Complete(doc *markup.Document, offset int) (items []Item) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Int("offset", offset).Str("panic", fmt.Sprint(r)).Msg("completion recovered from panic")
			items = []Item{}
		}
	}()

	items = []Item{}
	if doc == nil || offset < 0 || offset > len(doc.Source) {
		e.log.Warn().Int("offset", offset).Msg("completion offset outside document")
		return items
	}

	ctx := classify(doc, offset)
	switch ctx.Kind {
	case ContextTag:
		items = e.completeTags(ctx)
	case ContextAttribute:
		items = e.completeAttributes(doc, ctx)
	case ContextValue:
		items = e.completeValues(ctx)
	case ContextNone:
		e.log.Warn().Int("offset", offset).Msg("cursor context not completable")
		return items
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Level != items[j].Level {
			return items[i].Level > items[j].Level
		}
		return items[i].Label < items[j].Label
	})
	return items
}

// completeTags offers every component whose simple or qualified name matches
// the prefix. A dotted prefix switches labels to qualified names so the
// insert honors what the user started typing.
func (e *Engine) completeTags(ctx Context) []Item {
	items := []Item{}
	dotted := strings.Contains(ctx.Prefix, ".")
	for _, c := range e.components.Components() {
		level := maxLevel(Score(c.SimpleName, ctx.Prefix), Score(c.QualifiedName, ctx.Prefix))
		if level == MatchNone {
			continue
		}
		label := c.SimpleName
		if dotted {
			label = c.QualifiedName
		}
		items = append(items, Item{
			Label:        label,
			Detail:       c.QualifiedName,
			Kind:         ItemTag,
			Level:        level,
			InsertText:   label,
			InsertFormat: InsertPlain,
			Data:         c.QualifiedName,
		})
	}
	return items
}

// completeAttributes resolves the tag's component, walks its chain and
// offers the merged styleable entries. Attributes already present on the
// tag are withheld; the one under the cursor is not.
func (e *Engine) completeAttributes(doc *markup.Document, ctx Context) []Item {
	component, ok := e.components.Component(ctx.Node.Name)
	if !ok {
		e.log.Debug().Str("tag", ctx.Node.Name).Msg("no component metadata for tag")
		return []Item{}
	}

	chain := componentChain(e.components, component)
	groups := collectGroups(e.styleables, doc.Namespace, chain)
	if len(groups) == 0 {
		e.log.Debug().Str("component", component.SimpleName).Msg("no styleable groups in chain")
		return []Item{}
	}

	present := map[string]bool{}
	for i := range ctx.Node.Attrs {
		a := &ctx.Node.Attrs[i]
		if a == ctx.Attr || a.Name == "" {
			continue
		}
		present[a.Name] = true
	}

	// Scoring runs against entry local names; a typed ns: qualifier only
	// shortens the insert.
	qualified := strings.Contains(ctx.Prefix, ":")
	local := ctx.Prefix
	if i := strings.Index(ctx.Prefix, ":"); i >= 0 {
		local = ctx.Prefix[i+1:]
	}

	items := []Item{}
	for _, entry := range mergeEntries(groups) {
		full := entry.Ref.String()
		if present[full] {
			continue
		}
		level := Score(entry.Ref.Entry, local)
		if level == MatchNone {
			continue
		}
		insert := full + `="$0"`
		if qualified {
			insert = entry.Ref.Entry + `="$0"`
		}
		items = append(items, Item{
			Label:          full,
			Detail:         entry.Owner,
			Kind:           ItemAttribute,
			Level:          level,
			InsertText:     insert,
			InsertFormat:   InsertSnippet,
			TriggerSuggest: true,
		})
	}
	return items
}

// completeValues offers known literals for the attribute under the cursor.
// Without a value provider this capability is off and the result is empty.
func (e *Engine) completeValues(ctx Context) []Item {
	if e.values == nil {
		e.log.Debug().Msg("no value provider configured")
		return []Item{}
	}
	values, ok := e.values.PossibleValues(ctx.Attr.LocalName())
	if !ok {
		e.log.Debug().Str("attribute", ctx.Attr.Name).Msg("no known values for attribute")
		return []Item{}
	}

	items := []Item{}
	for _, v := range values {
		level := Score(v, ctx.Prefix)
		if level == MatchNone {
			continue
		}
		items = append(items, Item{
			Label:        v,
			Kind:         ItemValue,
			Level:        level,
			InsertText:   v,
			InsertFormat: InsertPlain,
		})
	}
	return items
}
