package lsp

import (
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/viewls/viewls/internal/completion"
)

// toProtocolItems converts engine output into LSP completion items. The
// engine already ranked the slice, so every item gets a zero-padded
// SortText that freezes that order in clients which re-sort alphabetically.
func toProtocolItems(items []completion.Item) []protocol.CompletionItem {
	out := make([]protocol.CompletionItem, 0, len(items))
	padding := len(fmt.Sprint(len(items)))

	for i, item := range items {
		kind := completionItemKind(item.Kind)
		sortText := fmt.Sprintf("%0*d", padding, i)

		converted := protocol.CompletionItem{
			Label:    item.Label,
			Kind:     &kind,
			SortText: &sortText,
		}
		if item.Detail != "" {
			detail := item.Detail
			converted.Detail = &detail
		}
		if item.InsertText != "" {
			insertText := item.InsertText
			converted.InsertText = &insertText
			format := protocol.InsertTextFormatPlainText
			if item.InsertFormat == completion.InsertSnippet {
				format = protocol.InsertTextFormatSnippet
			}
			converted.InsertTextFormat = &format
		}
		if item.TriggerSuggest {
			converted.Command = &protocol.Command{
				Title:   "Trigger Suggest",
				Command: "editor.action.triggerSuggest",
			}
		}
		if item.Data != "" {
			converted.Data = item.Data
		}
		out = append(out, converted)
	}
	return out
}

func completionItemKind(kind completion.ItemKind) protocol.CompletionItemKind {
	switch kind {
	case completion.ItemTag:
		return protocol.CompletionItemKindClass
	case completion.ItemAttribute:
		return protocol.CompletionItemKindProperty
	case completion.ItemValue:
		return protocol.CompletionItemKindValue
	default:
		return protocol.CompletionItemKindText
	}
}
