package completion

import (
	"strings"

	"github.com/viewls/viewls/internal/markup"
)

// ContextKind is the classification of a cursor position.
type ContextKind int

const (
	// ContextNone marks positions completion has nothing to offer for:
	// text content, closing tags, comments, outside the document.
	ContextNone ContextKind = iota
	// ContextTag marks a cursor inside a tag-name token.
	ContextTag
	// ContextAttribute marks a cursor on an attribute name or in attribute
	// position inside an open tag.
	ContextAttribute
	// ContextValue marks a cursor inside an attribute value literal.
	ContextValue
)

// String returns a short name for logs.
func (k ContextKind) String() string {
	switch k {
	case ContextNone:
		return "none"
	case ContextTag:
		return "tag"
	case ContextAttribute:
		return "attribute"
	case ContextValue:
		return "value"
	default:
		return "unknown"
	}
}

// Context describes what is being typed at a cursor position.
type Context struct {
	Kind ContextKind
	// Prefix is the in-progress token text before the cursor, as typed:
	// tag prefixes have the leading '<' stripped, attribute prefixes keep
	// their ns: qualifier (the engine splits it).
	Prefix string
	Node   *markup.Node
	Attr   *markup.Attribute
}

// classify maps a cursor offset to its completion context. Positions in the
// tag-name token win over attribute regions; whitespace inside an open tag
// is attribute position with an empty prefix.
func classify(doc *markup.Document, offset int) Context {
	node := doc.NodeAt(offset)
	if node == nil {
		return Context{Kind: ContextNone}
	}

	if node.TagSpan.Start < offset && offset <= node.TagSpan.End {
		prefix := strings.TrimPrefix(doc.Source[node.TagSpan.Start:offset], "<")
		return Context{Kind: ContextTag, Prefix: prefix, Node: node}
	}

	if attr := doc.AttributeAt(offset); attr != nil {
		if attr.HasValue && attr.ValueSpan.Start <= offset && offset <= attr.ValueSpan.End {
			return Context{
				Kind:   ContextValue,
				Prefix: doc.Source[attr.ValueSpan.Start:offset],
				Node:   node,
				Attr:   attr,
			}
		}
		return Context{
			Kind:   ContextAttribute,
			Prefix: doc.Source[attr.NameSpan.Start:offset],
			Node:   node,
			Attr:   attr,
		}
	}

	return Context{Kind: ContextAttribute, Node: node}
}
