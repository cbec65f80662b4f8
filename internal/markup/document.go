// Package markup parses view-markup documents into a navigable model that
// answers node-at-offset and attribute-at-offset queries for completion.
package markup

// Span is a half-open byte range [Start, End) into the document source.
type Span struct {
	Start int
	End   int
}

// Len returns the span width in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Attribute represents one attribute inside an element open tag, including
// in-progress forms: the name may be half-typed, the value literal may be
// missing or unterminated.
type Attribute struct {
	Name     string // as typed, possibly namespace-qualified (android:text)
	Value    string // literal text without quotes; empty until typed
	NameSpan Span
	// ValueSpan covers the literal text only, quotes excluded. Zero until
	// HasValue is set.
	ValueSpan Span
	HasValue  bool // '=' has been typed
	Quoted    bool // opening quote has been typed
}

// LocalName returns the attribute name without its namespace qualifier.
func (a *Attribute) LocalName() string {
	for i := 0; i < len(a.Name); i++ {
		if a.Name[i] == ':' {
			return a.Name[i+1:]
		}
	}
	return a.Name
}

// Namespace returns the namespace qualifier of the attribute name, or "" when
// the name is unqualified.
func (a *Attribute) Namespace() string {
	for i := 0; i < len(a.Name); i++ {
		if a.Name[i] == ':' {
			return a.Name[:i]
		}
	}
	return ""
}

// Node represents one element open tag. Only open tags matter for
// completion; closing tags and text content are not modeled.
type Node struct {
	// Name is the tag name as typed, without the leading '<'.
	Name string
	// TagSpan covers the leading '<' through the last tag-name byte.
	TagSpan Span
	// Span covers the whole open tag: '<' through '>' (inclusive of the
	// closer) or, for unterminated tags, through the recovery point.
	Span        Span
	Attrs       []Attribute
	SelfClosing bool
	// Terminated is true when the open tag was closed with '>' or '/>'.
	Terminated bool
}

// covers reports whether a cursor at offset is inside this open tag. A
// cursor sits between bytes, so the position directly after the last typed
// byte of an unterminated tag still belongs to it.
func (n *Node) covers(offset int) bool {
	if offset <= n.Span.Start {
		return false
	}
	if n.Terminated {
		return offset < n.Span.End
	}
	return offset <= n.Span.End
}

// Document is the parsed form of one markup source. It is immutable after
// Parse and safe for concurrent reads.
type Document struct {
	// Namespace is the resource namespace the document was parsed under,
	// e.g. "android".
	Namespace string
	Source    string
	Nodes     []Node
}

// NodeAt returns the element open tag containing the cursor offset, or nil
// when the offset is in text content, a closing tag, a comment, or outside
// the document. When two tags meet at a recovery boundary the later one
// wins.
func (d *Document) NodeAt(offset int) *Node {
	for i := len(d.Nodes) - 1; i >= 0; i-- {
		if d.Nodes[i].covers(offset) {
			return &d.Nodes[i]
		}
	}
	return nil
}

// AttributeAt returns the attribute whose name or value region contains the
// cursor offset, or nil. The position directly after the last typed byte of
// a token belongs to that token.
func (d *Document) AttributeAt(offset int) *Attribute {
	n := d.NodeAt(offset)
	if n == nil {
		return nil
	}
	for i := range n.Attrs {
		a := &n.Attrs[i]
		if a.NameSpan.Start <= offset && offset <= a.NameSpan.End {
			return a
		}
		if a.HasValue && a.ValueSpan.Start <= offset && offset <= a.ValueSpan.End {
			return a
		}
	}
	return nil
}
