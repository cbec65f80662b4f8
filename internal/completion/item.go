package completion

// ItemKind tells the host what a completion entry completes.
type ItemKind int

const (
	// ItemTag completes a component tag name.
	ItemTag ItemKind = iota + 1
	// ItemAttribute completes an attribute name.
	ItemAttribute
	// ItemValue completes an attribute value literal.
	ItemValue
)

// String names the kind for display and serialized output.
func (k ItemKind) String() string {
	switch k {
	case ItemTag:
		return "tag"
	case ItemAttribute:
		return "attribute"
	case ItemValue:
		return "value"
	default:
		return "unknown"
	}
}

// InsertFormat tells the host how to interpret InsertText.
type InsertFormat int

const (
	// InsertPlain inserts the text verbatim.
	InsertPlain InsertFormat = iota
	// InsertSnippet inserts the text as a snippet; $0 marks the final
	// cursor position.
	InsertSnippet
)

// Item is one render-ready completion entry.
type Item struct {
	// Label is the text shown in the completion menu.
	Label string
	// Detail is secondary display text: the qualified class name for tags,
	// the declaring component for attributes.
	Detail string
	Kind   ItemKind
	// Level records the match grade the entry was ranked by.
	Level MatchLevel
	// InsertText is what the host inserts; interpreted per InsertFormat.
	InsertText   string
	InsertFormat InsertFormat
	// TriggerSuggest asks the host to re-open completion right after
	// inserting, so value suggestions follow an attribute insert.
	TriggerSuggest bool
	// Data carries the qualified component name for tag entries.
	Data string
}
