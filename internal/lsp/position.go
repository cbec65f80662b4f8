package lsp

import (
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// lineOffsets returns the byte offset of the start of every line in text.
func lineOffsets(text string) []int {
	offs := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offs = append(offs, i+1)
		}
	}
	return offs
}

// utf16Len returns the number of UTF-16 code units a rune occupies, which
// is how LSP positions count characters.
func utf16Len(r rune) int {
	if r < 0x10000 {
		return 1
	}
	return 2
}

// offsetAt converts an LSP position into a byte offset into text.
// Positions past the end of a line clamp to the line end; positions past
// the last line clamp to the end of the document.
func offsetAt(text string, pos protocol.Position) int {
	lines := lineOffsets(text)
	line := int(pos.Line)
	if line < 0 {
		return 0
	}
	if line >= len(lines) {
		return len(text)
	}

	i := lines[line]
	need := int(pos.Character)
	for i < len(text) && need > 0 {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			break
		}
		need -= utf16Len(r)
		i += size
	}
	return i
}

// applyChange splices replacement into text over the given range. A nil
// range replaces the whole document, which is what full-sync clients send.
func applyChange(text string, rng *protocol.Range, replacement string) string {
	if rng == nil {
		return replacement
	}

	start := offsetAt(text, rng.Start)
	end := offsetAt(text, rng.End)
	if end < start {
		start, end = end, start
	}

	var b strings.Builder
	b.Grow(start + len(replacement) + len(text) - end)
	b.WriteString(text[:start])
	b.WriteString(replacement)
	b.WriteString(text[end:])
	return b.String()
}
