package markup

// Parse scans source into a Document. It never fails: half-typed tag names,
// dangling attribute names and unterminated value literals are all recorded
// as-is so that completion can run while the user is still typing. Invalid
// regions degrade to text content instead of aborting the scan.
func Parse(source, namespace string) *Document {
	p := parser{src: source}
	p.run()
	return &Document{
		Namespace: namespace,
		Source:    source,
		Nodes:     p.nodes,
	}
}

type parser struct {
	src   string
	pos   int
	nodes []Node
}

func (p *parser) run() {
	for p.pos < len(p.src) {
		if p.src[p.pos] != '<' {
			p.pos++
			continue
		}
		switch {
		case p.lookingAt("<!--"):
			p.skipComment()
		case p.lookingAt("<!"), p.lookingAt("<?"):
			p.skipUntilByte('>')
		case p.lookingAt("</"):
			p.skipUntilByte('>')
		default:
			p.scanOpenTag()
		}
	}
}

func (p *parser) lookingAt(s string) bool {
	return len(p.src)-p.pos >= len(s) && p.src[p.pos:p.pos+len(s)] == s
}

func (p *parser) skipComment() {
	p.pos += len("<!--")
	for p.pos < len(p.src) {
		if p.lookingAt("-->") {
			p.pos += len("-->")
			return
		}
		p.pos++
	}
}

// skipUntilByte consumes through the next occurrence of b, or to the end of
// input. Used for regions completion never looks inside.
func (p *parser) skipUntilByte(b byte) {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++
		if c == b {
			return
		}
	}
}

// scanOpenTag consumes '<' name (attr ('=' value)?)* and the trailing '>' or
// '/>' when present. On a stray '<' it stops without consuming so the next
// tag can be scanned; the current tag is recorded as unterminated.
func (p *parser) scanOpenTag() {
	n := Node{}
	n.Span.Start = p.pos
	n.TagSpan.Start = p.pos
	p.pos++ // '<'

	nameStart := p.pos
	p.scanName()
	n.Name = p.src[nameStart:p.pos]
	n.TagSpan.End = p.pos

	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			n.Span.End = p.pos
			break
		}
		switch c := p.src[p.pos]; {
		case c == '>':
			p.pos++
			n.Span.End = p.pos
			n.Terminated = true
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '>':
			p.pos += 2
			n.Span.End = p.pos
			n.Terminated = true
			n.SelfClosing = true
		case c == '<':
			// Recovery: a new tag starts before this one was closed.
			n.Span.End = p.pos
		case !isNameByte(c):
			// Stray punctuation inside the tag; skip it.
			p.pos++
			continue
		default:
			n.Attrs = append(n.Attrs, p.scanAttribute())
			continue
		}
		break
	}
	p.nodes = append(p.nodes, n)
}

func (p *parser) scanAttribute() Attribute {
	a := Attribute{}
	a.NameSpan.Start = p.pos
	p.scanName()
	a.NameSpan.End = p.pos
	a.Name = p.src[a.NameSpan.Start:a.NameSpan.End]

	mark := p.pos
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '=' {
		// Dangling name; leave whitespace for the caller.
		p.pos = mark
		return a
	}
	p.pos++ // '='
	a.HasValue = true
	p.skipSpace()

	if p.pos < len(p.src) && (p.src[p.pos] == '"' || p.src[p.pos] == '\'') {
		quote := p.src[p.pos]
		a.Quoted = true
		p.pos++
		a.ValueSpan.Start = p.pos
		for p.pos < len(p.src) {
			c := p.src[p.pos]
			if c == quote {
				a.ValueSpan.End = p.pos
				a.Value = p.src[a.ValueSpan.Start:a.ValueSpan.End]
				p.pos++
				return a
			}
			// Recovery: a newline or tag start means the quote was
			// never closed.
			if c == '<' || c == '\n' {
				break
			}
			p.pos++
		}
		a.ValueSpan.End = p.pos
		a.Value = p.src[a.ValueSpan.Start:a.ValueSpan.End]
		return a
	}

	// Unquoted value: everything up to whitespace or tag punctuation.
	a.ValueSpan.Start = p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '>' || c == '<' || c == '/' {
			break
		}
		p.pos++
	}
	a.ValueSpan.End = p.pos
	a.Value = p.src[a.ValueSpan.Start:a.ValueSpan.End]
	return a
}

// scanName consumes tag and attribute name bytes. Namespace qualifiers stay
// part of the name; LocalName splits them off later.
func (p *parser) scanName() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if isNameByte(c) {
			p.pos++
			continue
		}
		return
	}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-' || c == '.' || c == ':':
		return true
	}
	return false
}
