package expr

// tokenKind classifies strict-mode lexer tokens.
type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenOperand
	tokenComparator
	tokenAnd
	tokenOr
)

// token is one strict-mode lexeme.
type token struct {
	kind tokenKind
	text string
}

func (t token) describe() string {
	if t.kind == tokenEOF {
		return "end of input"
	}
	return "\"" + t.text + "\""
}

// lexer is the exact tokenizer for strict mode.
type lexer struct {
	src string
	pos int
}

// next returns the next token. Operand tokens carry their raw source
// text; comparator symbols, the contains keyword, and the and/or
// boundary keywords are classified here.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokenEOF}, nil
	}

	ch := l.src[l.pos]
	if ch == '<' || ch == '>' || ch == '=' || ch == '!' {
		return l.lexComparator()
	}
	if ch == '\'' || ch == '"' {
		return l.lexString(ch)
	}
	return l.lexWord()
}

// lexComparator scans a comparison symbol. Two-character symbols are
// matched first; `<>` lexes as a single comparator token so the
// parser can reject it as unrecognized rather than as two symbols.
func (l *lexer) lexComparator() (token, error) {
	if l.pos+1 < len(l.src) {
		two := l.src[l.pos : l.pos+2]
		switch two {
		case "==", "!=", "<=", ">=", "<>":
			l.pos += 2
			return token{kind: tokenComparator, text: two}, nil
		}
	}
	ch := l.src[l.pos]
	if ch == '<' || ch == '>' {
		l.pos++
		return token{kind: tokenComparator, text: string(ch)}, nil
	}
	return token{}, syntaxErrorf("unexpected character %q in %q", string(ch), l.src)
}

// lexString scans a quoted string operand, quotes included.
func (l *lexer) lexString(quote byte) (token, error) {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) {
		if l.src[l.pos] == quote {
			l.pos++
			return token{kind: tokenOperand, text: l.src[start:l.pos]}, nil
		}
		l.pos++
	}
	return token{}, syntaxErrorf("unterminated string in %q", l.src)
}

// lexWord scans an unquoted operand, keeping bracketed path segments
// (including quoted keys inside them) atomic, then classifies the
// boundary and contains keywords.
func (l *lexer) lexWord() (token, error) {
	start := l.pos
	depth := 0
	for l.pos < len(l.src) {
		ch := l.src[l.pos]
		if ch == '\'' || ch == '"' {
			quote := ch
			l.pos++
			for l.pos < len(l.src) && l.src[l.pos] != quote {
				l.pos++
			}
			if l.pos >= len(l.src) {
				return token{}, syntaxErrorf("unterminated string in %q", l.src)
			}
			l.pos++
			continue
		}
		if ch == '[' {
			depth++
		} else if ch == ']' {
			if depth > 0 {
				depth--
			}
		} else if depth == 0 && (isSpace(ch) || ch == '<' || ch == '>' || ch == '=' || ch == '!') {
			break
		}
		l.pos++
	}
	text := l.src[start:l.pos]
	switch text {
	case "and":
		return token{kind: tokenAnd, text: text}, nil
	case "or":
		return token{kind: tokenOr, text: text}, nil
	case "contains":
		return token{kind: tokenComparator, text: text}, nil
	}
	return token{kind: tokenOperand, text: text}, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// strictParser is a recursive-descent parser with one token of
// lookahead.
type strictParser struct {
	lex lexer
	tok token
}

func (sp *strictParser) advance() error {
	tok, err := sp.lex.next()
	if err != nil {
		return err
	}
	sp.tok = tok
	return nil
}

// parseStrict parses markup exactly, left to right. Comparisons after
// the first attach to the current tail of the chain, so the returned
// head is the first comparison in source order and the chain shape is
// identical to lax mode. The token stream must be fully consumed.
func (p *Parser) parseStrict(markup string) (*Condition, error) {
	sp := &strictParser{lex: lexer{src: markup}}
	if err := sp.advance(); err != nil {
		return nil, err
	}

	head, err := sp.parseComparison()
	if err != nil {
		return nil, err
	}
	tail := head
	depth := 1

	for sp.tok.kind == tokenAnd || sp.tok.kind == tokenOr {
		comb := combinatorAnd
		if sp.tok.kind == tokenOr {
			comb = combinatorOr
		}
		boundary := sp.tok.text
		if err := sp.advance(); err != nil {
			return nil, err
		}
		if sp.tok.kind == tokenEOF {
			return nil, syntaxErrorf("expected expression after %q in %q", boundary, markup)
		}
		next, err := sp.parseComparison()
		if err != nil {
			return nil, err
		}
		tail.comb = comb
		tail.next = next
		tail = next
		depth++
		if depth > p.maxDepth {
			return nil, syntaxErrorf("condition chain exceeds %d comparisons", p.maxDepth)
		}
	}

	if sp.tok.kind != tokenEOF {
		return nil, syntaxErrorf("unexpected trailing input %s in %q", sp.tok.describe(), markup)
	}
	return head, nil
}

// parseComparison parses `operand [comparator operand]`.
func (sp *strictParser) parseComparison() (*Condition, error) {
	if sp.tok.kind != tokenOperand {
		return nil, syntaxErrorf("expected expression, found %s", sp.tok.describe())
	}
	left, err := ParseOperand(sp.tok.text)
	if err != nil {
		return nil, err
	}
	if err := sp.advance(); err != nil {
		return nil, err
	}

	if sp.tok.kind != tokenComparator {
		return &Condition{left: left}, nil
	}
	op := sp.tok.text
	if !IsComparator(op) {
		return nil, syntaxErrorf("unknown comparison operator %q", op)
	}
	if err := sp.advance(); err != nil {
		return nil, err
	}
	if sp.tok.kind != tokenOperand {
		return nil, syntaxErrorf("expected expression after %q, found %s", op, sp.tok.describe())
	}
	right, err := ParseOperand(sp.tok.text)
	if err != nil {
		return nil, err
	}
	if err := sp.advance(); err != nil {
		return nil, err
	}
	return &Condition{left: left, op: op, right: right}, nil
}
