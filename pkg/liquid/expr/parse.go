package expr

import "strings"

// Mode selects the condition parsing strategy.
type Mode int

const (
	// ModeLax tokenizes tolerantly, ignoring trailing words after a
	// complete comparison within a chunk.
	ModeLax Mode = iota

	// ModeStrict tokenizes exactly and rejects trailing input.
	ModeStrict
)

func (m Mode) String() string {
	if m == ModeStrict {
		return "strict"
	}
	return "lax"
}

// DefaultMaxChainDepth bounds the number of chained comparisons in
// one condition. The chain evaluates recursively, so the bound also
// limits stack growth on pathological inputs.
const DefaultMaxChainDepth = 100

// Parser parses branch-header markup into Condition chains. The mode
// is fixed at construction and a Parser is safe for concurrent use.
type Parser struct {
	mode     Mode
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxChainDepth sets the maximum number of chained comparisons.
// Default: DefaultMaxChainDepth
func WithMaxChainDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// NewParser creates a Parser for the given mode.
func NewParser(mode Mode, opts ...Option) *Parser {
	p := &Parser{
		mode:     mode,
		maxDepth: DefaultMaxChainDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses one branch header's raw markup into a Condition chain.
func (p *Parser) Parse(markup string) (*Condition, error) {
	if p.mode == ModeStrict {
		return p.parseStrict(markup)
	}
	return p.parseLax(markup)
}

// Parse is a convenience function using a default Parser in the given
// mode.
func Parse(markup string, mode Mode) (*Condition, error) {
	return NewParser(mode).Parse(markup)
}

// splitWords splits markup on whitespace, treating quoted strings and
// bracketed path segments as atomic. It is the lax tokenization rule:
// `and`/`or` only act as boundaries when they appear as whole words
// outside quotes and brackets.
func splitWords(s string) ([]string, error) {
	var words []string
	var buf strings.Builder
	var quote byte
	depth := 0

	flush := func() {
		if buf.Len() > 0 {
			words = append(words, buf.String())
			buf.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			buf.WriteByte(ch)
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
			buf.WriteByte(ch)
		case ch == '[':
			depth++
			buf.WriteByte(ch)
		case ch == ']':
			if depth > 0 {
				depth--
			}
			buf.WriteByte(ch)
		case depth == 0 && (ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'):
			flush()
		default:
			buf.WriteByte(ch)
		}
	}
	if quote != 0 {
		return nil, syntaxErrorf("unterminated string in %q", s)
	}
	if depth != 0 {
		return nil, syntaxErrorf("unterminated index in %q", s)
	}
	flush()
	return words, nil
}
