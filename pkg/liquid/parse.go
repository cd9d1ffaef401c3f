package liquid

import (
	"fmt"

	"github.com/MjAbuz/liquid/pkg/liquid/expr"
)

// tagParserFunc parses one registered tag into its node. The parser
// is positioned just past the opening tag token; block tags consume
// tokens up to and including their closing tag.
type tagParserFunc func(p *parser, tok token) (node, error)

// auxiliaryTags are tag names that only appear inside an enclosing
// block construct and are never dispatched on their own.
var auxiliaryTags = map[string]bool{
	"elsif": true,
	"else":  true,
	"endif": true,
}

// parser walks the scanned token stream and builds the node tree.
type parser struct {
	tokens []token
	pos    int
	engine *Engine
}

// parseTokens builds the full node tree for a template.
func parseTokens(engine *Engine, tokens []token) ([]node, error) {
	p := &parser{tokens: tokens, engine: engine}
	nodes, term, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if term != nil {
		return nil, &SyntaxError{Tag: term.name, Markup: term.value, Err: ErrDanglingTag}
	}
	return nodes, nil
}

// parseBody parses nodes until one of the terminator tags or the end
// of the token stream. The terminator token, when hit, is consumed
// and returned so the caller can branch on it; a nil token means the
// stream ended first.
func (p *parser) parseBody(terminators ...string) ([]node, *token, error) {
	var nodes []node

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		p.pos++

		switch tok.typ {
		case tokenText:
			nodes = append(nodes, &textNode{text: tok.value})

		case tokenOutput:
			operand, err := expr.ParseOperand(tok.value)
			if err != nil {
				return nil, nil, &SyntaxError{Tag: "output", Markup: tok.value, Err: err}
			}
			nodes = append(nodes, &outputNode{operand: operand})

		case tokenTag:
			for _, term := range terminators {
				if tok.name == term {
					return nodes, &tok, nil
				}
			}
			n, err := p.parseTag(tok)
			if err != nil {
				return nil, nil, err
			}
			nodes = append(nodes, n)

		default:
			return nil, nil, fmt.Errorf("unexpected token type %d", tok.typ)
		}
	}
	return nodes, nil, nil
}

// parseTag dispatches a tag token to its registered parser.
func (p *parser) parseTag(tok token) (node, error) {
	parse, ok := p.engine.tags.Get(tok.name)
	if !ok {
		err := ErrUnknownTag
		if auxiliaryTags[tok.name] {
			err = ErrDanglingTag
		}
		return nil, &SyntaxError{Tag: tok.name, Markup: tok.value, Err: err}
	}
	return parse(p, tok)
}
