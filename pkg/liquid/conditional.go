package liquid

import (
	"strings"

	"github.com/MjAbuz/liquid/pkg/liquid/expr"
)

// branchState tracks where an if construct is in its lifecycle while
// branches are appended.
type branchState int

const (
	// stateAwaitingBranch accepts elsif and else branches.
	stateAwaitingBranch branchState = iota
	// stateElse accepts no further branches.
	stateElse
	// stateClosed means endif was seen.
	stateClosed
)

// branch is one arm of an if construct. A nil guard is the else arm
// and always matches.
type branch struct {
	guard *expr.Condition
	body  []node
}

// ifNode renders the body of the first branch whose guard evaluates
// truthy. Guards after the selected branch are never evaluated; when
// no branch matches, the construct contributes nothing to the output.
type ifNode struct {
	branches []*branch
}

func (n *ifNode) render(sb *strings.Builder, vars map[string]any) error {
	for _, b := range n.branches {
		if b.guard == nil {
			return renderBody(b.body, sb, vars)
		}
		ok, err := b.guard.Evaluate(vars)
		if err != nil {
			return &RenderError{Tag: "if", Err: err}
		}
		if ok {
			return renderBody(b.body, sb, vars)
		}
	}
	return nil
}

// ifBuilder assembles an if construct branch by branch, enforcing the
// branch ordering rules.
type ifBuilder struct {
	parser   *expr.Parser
	branches []*branch
	state    branchState
}

// newIfBuilder starts a construct from the opening if tag's markup.
func newIfBuilder(condParser *expr.Parser, markup string) (*ifBuilder, error) {
	guard, err := condParser.Parse(markup)
	if err != nil {
		return nil, &SyntaxError{Tag: "if", Markup: markup, Err: err}
	}
	return &ifBuilder{
		parser:   condParser,
		branches: []*branch{{guard: guard}},
	}, nil
}

// setBody attaches the parsed body to the branch most recently opened.
func (b *ifBuilder) setBody(body []node) {
	b.branches[len(b.branches)-1].body = body
}

// pushElsif opens a guarded branch. An elsif after the else branch is
// a syntax error.
func (b *ifBuilder) pushElsif(markup string) error {
	if b.state != stateAwaitingBranch {
		return &SyntaxError{Tag: "elsif", Markup: markup, Err: ErrElsifAfterElse}
	}
	guard, err := b.parser.Parse(markup)
	if err != nil {
		return &SyntaxError{Tag: "elsif", Markup: markup, Err: err}
	}
	b.branches = append(b.branches, &branch{guard: guard})
	return nil
}

// pushElse opens the unguarded fallback branch. Only one is allowed.
func (b *ifBuilder) pushElse() error {
	if b.state != stateAwaitingBranch {
		return &SyntaxError{Tag: "else", Err: ErrDuplicateElse}
	}
	b.state = stateElse
	b.branches = append(b.branches, &branch{})
	return nil
}

// close finishes the construct and returns its node.
func (b *ifBuilder) close() *ifNode {
	b.state = stateClosed
	n := &ifNode{branches: b.branches}
	stripBlankBodies(n)
	return n
}

// stripBlankBodies empties every branch body when the construct as a
// whole could only ever produce whitespace. A construct used purely
// for control flow then leaves no stray blank lines in the output.
func stripBlankBodies(n *ifNode) {
	for _, b := range n.branches {
		for _, child := range b.body {
			t, ok := child.(*textNode)
			if !ok || strings.TrimSpace(t.text) != "" {
				return
			}
		}
	}
	for _, b := range n.branches {
		b.body = nil
	}
}

// parseIfTag parses a complete if construct starting from its opening
// tag. It consumes tokens through the matching endif.
func parseIfTag(p *parser, tok token) (node, error) {
	builder, err := newIfBuilder(p.engine.condParser, tok.value)
	if err != nil {
		return nil, err
	}

	for {
		body, term, err := p.parseBody("elsif", "else", "endif")
		if err != nil {
			return nil, err
		}
		if term == nil {
			return nil, &SyntaxError{Tag: "if", Markup: tok.value, Err: ErrUnterminatedIf}
		}
		builder.setBody(body)

		switch term.name {
		case "elsif":
			if err := builder.pushElsif(term.value); err != nil {
				return nil, err
			}
		case "else":
			if err := builder.pushElse(); err != nil {
				return nil, err
			}
		case "endif":
			return builder.close(), nil
		}
	}
}
