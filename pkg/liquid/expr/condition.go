package expr

import "strings"

// combinator joins a condition to the one that follows it.
type combinator int

const (
	combinatorNone combinator = iota
	combinatorAnd
	combinatorOr
)

func (c combinator) String() string {
	switch c {
	case combinatorAnd:
		return "and"
	case combinatorOr:
		return "or"
	default:
		return ""
	}
}

// Condition is one parsed boolean test, optionally chained to a
// following condition via and/or. Chains are right-associative with
// no precedence distinction between the two combinators: the head
// condition combines its own result with the result of everything to
// its right. A Condition is immutable after parsing and safe for
// concurrent evaluation against different variable maps.
type Condition struct {
	left Operand
	// op is empty for a bare operand, which evaluates by truthiness.
	// op and right are set together.
	op    string
	right Operand
	// comb and next are set together, forming an owned forward chain.
	comb combinator
	next *Condition
}

// Evaluate evaluates the condition chain against vars.
//
// For a chain `a op1 b op2 c` the result is `a op1 (b op2 c)`: the
// tail of the chain is evaluated as a unit before being combined with
// the head. Both parsing modes build chains evaluated by this single
// implementation, so the precedence-free contract cannot drift
// between them. The boolean combination short-circuits: a false `and`
// head or a true `or` head skips evaluation of the tail.
func (c *Condition) Evaluate(vars map[string]any) (bool, error) {
	self, err := c.selfResult(vars)
	if err != nil {
		return false, err
	}
	if c.next == nil {
		return self, nil
	}
	switch c.comb {
	case combinatorAnd:
		if !self {
			return false, nil
		}
		return c.next.Evaluate(vars)
	case combinatorOr:
		if self {
			return true, nil
		}
		return c.next.Evaluate(vars)
	default:
		return false, syntaxErrorf("condition %s has a successor but no combinator", c)
	}
}

// selfResult evaluates this node alone: a comparison when an operator
// is present, truthiness of the left operand otherwise.
func (c *Condition) selfResult(vars map[string]any) (bool, error) {
	left, err := c.left.Resolve(vars)
	if err != nil {
		return false, err
	}
	if c.op == "" {
		return IsTruthy(left), nil
	}
	right, err := c.right.Resolve(vars)
	if err != nil {
		return false, err
	}
	return Compare(left, right, c.op)
}

// String reconstructs the chain's source form.
func (c *Condition) String() string {
	var sb strings.Builder
	for node := c; node != nil; node = node.next {
		sb.WriteString(node.left.String())
		if node.op != "" {
			sb.WriteString(" ")
			sb.WriteString(node.op)
			sb.WriteString(" ")
			sb.WriteString(node.right.String())
		}
		if node.next != nil {
			sb.WriteString(" ")
			sb.WriteString(node.comb.String())
			sb.WriteString(" ")
		}
	}
	return sb.String()
}
