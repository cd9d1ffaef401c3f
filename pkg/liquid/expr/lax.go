package expr

// parseLax parses markup tolerantly. The markup is split into chunks
// separated by whole-word and/or boundary tokens, each chunk is
// matched against the fixed operand/operator/operand pattern, and the
// chain is assembled from the last chunk toward the first so that the
// head ends up in source order with the rest of the chain nested
// under it.
func (p *Parser) parseLax(markup string) (*Condition, error) {
	words, err := splitWords(markup)
	if err != nil {
		return nil, err
	}

	var chunks [][]string
	var combs []combinator
	var cur []string
	lastBoundary := ""

	for _, w := range words {
		if w == "and" || w == "or" {
			if len(cur) == 0 {
				return nil, syntaxErrorf("expected expression before %q in %q", w, markup)
			}
			chunks = append(chunks, cur)
			cur = nil
			if w == "and" {
				combs = append(combs, combinatorAnd)
			} else {
				combs = append(combs, combinatorOr)
			}
			lastBoundary = w
			continue
		}
		cur = append(cur, w)
	}
	if len(cur) == 0 {
		if lastBoundary != "" {
			return nil, syntaxErrorf("expected expression after %q in %q", lastBoundary, markup)
		}
		return nil, syntaxErrorf("empty condition")
	}
	chunks = append(chunks, cur)

	if len(chunks) > p.maxDepth {
		return nil, syntaxErrorf("condition chain exceeds %d comparisons", p.maxDepth)
	}

	head, err := parseChunk(chunks[len(chunks)-1])
	if err != nil {
		return nil, err
	}
	for i := len(chunks) - 2; i >= 0; i-- {
		cond, err := parseChunk(chunks[i])
		if err != nil {
			return nil, err
		}
		cond.comb = combs[i]
		cond.next = head
		head = cond
	}
	return head, nil
}

// parseChunk matches one chunk against `operand [comparator operand]`.
// Words beyond a complete match are tolerated and ignored; a chunk
// whose first word fails the operand grammar, or whose second word is
// present but not a comparator followed by an operand, still parses as
// long as the leading operand stands alone.
func parseChunk(words []string) (*Condition, error) {
	left, err := ParseOperand(words[0])
	if err != nil {
		return nil, err
	}
	if len(words) >= 3 && IsComparator(words[1]) {
		right, err := ParseOperand(words[2])
		if err != nil {
			return nil, err
		}
		return &Condition{left: left, op: words[1], right: right}, nil
	}
	return &Condition{left: left}, nil
}
