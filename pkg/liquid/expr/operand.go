package expr

import (
	"strconv"
	"strings"
)

// operandKind distinguishes literals from variable references.
type operandKind int

const (
	operandLiteral operandKind = iota
	operandVariable
)

// Operand is a literal value or variable-path reference. It is parsed
// once and resolved lazily against a variable map at evaluate time.
type Operand struct {
	kind operandKind
	// literal holds the parsed value for operandLiteral.
	literal any
	// path holds the lookup segments for operandVariable.
	path []pathSegment
	raw  string
}

// pathSegment is one step of a variable path: either a map key or a
// numeric slice index.
type pathSegment struct {
	key     string
	index   int
	isIndex bool
}

// ParseOperand parses a single operand: a quoted string, a number, a
// boolean or nil literal, or a variable path such as user.name,
// items[0], or map["key"].
func ParseOperand(src string) (Operand, error) {
	s := strings.TrimSpace(src)
	if s == "" {
		return Operand{}, syntaxErrorf("empty operand")
	}

	if s[0] == '\'' || s[0] == '"' {
		quote := s[0]
		if len(s) < 2 || s[len(s)-1] != quote {
			return Operand{}, syntaxErrorf("unterminated string %s", s)
		}
		return Operand{kind: operandLiteral, literal: s[1 : len(s)-1], raw: s}, nil
	}

	switch s {
	case "true":
		return Operand{kind: operandLiteral, literal: true, raw: s}, nil
	case "false":
		return Operand{kind: operandLiteral, literal: false, raw: s}, nil
	case "nil", "null":
		return Operand{kind: operandLiteral, literal: nil, raw: s}, nil
	}

	if c := s[0]; c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9') {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Operand{kind: operandLiteral, literal: i, raw: s}, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Operand{kind: operandLiteral, literal: f, raw: s}, nil
		}
		return Operand{}, syntaxErrorf("malformed number %q", s)
	}

	path, err := parsePath(s)
	if err != nil {
		return Operand{}, err
	}
	return Operand{kind: operandVariable, path: path, raw: s}, nil
}

// String returns the original operand source text.
func (o Operand) String() string {
	return o.raw
}

// Resolve resolves the operand against vars. Literals return their
// parsed value; variable paths are walked segment by segment.
// Undefined variables and dead-end path segments resolve to nil.
func (o Operand) Resolve(vars map[string]any) (any, error) {
	if o.kind == operandLiteral {
		return o.literal, nil
	}
	cur, ok := vars[o.path[0].key]
	if !ok {
		return nil, nil
	}
	for _, seg := range o.path[1:] {
		cur, ok = lookupSegment(cur, seg)
		if !ok {
			return nil, nil
		}
	}
	return cur, nil
}

// lookupSegment applies one path segment to a resolved value.
func lookupSegment(cur any, seg pathSegment) (any, bool) {
	if seg.isIndex {
		switch v := cur.(type) {
		case []any:
			if seg.index < len(v) {
				return v[seg.index], true
			}
		case []string:
			if seg.index < len(v) {
				return v[seg.index], true
			}
		}
		return nil, false
	}

	switch v := cur.(type) {
	case map[string]any:
		if val, ok := v[seg.key]; ok {
			return val, true
		}
	case map[string]string:
		if val, ok := v[seg.key]; ok {
			return val, true
		}
	}

	// The size property is resolved when no explicit key shadows it.
	if seg.key == "size" {
		switch v := cur.(type) {
		case string:
			return int64(len(v)), true
		case []any:
			return int64(len(v)), true
		case []string:
			return int64(len(v)), true
		case map[string]any:
			return int64(len(v)), true
		}
	}
	return nil, false
}

// parsePath parses a dotted, optionally indexed variable path.
func parsePath(s string) ([]pathSegment, error) {
	var segs []pathSegment
	i := 0

	readIdent := func() (string, bool) {
		start := i
		for i < len(s) && isIdentChar(s[i]) {
			i++
		}
		if i == start || !isIdentStart(s[start]) {
			return "", false
		}
		return s[start:i], true
	}

	id, ok := readIdent()
	if !ok {
		return nil, syntaxErrorf("malformed operand %q", s)
	}
	segs = append(segs, pathSegment{key: id})

	for i < len(s) {
		switch s[i] {
		case '.':
			i++
			id, ok := readIdent()
			if !ok {
				return nil, syntaxErrorf("malformed operand %q", s)
			}
			segs = append(segs, pathSegment{key: id})
		case '[':
			i++
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, syntaxErrorf("unterminated index in %q", s)
			}
			inner := strings.TrimSpace(s[i : i+end])
			i += end + 1
			seg, err := parseIndexSegment(inner, s)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
		default:
			return nil, syntaxErrorf("malformed operand %q", s)
		}
	}
	return segs, nil
}

// parseIndexSegment parses the inside of a bracketed path segment:
// a non-negative integer index or a quoted key.
func parseIndexSegment(inner, operand string) (pathSegment, error) {
	if inner == "" {
		return pathSegment{}, syntaxErrorf("empty index in %q", operand)
	}
	if inner[0] == '\'' || inner[0] == '"' {
		quote := inner[0]
		if len(inner) < 2 || inner[len(inner)-1] != quote {
			return pathSegment{}, syntaxErrorf("unterminated key in %q", operand)
		}
		return pathSegment{key: inner[1 : len(inner)-1]}, nil
	}
	n, err := strconv.Atoi(inner)
	if err != nil || n < 0 {
		return pathSegment{}, syntaxErrorf("invalid index %q in %q", inner, operand)
	}
	return pathSegment{index: n, isIndex: true}, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
