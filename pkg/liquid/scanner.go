package liquid

import "strings"

// tokenType classifies scanner tokens.
type tokenType int

const (
	tokenText tokenType = iota
	tokenOutput
	tokenTag
)

// token is one scanned template element.
type token struct {
	typ tokenType
	// name is the tag name for tokenTag.
	name string
	// value is the text content, output expression, or tag markup
	// after the name.
	value string
	// trimLeft / trimRight record {%- and -%} whitespace markers.
	trimLeft  bool
	trimRight bool
}

// scan splits template source into text, output, and tag tokens.
// Output and tag content arrives stripped of delimiters and trim
// markers; whitespace trimming itself is applied afterwards by
// applyTrim.
func scan(src string) ([]token, error) {
	var tokens []token
	pos := 0

	for pos < len(src) {
		outIdx := strings.Index(src[pos:], "{{")
		tagIdx := strings.Index(src[pos:], "{%")

		next, isTag := outIdx, false
		if outIdx < 0 || (tagIdx >= 0 && tagIdx < outIdx) {
			next, isTag = tagIdx, true
		}
		if next < 0 {
			tokens = append(tokens, token{typ: tokenText, value: src[pos:]})
			break
		}

		if next > 0 {
			tokens = append(tokens, token{typ: tokenText, value: src[pos : pos+next]})
		}
		pos += next

		var tok token
		var err error
		var width int
		if isTag {
			tok, width, err = scanTag(src[pos:])
		} else {
			tok, width, err = scanOutput(src[pos:])
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		pos += width
	}
	return applyTrim(tokens), nil
}

// scanOutput scans one {{ ... }} starting at the opening delimiter.
func scanOutput(src string) (token, int, error) {
	end := strings.Index(src, "}}")
	if end < 0 {
		return token{}, 0, &SyntaxError{Tag: "output", Markup: src, Err: ErrUnclosedDelimiter}
	}
	inner := src[2:end]
	tok := token{typ: tokenOutput}
	inner, tok.trimLeft, tok.trimRight = stripTrimMarkers(inner)
	tok.value = strings.TrimSpace(inner)
	return tok, end + 2, nil
}

// scanTag scans one {% ... %} starting at the opening delimiter.
func scanTag(src string) (token, int, error) {
	end := strings.Index(src, "%}")
	if end < 0 {
		return token{}, 0, &SyntaxError{Tag: "tag", Markup: src, Err: ErrUnclosedDelimiter}
	}
	inner := src[2:end]
	tok := token{typ: tokenTag}
	inner, tok.trimLeft, tok.trimRight = stripTrimMarkers(inner)
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return token{}, 0, &SyntaxError{Tag: "tag", Err: ErrEmptyTag}
	}
	name, markup, _ := strings.Cut(inner, " ")
	tok.name = name
	tok.value = strings.TrimSpace(markup)
	return tok, end + 2, nil
}

// stripTrimMarkers removes leading/trailing - markers from delimiter
// content.
func stripTrimMarkers(inner string) (string, bool, bool) {
	var left, right bool
	if strings.HasPrefix(inner, "-") {
		left = true
		inner = inner[1:]
	}
	if strings.HasSuffix(inner, "-") {
		right = true
		inner = inner[:len(inner)-1]
	}
	return inner, left, right
}

// applyTrim folds {%- and -%} markers into the adjacent text tokens.
func applyTrim(tokens []token) []token {
	for i := range tokens {
		if tokens[i].typ == tokenText {
			continue
		}
		if tokens[i].trimLeft && i > 0 && tokens[i-1].typ == tokenText {
			tokens[i-1].value = strings.TrimRight(tokens[i-1].value, " \t\r\n")
		}
		if tokens[i].trimRight && i+1 < len(tokens) && tokens[i+1].typ == tokenText {
			tokens[i+1].value = strings.TrimLeft(tokens[i+1].value, " \t\r\n")
		}
	}
	return tokens
}
