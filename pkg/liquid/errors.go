package liquid

import (
	"errors"
	"fmt"
)

// Sentinel errors for template scanning and parsing.
var (
	// ErrUnclosedDelimiter indicates a {{ or {% without its closing
	// delimiter.
	ErrUnclosedDelimiter = errors.New("tag delimiter not closed")

	// ErrEmptyTag indicates a {% %} with no tag name.
	ErrEmptyTag = errors.New("empty tag")

	// ErrUnknownTag indicates a tag name with no registered parser.
	ErrUnknownTag = errors.New("unknown tag")

	// ErrDanglingTag indicates an elsif, else, or endif outside an
	// enclosing if construct.
	ErrDanglingTag = errors.New("tag outside if construct")

	// ErrUnterminatedIf indicates an if construct with no endif.
	ErrUnterminatedIf = errors.New("if tag never closed")
)

// Sentinel errors for if-construct assembly.
var (
	// ErrElsifAfterElse indicates an elsif branch pushed after the
	// else branch.
	ErrElsifAfterElse = errors.New("elsif after else")

	// ErrDuplicateElse indicates a second else branch.
	ErrDuplicateElse = errors.New("duplicate else")
)

// SyntaxError wraps a parse-time failure with the offending construct.
// A syntax error aborts parsing of the entire template; no partially
// built construct remains reachable.
type SyntaxError struct {
	// Tag is the construct being parsed ("if", "elsif", "output", ...).
	Tag string
	// Markup is the offending raw markup, if any.
	Markup string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Markup != "" {
		return fmt.Sprintf("liquid syntax error: %s %q: %v", e.Tag, e.Markup, e.Err)
	}
	return fmt.Sprintf("liquid syntax error: %s: %v", e.Tag, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// RenderError wraps an evaluation failure with the construct that
// raised it. Errors from condition evaluation propagate unmodified
// underneath.
type RenderError struct {
	// Tag is the construct being rendered.
	Tag string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("liquid render error: %s: %v", e.Tag, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RenderError) Unwrap() error {
	return e.Err
}
