package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors for condition parsing and evaluation.
var (
	// ErrSyntax indicates malformed condition markup.
	ErrSyntax = errors.New("invalid condition syntax")

	// ErrUnknownOperator indicates a comparison operator outside the
	// recognized set. Both parsers validate operators up front, so
	// this only surfaces for conditions built by hand.
	ErrUnknownOperator = errors.New("unknown comparison operator")
)

// syntaxErrorf builds an error wrapping ErrSyntax.
func syntaxErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSyntax, fmt.Sprintf(format, args...))
}
