package syntax

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error wraps exactly one of these, so callers can test
// with errors.Is.
var (
	// ErrMalformedQuantifier indicates an unparseable {m,n} bound, m > n,
	// a bound above the configured limit, or a bound with no atom before it.
	ErrMalformedQuantifier = errors.New("malformed quantifier")

	// ErrInvalidRange indicates a class range whose low end exceeds its high end.
	ErrInvalidRange = errors.New("invalid character class range")

	// ErrUnterminatedExpression indicates an unclosed group or class, or a
	// trailing backslash.
	ErrUnterminatedExpression = errors.New("unterminated expression")

	// ErrUnexpectedToken indicates a significant character where the grammar
	// does not allow it.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrNestingTooDeep indicates groups nested beyond the configured limit.
	ErrNestingTooDeep = errors.New("nesting too deep")
)

// Error describes a problem found while normalizing or parsing a pattern.
type Error struct {
	// Kind is one of the Err* sentinels of this package.
	Kind error

	// Pattern is the text being processed when the error was found. For
	// parse errors this is the normalized text.
	Pattern string

	// Pos is the character (rune) offset into Pattern.
	Pos int

	// Detail is a short human-readable explanation.
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("error parsing pattern %q at offset %d: %v: %s", e.Pattern, e.Pos, e.Kind, e.Detail)
	}
	return fmt.Sprintf("error parsing pattern %q at offset %d: %v", e.Pattern, e.Pos, e.Kind)
}

// Unwrap returns Kind.
func (e *Error) Unwrap() error {
	return e.Kind
}
