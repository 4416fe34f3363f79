package swar

import (
	"errors"
	"fmt"
)

var (
	// ErrLookup is returned when a note name does not resolve in a Table.
	ErrLookup = errors.New("swar: note not found")

	// ErrParse is returned when notation violates the grammar.
	ErrParse = errors.New("swar: invalid notation")

	// ErrStructural is returned for out-of-range locators, missing or
	// empty structure, and derivations with no valid span.
	ErrStructural = errors.New("swar: invalid structure")
)

// ParseError describes a notation token that could not be parsed.
type ParseError struct {
	// Token is the offending beat token.
	Token string

	// Pos is the 1-based column of Token in the input line.
	Pos int

	// Msg explains what is wrong with Token.
	Msg string

	// Err is ErrParse, optionally joined with ErrStructural.
	Err error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("swar: column %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("swar: column %d: %q: %s", e.Pos, e.Token, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
