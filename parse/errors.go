// Package parse: sentinel error set, matched with errors.Is.

package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfInput — the input (or a line) ended where a token was
	// still required.
	ErrEndOfInput = errors.New("parse: unexpected end of input")

	// ErrNotANumber — a coefficient, right-hand side or variable index
	// was expected and something else was found.
	ErrNotANumber = errors.New("parse: not a number")

	// ErrUnexpectedRelation — expected one of <=, ==, >=.
	ErrUnexpectedRelation = errors.New("parse: expected <=, == or >=")

	// ErrNoTarget — the input contains no objective line
	// ("z = ... -> max|min").
	ErrNoTarget = errors.New("parse: no objective line")
)

// CompositeError reports a line that matches neither the restriction
// nor the objective grammar, carrying both failed attempts. errors.Is
// sees through to either inner sentinel.
type CompositeError struct {
	Line        string
	Restriction error
	Objective   error
}

func (e *CompositeError) Error() string {
	return fmt.Sprintf("parse: line %q is neither a restriction (%v) nor an objective (%v)",
		e.Line, e.Restriction, e.Objective)
}

// Unwrap exposes both inner errors for errors.Is / errors.As.
func (e *CompositeError) Unwrap() []error {
	return []error{e.Restriction, e.Objective}
}
