package nfa

import (
	"errors"
	"fmt"
)

// ErrMalformedPostfix indicates the postfix program handed to Build was
// not a valid RPN expression: an operator found the fragment stack empty,
// or the stack held anything but exactly one fragment once the program
// was exhausted. This should be unreachable from a postfix program
// produced by package compiler; it is an internal consistency failure,
// not a user error.
var ErrMalformedPostfix = errors.New("malformed postfix program")

// BuildError wraps ErrMalformedPostfix with the index of the postfix
// symbol being processed when the inconsistency was discovered.
type BuildError struct {
	Index int
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: %v at postfix index %d", e.Err, e.Index)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
