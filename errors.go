package thompre

import "fmt"

// CompileError wraps a pattern compilation failure with the pattern that
// triggered it. The underlying cause is always a *compiler.SyntaxError, a
// *compiler.PostfixError or an *nfa.BuildError; Unwrap exposes it for
// errors.As/errors.Is.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("thompre: compile %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
