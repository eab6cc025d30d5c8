package nfa

import (
	"errors"
	"fmt"
)

// Compilation errors. Both arrive wrapped in a *CompileError.
var (
	// ErrTooComplex reports a pattern that needs more than
	// CompilerConfig.MaxStates states or a tree deeper than
	// CompilerConfig.MaxRecursionDepth.
	ErrTooComplex = errors.New("pattern too complex")

	// ErrInvalidNode reports a tree the parser never produces: an unknown
	// Op, an alternation without branches, or a {m,n} repetition that was
	// not normalized to ? * +.
	ErrInvalidNode = errors.New("invalid pattern node")
)

// CompileError is returned by Compiler when a pattern tree can't be turned
// into an NFA. Pattern is set when the source text is known.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("NFA compilation failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError reports a Builder misuse: patching a state of the wrong kind,
// an out-of-range ID, or a dangling transition found by Validate.
// StateID is InvalidState when the problem is not tied to one state.
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}
