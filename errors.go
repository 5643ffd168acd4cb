package automata

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every *ArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingStartState is matched by every *MissingStartStateError.
	ErrMissingStartState = errors.New("start state is not set")

	// ErrNotSupported is matched by every *AmbiguousTransitionError.
	ErrNotSupported = errors.New("operation not supported")

	// ErrUnknownGuard is returned by resolvers that cannot resolve a guard reference.
	ErrUnknownGuard = errors.New("unknown guard reference")
)

// ArgumentError indicates an invalid argument was passed.
type ArgumentError struct {
	ParamName string
	Message   string
}

func (e *ArgumentError) Error() string {
	if e.ParamName != "" {
		return fmt.Sprintf("%s (parameter: %s)", e.Message, e.ParamName)
	}
	return e.Message
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func newArgumentError(param, format string, args ...any) *ArgumentError {
	return &ArgumentError{ParamName: param, Message: fmt.Sprintf(format, args...)}
}

// MissingStartStateError is returned by Consume when no start state is configured.
type MissingStartStateError struct{}

func (e *MissingStartStateError) Error() string {
	return "cannot consume input: the automaton has no start state"
}

// Is reports whether target is ErrMissingStartState.
func (e *MissingStartStateError) Is(target error) bool {
	return target == ErrMissingStartState
}

// AmbiguousTransitionError is returned by a deterministic enumerator when more
// than one leaving transition accepts the same symbol. It signals a modeling
// error in the automaton, not rejected input.
type AmbiguousTransitionError struct {
	State  State
	Symbol any
}

func (e *AmbiguousTransitionError) Error() string {
	return fmt.Sprintf(
		"multiple transitions from state '%v' accept symbol '%v'; the automaton is not deterministic",
		e.State, e.Symbol)
}

// Is reports whether target is ErrNotSupported.
func (e *AmbiguousTransitionError) Is(target error) bool {
	return target == ErrNotSupported
}

// IsAmbiguousTransitionError reports whether err is, or wraps, an *AmbiguousTransitionError.
func IsAmbiguousTransitionError(err error) bool {
	var e *AmbiguousTransitionError
	return errors.As(err, &e)
}
