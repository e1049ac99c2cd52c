package nfa

import (
	"errors"
	"fmt"
)

// ErrInvalidState indicates a StateID was used that does not belong to the
// Nfa it was passed to.
var ErrInvalidState = errors.New("invalid nfa state")

// ErrNoInitialState indicates an Nfa was used before it had a well-formed
// initial state, which should not happen to any Nfa returned by Build.
var ErrNoInitialState = errors.New("nfa has no initial state")

// StateError wraps ErrInvalidState (or another state-related error) with
// the offending StateID for diagnostics.
type StateError struct {
	Err   error
	State StateID
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state %d: %v", e.State, e.Err)
}

func (e *StateError) Unwrap() error { return e.Err }
