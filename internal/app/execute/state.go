// SPDX-License-Identifier: MPL-2.0

package execute

import (
	"errors"
	"fmt"
)

// Run states, in the order a run passes through them. A run ends in either
// StateSucceeded or StateFailed, or stays in StateCommandBuilt for a dry run.
const (
	StateStart               State = "start"
	StateEnvironmentSnapshot State = "environment-snapshot"
	StateCIDetected          State = "ci-detected"
	StateInputsResolved      State = "inputs-resolved"
	StateCommandBuilt        State = "command-built"
	StateExecuted            State = "executed"
	StateSucceeded           State = "succeeded"
	StateFailed              State = "failed"
)

// ErrInvalidTransition is the sentinel error wrapped by InvalidTransitionError.
var ErrInvalidTransition = errors.New("invalid state transition")

// successor is the only state each non-terminal state may advance to besides StateFailed.
var successor = map[State]State{
	StateStart:               StateEnvironmentSnapshot,
	StateEnvironmentSnapshot: StateCIDetected,
	StateCIDetected:          StateInputsResolved,
	StateInputsResolved:      StateCommandBuilt,
	StateCommandBuilt:        StateExecuted,
	StateExecuted:            StateSucceeded,
}

type (
	// State is a step of a Run.
	State string

	// Transition records a move between two states.
	Transition struct {
		From State
		To   State
	}

	// InvalidTransitionError is returned when a run tries to skip or revisit a state.
	InvalidTransitionError struct {
		From State
		To   State
	}
)

// IsTerminal reports whether no further transition is possible from s.
func (s State) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// String returns the state name.
func (s State) String() string { return string(s) }

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition %s -> %s", e.From, e.To)
}

// Unwrap returns ErrInvalidTransition for errors.Is() compatibility.
func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// canTransition reports whether from may move to to. Any non-terminal state
// may fail; otherwise only the fixed successor is allowed.
func canTransition(from, to State) bool {
	if from.IsTerminal() {
		return false
	}
	if to == StateFailed {
		return true
	}
	return successor[from] == to
}
