// SPDX-License-Identifier: MPL-2.0

package execute

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to State
		want     bool
	}{
		{StateStart, StateEnvironmentSnapshot, true},
		{StateStart, StateCIDetected, false},
		{StateCIDetected, StateInputsResolved, true},
		{StateCommandBuilt, StateExecuted, true},
		{StateExecuted, StateSucceeded, true},
		{StateExecuted, StateFailed, true},
		{StateInputsResolved, StateFailed, true},
		{StateCommandBuilt, StateSucceeded, false},
		{StateInputsResolved, StateCIDetected, false},
		{StateSucceeded, StateFailed, false},
		{StateFailed, StateStart, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			t.Parallel()

			if got := canTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("canTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRun_AdvanceRejectsSkips(t *testing.T) {
	t.Parallel()

	r := &Run{state: StateStart}
	err := r.advance(StateCommandBuilt)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("advance() error = %v, want ErrInvalidTransition", err)
	}
	if r.State() != StateStart || len(r.Transitions()) != 0 {
		t.Errorf("rejected transition changed the run: state=%q transitions=%v", r.State(), r.Transitions())
	}
}
