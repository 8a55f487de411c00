// SPDX-License-Identifier: MPL-2.0

package runtime

import "errors"

// ErrPTYUnavailable is returned when a pseudo terminal cannot be allocated.
var ErrPTYUnavailable = errors.New("pseudo terminal unavailable")

// PTYRuntime runs the toolchain attached to a pseudo terminal. The toolchain
// then sees a terminal and keeps its colored, progress-style output. Stdout
// and stderr arrive merged on IO.Stdout, in the order the program wrote them.
type PTYRuntime struct {
	// Rows and Cols size the terminal; zero leaves the pty default.
	Rows uint16
	Cols uint16
}

// NewPTYRuntime creates a new pty runtime
func NewPTYRuntime() *PTYRuntime {
	return &PTYRuntime{Rows: 40, Cols: 160}
}

// Name returns the runtime name
func (r *PTYRuntime) Name() string {
	return string(RuntimeTypePTY)
}

// Validate checks if a command can be executed
func (r *PTYRuntime) Validate(ctx *ExecutionContext) error {
	return validateCommand(ctx)
}
