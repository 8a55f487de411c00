// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"strconv"
)

// ErrSignaled is wrapped into the Result error of a toolchain that was
// killed by a signal and therefore has no exit status of its own.
var ErrSignaled = errors.New("terminated by a signal")

// ExitCodeSignaled is what exec.ExitError reports for a signaled process.
const ExitCodeSignaled ExitCode = -1

// ExitCode is the status a toolchain process exited with. It holds the full
// platform value, so Windows statuses such as 0xC0000005 pass through intact.
type ExitCode int

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// IsSignaled reports whether the process was killed instead of exiting.
func (c ExitCode) IsSignaled() bool { return c == ExitCodeSignaled }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
