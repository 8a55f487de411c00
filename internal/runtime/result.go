// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"errors"
	"fmt"
	"os/exec"
)

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than infrastructure failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}

// resultFromWait maps the error of cmd.Run or cmd.Wait to a Result.
// A process that ran and exited non-zero is not an error; its status is
// returned verbatim whatever its width. A failure to start, or a kill by a
// signal, is reported as exit code 1 with the cause attached.
func resultFromWait(program string, err error) *Result {
	if err == nil {
		return NewSuccessResult()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitResult(program, ExitCode(exitErr.ExitCode()), err)
	}

	return NewErrorResult(1, fmt.Errorf("failed to execute %s: %w", program, err))
}

func exitResult(program string, code ExitCode, cause error) *Result {
	if code.IsSignaled() {
		return NewErrorResult(1, fmt.Errorf("%s %w: %w", program, ErrSignaled, cause))
	}
	return NewExitCodeResult(code)
}
