// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package runtime

import (
	"errors"
	"fmt"
	"io"
	"syscall"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"
)

// outputDrainTimeout bounds how long output is forwarded after the program exits.
const outputDrainTimeout = 2 * time.Second

// Available reports true; unix hosts provide pseudo terminals.
func (r *PTYRuntime) Available() bool {
	return true
}

// Execute runs the command under a pseudo terminal and waits for it to finish.
func (r *PTYRuntime) Execute(ctx *ExecutionContext) *Result {
	if err := validateCommand(ctx); err != nil {
		return NewErrorResult(1, err)
	}

	ptmx, tty, err := pty.Open()
	if err != nil {
		return NewErrorResult(1, fmt.Errorf("%w: %w", ErrPTYUnavailable, err))
	}
	defer func() { _ = ptmx.Close() }()

	if r.Rows > 0 && r.Cols > 0 {
		_ = pty.Setsize(ptmx, &pty.Winsize{Rows: r.Rows, Cols: r.Cols})
	}

	cmd := prepareCmd(ctx)
	cmd.Stdin = tty
	cmd.Stdout = tty
	cmd.Stderr = tty
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}

	startErr := cmd.Start()
	// The child holds its own copy of the terminal side.
	_ = tty.Close()
	if startErr != nil {
		return resultFromWait(ctx.Command.Program(), startErr)
	}

	var g errgroup.Group
	g.Go(func() error {
		_, copyErr := io.Copy(ctx.IO.Stdout, ptmx)
		// Linux reports EIO on the master once the child side is gone.
		if errors.Is(copyErr, syscall.EIO) {
			return nil
		}
		return copyErr
	})

	result := resultFromWait(ctx.Command.Program(), cmd.Wait())

	// Background processes started by the toolchain (build servers) may keep
	// the terminal open after it exits, so draining is bounded.
	drained := make(chan error, 1)
	go func() { drained <- g.Wait() }()
	select {
	case copyErr := <-drained:
		if copyErr != nil && result.Error == nil {
			result.Error = fmt.Errorf("failed to forward output of %s: %w", ctx.Command.Program(), copyErr)
		}
	case <-time.After(outputDrainTimeout):
	}
	return result
}
