// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/invowk/dotnet-cast/internal/command"
	"github.com/invowk/dotnet-cast/internal/env"
)

// Runtime type constants for different execution modes.
const (
	RuntimeTypeNative RuntimeType = "native"
	RuntimeTypePTY    RuntimeType = "pty"
)

var (
	// ErrEmptyCommand is returned when a command spec has no program.
	ErrEmptyCommand = errors.New("command has no program to execute")
	// ErrRuntimeNotRegistered is the sentinel error wrapped by RuntimeNotRegisteredError.
	ErrRuntimeNotRegistered = errors.New("runtime not registered")
)

type (
	// IOContext holds the streams of a command execution.
	IOContext struct {
		Stdout io.Writer
		Stderr io.Writer
		Stdin  io.Reader
	}

	// ExecutionContext contains all information needed to execute a command
	ExecutionContext struct {
		// Context is the Go context for cancellation
		Context context.Context
		// Command is the token sequence to run; Command[0] is the program
		Command command.Spec
		// Env is the environment passed to the child process
		Env env.Snapshot
		// WorkDir overrides the working directory when non-empty
		WorkDir string
		// IO holds the output and input streams
		IO IOContext
	}

	// Result contains the result of a command execution
	Result struct {
		// ExitCode is the exit code of the command
		ExitCode ExitCode
		// Error is set when the process could not be spawned or waited on
		Error error
	}

	// Runtime defines the interface for command execution
	Runtime interface {
		// Name returns the runtime name
		Name() string
		// Execute runs a command in this runtime
		Execute(ctx *ExecutionContext) *Result
		// Available returns whether this runtime is available on the current system
		Available() bool
		// Validate checks if a command can be executed with this runtime
		Validate(ctx *ExecutionContext) error
	}

	// RuntimeType identifies the type of runtime.
	//
	//nolint:revive // RuntimeType is more descriptive than Type for external callers
	RuntimeType string

	// RuntimeNotRegisteredError is returned when a Registry has no runtime of the requested type.
	RuntimeNotRegisteredError struct {
		Type RuntimeType
	}

	// Registry holds all available runtimes
	Registry struct {
		runtimes map[RuntimeType]Runtime
	}
)

// NewExecutionContext creates an execution context wired to the process streams.
func NewExecutionContext(ctx context.Context, spec command.Spec, snap env.Snapshot) *ExecutionContext {
	return &ExecutionContext{
		Context: ctx,
		Command: spec,
		Env:     snap,
		IO: IOContext{
			Stdout: os.Stdout,
			Stderr: os.Stderr,
			Stdin:  os.Stdin,
		},
	}
}

// Success returns true if the command executed successfully
func (r *Result) Success() bool {
	return r.ExitCode.IsSuccess() && r.Error == nil
}

// Error implements the error interface.
func (e *RuntimeNotRegisteredError) Error() string {
	return fmt.Sprintf("runtime '%s' not registered", e.Type)
}

// Unwrap returns ErrRuntimeNotRegistered so callers can use errors.Is for programmatic detection.
func (e *RuntimeNotRegisteredError) Unwrap() error { return ErrRuntimeNotRegistered }

// NewRegistry creates a new runtime registry
func NewRegistry() *Registry {
	return &Registry{
		runtimes: make(map[RuntimeType]Runtime),
	}
}

// Register adds a runtime to the registry
func (r *Registry) Register(typ RuntimeType, rt Runtime) {
	r.runtimes[typ] = rt
}

// Get returns a runtime by type
func (r *Registry) Get(typ RuntimeType) (Runtime, error) {
	rt, ok := r.runtimes[typ]
	if !ok {
		return nil, &RuntimeNotRegisteredError{Type: typ}
	}
	return rt, nil
}

// Execute runs a command using the runtime of the given type.
func (r *Registry) Execute(typ RuntimeType, ctx *ExecutionContext) *Result {
	rt, err := r.Get(typ)
	if err != nil {
		return NewErrorResult(1, err)
	}

	if !rt.Available() {
		return NewErrorResult(1, fmt.Errorf("runtime '%s' is not available on this system", rt.Name()))
	}

	if err := rt.Validate(ctx); err != nil {
		return NewErrorResult(1, err)
	}

	return rt.Execute(ctx)
}

// validateCommand is the Validate step shared by every runtime.
func validateCommand(ctx *ExecutionContext) error {
	if ctx == nil || ctx.Command.Program() == "" {
		return ErrEmptyCommand
	}
	return nil
}

// prepareCmd builds the exec.Cmd for ctx without attaching any streams.
func prepareCmd(ctx *ExecutionContext) *exec.Cmd {
	goCtx := ctx.Context
	if goCtx == nil {
		goCtx = context.Background()
	}

	cmd := exec.CommandContext(goCtx, ctx.Command.Program(), ctx.Command.Args()...)
	if ctx.WorkDir != "" {
		cmd.Dir = ctx.WorkDir
	}
	cmd.Env = ctx.Env.Environ()
	return cmd
}
