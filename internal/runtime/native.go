// SPDX-License-Identifier: MPL-2.0

package runtime

// NativeRuntime runs the toolchain directly, streaming its output to the
// execution context's writers as it is produced.
type NativeRuntime struct{}

// NewNativeRuntime creates a new native runtime
func NewNativeRuntime() *NativeRuntime {
	return &NativeRuntime{}
}

// Name returns the runtime name
func (r *NativeRuntime) Name() string {
	return string(RuntimeTypeNative)
}

// Available returns whether this runtime is available. A missing program is
// reported by Execute as a spawn failure, not here.
func (r *NativeRuntime) Available() bool {
	return true
}

// Validate checks if a command can be executed
func (r *NativeRuntime) Validate(ctx *ExecutionContext) error {
	return validateCommand(ctx)
}

// Execute runs the command and waits for it to finish.
func (r *NativeRuntime) Execute(ctx *ExecutionContext) *Result {
	if err := validateCommand(ctx); err != nil {
		return NewErrorResult(1, err)
	}

	cmd := prepareCmd(ctx)
	cmd.Stdout = ctx.IO.Stdout
	cmd.Stderr = ctx.IO.Stderr
	cmd.Stdin = ctx.IO.Stdin

	return resultFromWait(ctx.Command.Program(), cmd.Run())
}
