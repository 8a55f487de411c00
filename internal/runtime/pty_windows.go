// SPDX-License-Identifier: MPL-2.0

//go:build windows

package runtime

// Available reports false; the pty runtime is unix only.
func (r *PTYRuntime) Available() bool {
	return false
}

// Execute falls back to the native runtime.
func (r *PTYRuntime) Execute(ctx *ExecutionContext) *Result {
	return NewNativeRuntime().Execute(ctx)
}
