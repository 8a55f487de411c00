// SPDX-License-Identifier: MPL-2.0

// Package runtime spawns the assembled toolchain command and reports its exit status.
//
// Two runtime implementations are available:
//   - native: runs the program with its output wired straight to the caller's writers
//   - pty: runs the program under a pseudo terminal so colored output survives (unix only)
//
// Both implement the Runtime interface with Name(), Execute(), Available(), and Validate().
// A non-zero exit status is reported in Result.ExitCode with a nil Error; Error is
// reserved for failures to spawn the process at all.
package runtime
