// SPDX-License-Identifier: MPL-2.0

// Package execute runs one toolchain action end to end: it snapshots the
// environment, decides whether it is running in CI, resolves the action's
// inputs, builds the dotnet command line, and hands it to a runtime.
//
// Each step is a state of a Run. The states advance strictly in order and
// are recorded so callers and tests can see how far a run got.
package execute
