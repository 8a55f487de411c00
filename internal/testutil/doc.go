// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// FakeToolchain stands in for the dotnet executable: it records the arguments
// and environment it was started with and exits with a chosen status.
package testutil
