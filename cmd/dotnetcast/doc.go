// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for dotnet-cast.
//
// Each toolchain action (build, clean, publish, test, pack) is a subcommand
// generated from its declaration. The remaining commands describe actions and
// manage the configuration file.
package cmd
