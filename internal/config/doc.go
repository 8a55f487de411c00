// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/dotnet-cast/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/dotnet-cast/config.cue on macOS, %APPDATA%\dotnet-cast\config.cue
// on Windows), or from an explicit path. The file is validated against an embedded CUE schema
// before it is merged over the defaults. DOTNET_CAST_* environment variables override both,
// e.g. DOTNET_CAST_TOOLCHAIN_PROGRAM.
//
// Configuration tunes the tool itself (which binary to run, terminal handling, logging);
// action inputs never come from here.
package config
