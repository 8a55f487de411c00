// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorAuto colors output only when writing to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces colored output.
	ColorAlways ColorMode = "always"
	// ColorNever disables colored output.
	ColorNever ColorMode = "never"

	// DefaultProgram is the toolchain executable used when none is configured.
	DefaultProgram = "dotnet"
)

var (
	// ErrInvalidColorMode is returned when a ColorMode value is not recognized.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrInvalidProgram is returned when the configured program is whitespace-only.
	ErrInvalidProgram = errors.New("invalid toolchain program")
)

type (
	// ColorMode controls colored output.
	ColorMode string

	// InvalidColorModeError is returned when a ColorMode value is not recognized.
	// It wraps ErrInvalidColorMode for errors.Is() compatibility.
	InvalidColorModeError struct {
		Value ColorMode
	}

	// ToolchainConfig configures the external toolchain invocation.
	ToolchainConfig struct {
		// Program is the executable to run.
		Program string `json:"program" mapstructure:"program"`
		// PTY runs the program under a pseudo terminal.
		PTY bool `json:"pty" mapstructure:"pty"`
	}

	// UIConfig configures terminal output.
	UIConfig struct {
		// Verbose enables debug logging.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Color controls colored output.
		Color ColorMode `json:"color" mapstructure:"color"`
	}

	// Config is the application configuration.
	Config struct {
		// Toolchain configures the dotnet invocation.
		Toolchain ToolchainConfig `json:"toolchain" mapstructure:"toolchain"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// EnvFiles are dotenv files applied before any --env-file flag.
		EnvFiles []string `json:"env_files" mapstructure:"env_files"`
	}
)

// Error implements the error interface.
func (e *InvalidColorModeError) Error() string {
	return fmt.Sprintf("invalid color mode %q (valid: auto, always, never)", e.Value)
}

// Unwrap returns ErrInvalidColorMode so callers can use errors.Is for programmatic detection.
func (e *InvalidColorModeError) Unwrap() error { return ErrInvalidColorMode }

// IsValid returns whether the ColorMode is recognized,
// and a list of validation errors if it is not.
func (m ColorMode) IsValid() (bool, []error) {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true, nil
	default:
		return false, []error{&InvalidColorModeError{Value: m}}
	}
}

// String returns the string representation of the ColorMode.
func (m ColorMode) String() string { return string(m) }

// Validate checks the fields CUE cannot check once environment overrides
// have been applied.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Toolchain.Program) == "" {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidProgram, c.Toolchain.Program))
	}
	if isValid, fieldErrs := c.UI.Color.IsValid(); !isValid {
		errs = append(errs, fieldErrs...)
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Toolchain: ToolchainConfig{
			Program: DefaultProgram,
			PTY:     false,
		},
		UI: UIConfig{
			Verbose: false,
			Color:   ColorAuto,
		},
		EnvFiles: []string{},
	}
}
