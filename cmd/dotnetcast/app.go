// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/invowk/dotnet-cast/internal/app/execute"
	"github.com/invowk/dotnet-cast/internal/config"
	"github.com/invowk/dotnet-cast/internal/env"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: every Cobra handler receives an App and goes through its
	// service interfaces instead of reaching for globals.
	App struct {
		Config  ConfigProvider
		Actions ActionRunner
		Environ func() env.Snapshot
		stdout  io.Writer
		stderr  io.Writer
		stdin   io.Reader
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config  ConfigProvider
		Actions ActionRunner
		// Environ returns the environment actions resolve their inputs from.
		Environ func() env.Snapshot
		Stdout  io.Writer
		Stderr  io.Writer
		Stdin   io.Reader
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// ActionRunner runs one toolchain action.
	ActionRunner interface {
		Run(ctx context.Context, opts execute.Options) (execute.Outcome, error)
	}

	pipelineRunner struct{}
)

// NewApp creates an App, filling nil dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:  deps.Config,
		Actions: deps.Actions,
		Environ: deps.Environ,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
		stdin:   deps.Stdin,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Actions == nil {
		app.Actions = pipelineRunner{}
	}
	if app.Environ == nil {
		app.Environ = env.FromOS
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	return app
}

// Run executes the action pipeline.
func (pipelineRunner) Run(ctx context.Context, opts execute.Options) (execute.Outcome, error) {
	return execute.Execute(ctx, opts)
}
