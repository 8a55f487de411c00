// SPDX-License-Identifier: MPL-2.0

package execute

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os/exec"
	"sync"

	"github.com/invowk/dotnet-cast/internal/action"
	"github.com/invowk/dotnet-cast/internal/ci"
	"github.com/invowk/dotnet-cast/internal/command"
	"github.com/invowk/dotnet-cast/internal/env"
	"github.com/invowk/dotnet-cast/internal/issue"
	"github.com/invowk/dotnet-cast/internal/runtime"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ErrAlreadyExecuted is returned when Execute is called twice on the same Run.
var ErrAlreadyExecuted = errors.New("run already executed")

type (
	// Options configures a Run.
	//
	// Only Kind is required. A nil Env means the process environment.
	Options struct {
		Kind action.Kind
		Env  *env.Snapshot
		// EnvFiles are dotenv files layered over Env, in order. Relative
		// paths resolve against EnvBaseDir.
		EnvFiles   []string
		EnvBaseDir string
		// UpstreamCI is the CI signal supplied by the caller (e.g. --ci).
		UpstreamCI bool
		// Program replaces "dotnet" when non-empty.
		Program string
		PTY     bool
		WorkDir string
		DryRun  bool
		IO      runtime.IOContext
		Logger  *log.Logger
		// Registry defaults to runtime.BuildRegistry().
		Registry *runtime.Registry
	}

	// Outcome is what a Run reports back to its caller.
	// Succeeded is true exactly when ExitCode is zero and Err is nil.
	Outcome struct {
		Command   command.Spec
		ExitCode  runtime.ExitCode
		Succeeded bool
		Err       error
		DryRun    bool
		// RunID identifies the run in log output.
		RunID string
	}

	// Run drives a single action through its states.
	Run struct {
		opts        Options
		id          string
		logger      *log.Logger
		decl        action.Declaration
		mu          sync.Mutex
		state       State
		transitions []Transition
		started     bool

		snap   env.Snapshot
		ci     bool
		vendor ci.Vendor
		inputs action.Inputs
		spec   command.Spec
	}
)

// New validates the options and returns a Run in StateStart.
func New(opts Options) (*Run, error) {
	decl, err := action.Lookup(opts.Kind)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("prepare action").
			WithResource(string(opts.Kind)).
			WithIssue(issue.UnknownActionId).
			WithSuggestion("Run 'dotnet-cast --help' to list the supported actions").
			Wrap(err).
			BuildError()
	}
	if opts.Registry == nil {
		opts.Registry = runtime.BuildRegistry()
	}

	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix(string(opts.Kind)).With("run", id[:8])

	return &Run{
		opts:   opts,
		id:     id,
		logger: logger,
		decl:   decl,
		state:  StateStart,
	}, nil
}

// ID returns the run identifier.
func (r *Run) ID() string { return r.id }

// State returns the current state.
func (r *Run) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Transitions returns the transitions taken so far, oldest first.
func (r *Run) Transitions() []Transition {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Transition, len(r.transitions))
	copy(out, r.transitions)
	return out
}

// Inputs returns the resolved inputs. It is only meaningful once the run
// has reached StateInputsResolved.
func (r *Run) Inputs() action.Inputs { return r.inputs }

// CI returns the CI decision. It is only meaningful once the run has
// reached StateCIDetected.
func (r *Run) CI() bool { return r.ci }

func (r *Run) advance(to State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !canTransition(r.state, to) {
		return &InvalidTransitionError{From: r.state, To: to}
	}
	r.transitions = append(r.transitions, Transition{From: r.state, To: to})
	r.state = to
	return nil
}

// Execute runs the action. The returned Outcome carries the toolchain's exit
// status verbatim; Err is set only when the toolchain could not be run.
func (r *Run) Execute(ctx context.Context) Outcome {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return r.outcome(1, ErrAlreadyExecuted)
	}
	r.started = true
	r.mu.Unlock()

	if err := r.snapshotEnvironment(); err != nil {
		return r.fail(1, err)
	}
	r.mustAdvance(StateEnvironmentSnapshot)

	r.detectCI()
	r.mustAdvance(StateCIDetected)

	r.inputs = action.Resolve(r.decl, r.snap, r.ci)
	for _, name := range r.inputs.Names() {
		v, _ := r.inputs.Value(name)
		if v.IsBool {
			r.logger.Debug("input resolved", "name", name, "value", v.Bool, "source", v.Source)
		} else {
			r.logger.Debug("input resolved", "name", name, "value", v.Str, "source", v.Source)
		}
	}
	r.mustAdvance(StateInputsResolved)

	program := r.opts.Program
	if program == "" {
		program = command.DefaultProgram
	}
	r.spec = command.BuildWith(program, r.opts.Kind, r.inputs)
	r.mustAdvance(StateCommandBuilt)

	if r.opts.DryRun {
		r.logger.Info("Dry run: "+r.spec.String(), r.decisionFields()...)
		out := r.outcome(0, nil)
		out.DryRun = true
		return out
	}

	r.logger.Info("Running: "+r.spec.String(), r.decisionFields()...)
	res := r.spawn(ctx)
	r.mustAdvance(StateExecuted)

	if res.Error != nil {
		return r.fail(res.ExitCode, classifySpawnError(r.spec.Program(), res.Error))
	}
	if !res.ExitCode.IsSuccess() {
		r.logger.Debug("toolchain exited", "code", res.ExitCode)
		r.mustAdvance(StateFailed)
		return r.outcome(res.ExitCode, nil)
	}
	r.mustAdvance(StateSucceeded)
	return r.outcome(0, nil)
}

func (r *Run) snapshotEnvironment() error {
	snap := env.FromOS()
	if r.opts.Env != nil {
		snap = *r.opts.Env
	}
	if len(r.opts.EnvFiles) > 0 {
		layered, err := snap.WithDotenv(r.opts.EnvBaseDir, r.opts.EnvFiles...)
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("load environment files").
				WithIssue(issue.EnvFileLoadFailedId).
				WithSuggestion("Check the --env-file paths and the env_files config key").
				WithSuggestion("Append '?' to a path to make the file optional").
				Wrap(err).
				BuildError()
		}
		snap = layered
	}
	r.snap = snap
	r.logger.Debug("environment captured", "vars", snap.Len(), "env_files", len(r.opts.EnvFiles))
	return nil
}

func (r *Run) detectCI() {
	r.ci = ci.Detect(r.snap, r.opts.UpstreamCI)
	r.vendor, _ = ci.DetectVendor(r.snap)
	indicator, _ := r.snap.LookupRaw(ci.IndicatorVar)
	r.logger.Debug("ci detection",
		"ci", r.ci,
		"upstream", r.opts.UpstreamCI,
		"vendor", r.vendor,
		ci.IndicatorVar, indicator,
	)
}

// decisionFields are the key/value pairs attached to the command line log.
func (r *Run) decisionFields() []any {
	fields := []any{"ci", r.ci, "upstream", r.opts.UpstreamCI}
	if r.vendor != ci.VendorNone {
		fields = append(fields, "vendor", r.vendor)
	}
	return fields
}

func (r *Run) spawn(ctx context.Context) *runtime.Result {
	ectx := runtime.NewExecutionContext(ctx, r.spec, r.snap)
	ectx.WorkDir = r.opts.WorkDir
	if r.opts.IO.Stdout != nil {
		ectx.IO.Stdout = r.opts.IO.Stdout
	}
	if r.opts.IO.Stderr != nil {
		ectx.IO.Stderr = r.opts.IO.Stderr
	}
	if r.opts.IO.Stdin != nil {
		ectx.IO.Stdin = r.opts.IO.Stdin
	}

	typ := r.opts.Registry.SelectType(r.opts.PTY)
	if r.opts.PTY && typ != runtime.RuntimeTypePTY {
		r.logger.Warn("pseudo terminal not supported here, running without one")
	}
	res := r.opts.Registry.Execute(typ, ectx)
	if typ == runtime.RuntimeTypePTY && errors.Is(res.Error, runtime.ErrPTYUnavailable) {
		// Nothing was spawned yet.
		r.logger.Warn("pseudo terminal unavailable, running without one", "err", res.Error)
		res = r.opts.Registry.Execute(runtime.RuntimeTypeNative, ectx)
	}
	return res
}

func (r *Run) mustAdvance(to State) {
	if err := r.advance(to); err != nil {
		// Execute only moves forward, so this is a programming error.
		panic(err)
	}
}

func (r *Run) fail(code runtime.ExitCode, err error) Outcome {
	r.mustAdvance(StateFailed)
	return r.outcome(code, err)
}

func (r *Run) outcome(code runtime.ExitCode, err error) Outcome {
	return Outcome{
		Command:   r.spec,
		ExitCode:  code,
		Succeeded: code.IsSuccess() && err == nil,
		Err:       err,
		RunID:     r.id,
	}
}

// classifySpawnError attaches a catalog issue and suggestions to a failure
// to start the toolchain, or to a toolchain killed by a signal.
func classifySpawnError(program string, err error) error {
	ec := issue.NewErrorContext().
		WithOperation("run " + program).
		Wrap(err)

	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		ec.WithIssue(issue.ToolchainNotFoundId).
			WithSuggestion("Install the .NET SDK and make sure '" + program + "' is on PATH").
			WithSuggestion("Set toolchain.program in the config file to the full path of the executable")
	case errors.Is(err, fs.ErrPermission):
		ec.WithIssue(issue.PermissionDeniedId).
			WithSuggestion("Check that '" + program + "' is executable by the current user")
	case errors.Is(err, runtime.ErrSignaled):
		ec.WithOperation("wait for " + program).
			WithIssue(issue.ToolchainSignaledId).
			WithSuggestion("Check whether the process was killed for running out of memory or time")
	default:
		ec.WithIssue(issue.ToolchainStartFailedId).
			WithSuggestion("Run with --verbose for more detail")
	}
	return ec.BuildError()
}

// Execute is a convenience wrapper that creates a Run and executes it.
func Execute(ctx context.Context, opts Options) (Outcome, error) {
	run, err := New(opts)
	if err != nil {
		return Outcome{ExitCode: 1, Err: err}, err
	}
	return run.Execute(ctx), nil
}
