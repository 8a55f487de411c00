// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/invowk/dotnet-cast/internal/action"
	"github.com/invowk/dotnet-cast/internal/config"
	"github.com/invowk/dotnet-cast/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootOptions is the state shared by every subcommand of one invocation.
type rootOptions struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand builds the dotnet-cast command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd, _ := newRootCommand(app)
	return rootCmd
}

func newRootCommand(app *App) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "dotnet-cast",
		Short: "Run dotnet build, clean, publish, test and pack from environment inputs",
		Long: TitleStyle.Render("dotnet-cast") + SubtitleStyle.Render(" - dotnet actions driven by environment variables") + `

Each action reads its inputs from INPUT_<NAME> or <NAME> environment
variables, picks CI-aware defaults for anything unset, and runs a single
dotnet command whose exit status becomes its own.

` + SubtitleStyle.Render("Examples:") + `
  dotnet-cast build                      Debug build of the current directory
  CI=true dotnet-cast test               Release test run without restore
  INPUT_OUTPUT=dist dotnet-cast publish  Publish into ./dist
  dotnet-cast build --dry-run            Print the command without running it
  dotnet-cast describe publish           List the inputs of an action`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.load(cmd.Context(), app)
			return nil
		},
	}

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetIn(app.stdin)

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/dotnet-cast/config.cue)")

	for _, kind := range action.Kinds() {
		decl, err := action.Lookup(kind)
		if err != nil {
			continue
		}
		rootCmd.AddCommand(newActionCommand(app, opts, decl))
	}
	rootCmd.AddCommand(newDescribeCommand(app, opts))
	rootCmd.AddCommand(newConfigCommand(app, opts))

	return rootCmd, opts
}

// load reads the configuration and sets up logging. A broken config file is
// reported as a warning and the defaults are used instead.
func (o *rootOptions) load(ctx context.Context, app *App) {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: o.configPath})
	if err != nil {
		fmt.Fprintln(app.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, o.verbose))
		cfg = config.DefaultConfig()
	}
	o.cfg = cfg

	if !o.verbose {
		o.verbose = cfg.UI.Verbose
	}

	o.logger = log.NewWithOptions(app.stderr, log.Options{Prefix: "dotnet-cast"})
	if o.verbose {
		o.logger.SetLevel(log.DebugLevel)
	}
	if profile, ok := colorProfile(cfg.UI.Color); ok {
		o.logger.SetColorProfile(profile)
		lipgloss.SetColorProfile(profile)
	}
}

// config returns the loaded configuration, or the defaults before load ran.
func (o *rootOptions) config() *config.Config {
	if o.cfg == nil {
		return config.DefaultConfig()
	}
	return o.cfg
}

func (o *rootOptions) actionLogger() *log.Logger {
	if o.logger == nil {
		return log.New(io.Discard)
	}
	return o.logger
}

// markdownStyle picks the glamour style for output written to w.
func (o *rootOptions) markdownStyle(w io.Writer) string {
	switch o.config().UI.Color {
	case config.ColorNever:
		return "notty"
	case config.ColorAlways:
		return "dark"
	default:
		if termenv.NewOutput(w).EnvColorProfile() == termenv.Ascii {
			return "notty"
		}
		return "dark"
	}
}

// handleError prints the error returned by a command. Toolchain failures have
// already been reported by the toolchain itself and are not repeated.
func (o *rootOptions) handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		fang.DefaultErrorHandler(w, styles, err)
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+ae.Format(o.verbose))
	if !o.verbose {
		return
	}
	if known := issue.Get(ae.IssueID); known != nil {
		if rendered, renderErr := known.Render(o.markdownStyle(w)); renderErr == nil {
			fmt.Fprint(w, rendered)
		}
	}
}

func colorProfile(mode config.ColorMode) (termenv.Profile, bool) {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii, true
	case config.ColorAlways:
		return termenv.TrueColor, true
	default:
		return termenv.Ascii, false
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the CLI and exits the process with the action's status.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd, opts := newRootCommand(app)

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(opts.handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) && exitErr.Code != 0 {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}
