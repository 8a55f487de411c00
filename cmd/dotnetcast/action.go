// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/invowk/dotnet-cast/internal/action"
	"github.com/invowk/dotnet-cast/internal/app/execute"
	"github.com/invowk/dotnet-cast/internal/runtime"

	"github.com/spf13/cobra"
)

// newActionCommand creates the subcommand running one toolchain action.
func newActionCommand(app *App, opts *rootOptions, decl action.Declaration) *cobra.Command {
	var (
		envFiles []string
		forceCI  bool
		dryRun   bool
		usePTY   bool
		workDir  string
	)

	actionCmd := &cobra.Command{
		Use:   decl.Kind.String(),
		Short: decl.Description,
		Long:  decl.Description + "\n\n" + SubtitleStyle.Render("Inputs:") + "\n" + inputsHelp(decl),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.config()
			snap := app.Environ()

			out, err := app.Actions.Run(cmd.Context(), execute.Options{
				Kind:       decl.Kind,
				Env:        &snap,
				EnvFiles:   append(slices.Clone(cfg.EnvFiles), envFiles...),
				UpstreamCI: forceCI,
				Program:    cfg.Toolchain.Program,
				PTY:        usePTY || cfg.Toolchain.PTY,
				WorkDir:    workDir,
				DryRun:     dryRun,
				IO:         runtime.IOContext{Stdout: app.stdout, Stderr: app.stderr, Stdin: app.stdin},
				Logger:     opts.actionLogger(),
			})
			if err != nil {
				return err
			}

			if out.DryRun {
				fmt.Fprintln(app.stdout, out.Command.String())
				return nil
			}
			if out.Err != nil {
				return &ExitError{Code: out.ExitCode, Err: out.Err}
			}
			if !out.Succeeded {
				return &ExitError{Code: out.ExitCode}
			}
			return nil
		},
	}

	actionCmd.Flags().StringArrayVar(&envFiles, "env-file", nil, "load environment variables from a dotenv file (repeatable, suffix '?' for optional)")
	actionCmd.Flags().BoolVar(&forceCI, "ci", false, "treat the run as a CI run regardless of the CI variable")
	actionCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the dotnet command without running it")
	actionCmd.Flags().BoolVar(&usePTY, "pty", false, "run dotnet under a pseudo terminal")
	actionCmd.Flags().StringVarP(&workDir, "workdir", "C", "", "working directory for dotnet")

	return actionCmd
}

// inputsHelp lists the environment variables an action reads.
func inputsHelp(decl action.Declaration) string {
	var sb strings.Builder
	for _, in := range decl.Inputs {
		fmt.Fprintf(&sb, "  %s, %s\n      %s\n", CmdStyle.Render(in.Name.CIVar()), CmdStyle.Render(in.Name.PlainVar()), in.Description)
	}
	return sb.String()
}
