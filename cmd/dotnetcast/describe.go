// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/invowk/dotnet-cast/internal/action"
	"github.com/invowk/dotnet-cast/internal/config"
	"github.com/invowk/dotnet-cast/internal/issue"

	"github.com/spf13/cobra"
)

const (
	describeFormatMarkdown = "markdown"
	describeFormatYAML     = "yaml"
)

// newDescribeCommand creates the `dotnet-cast describe` command.
func newDescribeCommand(app *App, opts *rootOptions) *cobra.Command {
	var format string

	validArgs := make([]string, 0, len(action.Kinds()))
	for _, k := range action.Kinds() {
		validArgs = append(validArgs, k.String())
	}

	describeCmd := &cobra.Command{
		Use:   "describe <action>",
		Short: "Describe the inputs of an action",
		Long: `Describe the inputs of an action.

The markdown format lists every input with its environment variables and
defaults. The yaml format prints a task manifest for the action.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := action.ParseKind(args[0])
			if err != nil {
				return issue.NewErrorContext().
					WithOperation("describe action").
					WithResource(args[0]).
					WithIssue(issue.UnknownActionId).
					WithSuggestion("Valid actions: " + fmt.Sprint(validArgs)).
					Wrap(err).
					BuildError()
			}
			decl, err := action.Lookup(kind)
			if err != nil {
				return err
			}

			switch format {
			case describeFormatMarkdown:
				rendered, err := action.RenderMarkdown(decl, opts.markdownStyle(app.stdout))
				if err != nil {
					return err
				}
				fmt.Fprint(app.stdout, rendered)
			case describeFormatYAML:
				data, err := action.NewManifest(decl, config.AppName).YAML()
				if err != nil {
					return err
				}
				_, _ = app.stdout.Write(data)
			default:
				return fmt.Errorf("unsupported format %q (valid: %s, %s)", format, describeFormatMarkdown, describeFormatYAML)
			}
			return nil
		},
	}

	describeCmd.Flags().StringVar(&format, "format", describeFormatMarkdown, "output format: markdown or yaml")

	return describeCmd
}
