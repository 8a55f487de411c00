// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/invowk/dotnet-cast/internal/config"
	"github.com/invowk/dotnet-cast/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `dotnet-cast config` command tree.
func newConfigCommand(app *App, opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dotnet-cast configuration",
		Long: `Manage dotnet-cast configuration.

Configuration is stored in:
  - Linux: ~/.config/dotnet-cast/config.cue
  - macOS: ~/Library/Application Support/dotnet-cast/config.cue
  - Windows: %APPDATA%\dotnet-cast\config.cue

Every key can be overridden with a ` + config.EnvPrefix + `_<KEY> environment
variable, e.g. ` + config.EnvPrefix + `_TOOLCHAIN_PROGRAM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var asCUE bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: opts.configPath})
			if err != nil {
				if rendered, renderErr := issue.Get(issue.ConfigLoadFailedId).Render(opts.markdownStyle(app.stderr)); renderErr == nil {
					fmt.Fprint(app.stderr, rendered)
				}
				return err
			}
			if asCUE {
				fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
				return nil
			}
			showConfig(app, opts, cfg)
			return nil
		},
	}
	showCmd.Flags().BoolVar(&asCUE, "cue", false, "print the effective configuration as CUE")
	cfgCmd.AddCommand(showCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := config.CreateDefaultConfig()
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			if created {
				fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			} else {
				fmt.Fprintf(app.stdout, "Configuration already exists at %s\n", path)
			}
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	return cfgCmd
}

func showConfig(app *App, opts *rootOptions, cfg *config.Config) {
	w := app.stdout
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	path, err := configFilePath(opts)
	if err == nil && fileExists(path) {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s:\n", keyStyle.Render("toolchain"))
	fmt.Fprintf(w, "  program: %s\n", valueStyle.Render(cfg.Toolchain.Program))
	fmt.Fprintf(w, "  pty: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.Toolchain.PTY)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(w, "  color: %s\n", valueStyle.Render(cfg.UI.Color.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:", keyStyle.Render("env_files"))
	if len(cfg.EnvFiles) == 0 {
		fmt.Fprintf(w, " %s\n", SubtitleStyle.Render("(none configured)"))
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  - %s\n", strings.Join(cfg.EnvFiles, "\n  - "))
}

// configFilePath returns the file configuration is read from.
func configFilePath(opts *rootOptions) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.FilePath()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
