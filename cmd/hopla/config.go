// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MohamedXi/hopla-cli/internal/config"
)

// newConfigCommand creates the `hopla config` command tree.
// Subcommands that read configuration use the App's config provider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hopla configuration",
		Long: `Manage hopla configuration.

Configuration is stored in:
  - Linux: ~/.config/hopla/config.cue
  - macOS: ~/Library/Application Support/hopla/config.cue
  - Windows: %APPDATA%\hopla\config.cue

A config.cue in the current directory is used when none exists there.
Any key can be overridden with a HOPLA_ environment variable
(e.g., HOPLA_ASDF_VERSION=v0.14.0).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpConfig(cmd.Context(), app, config.Format(format))
		},
	}
	dumpCmd.Flags().StringVarP(&format, "format", "f", string(config.FormatCUE), "output format: cue, toml or yaml")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, path, err := app.Config.LoadWithPath(ctx, config.LoadOptions{ConfigFilePath: app.configPath})
	if err != nil {
		return failure(app.stderr, err, app.verbose)
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if path != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s:\n", keyStyle.Render("asdf"))
	fmt.Fprintf(w, "  dir: %s\n", valueStyle.Render(cfg.Asdf.Dir))
	fmt.Fprintf(w, "  repository: %s\n", valueStyle.Render(cfg.Asdf.Repository))
	fmt.Fprintf(w, "  version: %s\n", valueStyle.Render(cfg.Asdf.Version))
	fmt.Fprintf(w, "  shell_rc: %s\n", valueStyle.Render(cfg.Asdf.ShellRC))
	fmt.Fprintf(w, "  plugins.nodejs: %s\n", valueStyle.Render(cfg.Asdf.Plugins.NodeJS))
	fmt.Fprintf(w, "  plugins.java: %s\n", valueStyle.Render(cfg.Asdf.Plugins.Java))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(w, "  timestamps: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Timestamps)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("environments"))
	names := cfg.EnvironmentNames()
	if len(names) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(none configured)"))
	}
	for _, name := range names {
		fmt.Fprintf(w, "  - %s\n", valueStyle.Render(name))
	}

	return nil
}

func initConfig(app *App) error {
	dir := ""
	if app.configPath != "" {
		dir = filepath.Dir(app.configPath)
	}

	path, created, err := config.CreateDefaultConfig(dir)
	if err != nil {
		return failure(app.stderr, fmt.Errorf("failed to create config: %w", err), app.verbose)
	}

	if !created {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", okGlyph, path)
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return failure(app.stderr, err, app.verbose)
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	if app.configPath != "" {
		fmt.Fprintf(app.stdout, "Override (--config): %s\n", app.configPath)
	}
	return nil
}

func dumpConfig(ctx context.Context, app *App, format config.Format) error {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: app.configPath})
	if err != nil {
		return failure(app.stderr, err, app.verbose)
	}

	out, err := config.Encode(cfg, format)
	if err != nil {
		return failure(app.stderr, err, app.verbose)
	}
	fmt.Fprint(app.stdout, out)
	return nil
}
