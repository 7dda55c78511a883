// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
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

// NewRootCommand builds the hopla command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hopla",
		Short: "Switch your machine between development environments",
		Long: TitleStyle.Render("hopla") + SubtitleStyle.Render(" - Switch your machine between development environments") + `

hopla installs and activates runtime versions through asdf, points npm at the
right registry and logs docker into the right container registry, all from a
named environment in your configuration.

` + SubtitleStyle.Render("Examples:") + `
  hopla switch staging                 Apply the 'staging' environment
  hopla switch dev --node 20.11.1      Apply 'dev' with a Node.js override
  hopla check staging                  Show what is currently configured
  hopla env list                       List configured environments
  hopla doctor                         Check required tools`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/hopla/config.cue)")

	rootCmd.AddCommand(
		newSwitchCommand(app),
		newCheckCommand(app),
		newEnvCommand(app),
		newConfigCommand(app),
		newDoctorCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the hopla command tree with production dependencies.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	if err := execute(context.Background(), rootCmd); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// execute runs rootCmd through fang.
func execute(ctx context.Context, rootCmd *cobra.Command, opts ...fang.Option) error {
	// fang overrides rootCmd.Version, so the version goes through fang.WithVersion.
	opts = append([]fang.Option{
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	}, opts...)
	return fang.Execute(ctx, rootCmd, opts...)
}

// handleError prints errors that were not already reported by failure.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
