// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// newEnvCommand creates the `hopla env` command tree.
func newEnvCommand(app *App) *cobra.Command {
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Inspect configured environments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	envCmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured environments",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listEnvironments(cmd.Context(), app)
		},
	})

	return envCmd
}

func listEnvironments(ctx context.Context, app *App) error {
	s, err := app.newSession(ctx)
	if err != nil {
		return failure(app.stderr, err, app.verbose)
	}

	names := s.cfg.EnvironmentNames()
	if len(names) == 0 {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render("No environments configured. Add one under 'environments' in your config file."))
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtitleStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers("NAME", "NODE", "JAVA", "NPM", "NPM REGISTRY", "DOCKER REGISTRY")

	for _, name := range names {
		env := s.cfg.Environments[name]
		t.Row(name, orDash(env.Node), orDash(env.Java), orDash(env.Npm), orDash(env.NpmRegistry), orDash(env.DockerRegistry))
	}

	fmt.Fprintln(app.stdout, t.Render())
	return nil
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
