// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MohamedXi/hopla-cli/internal/environment"
)

type checkParams struct {
	name      string
	overrides settingsFlags
}

// newCheckCommand creates the `hopla check` command.
func newCheckCommand(app *App) *cobra.Command {
	var p checkParams

	cmd := &cobra.Command{
		Use:   "check [environment]",
		Short: "Show the tool versions and registries currently configured",
		Long: `Show the tool versions and registries currently configured.

With an environment or flags, only the fields they set are checked. Without
either, Node.js, npm, the npm registry and the docker registry are all shown.
Checks are read-only and never fail the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				p.name = args[0]
			}
			return runCheck(cmd.Context(), app, p)
		},
	}

	p.overrides.register(cmd.Flags())

	return cmd
}

func runCheck(ctx context.Context, app *App, p checkParams) error {
	s, err := app.newSession(ctx)
	if err != nil {
		return failure(app.stderr, err, app.verbose)
	}

	overrides := p.overrides.environment()
	settings := environment.Settings(overrides)
	switch {
	case p.name != "":
		settings, err = resolveSettings(s.cfg, p.name, overrides)
		if err != nil {
			return failure(app.stderr, err, s.verbose)
		}
	case overrides.IsEmpty():
		settings = inspectAll
	}

	orch, err := app.orchestrator(s)
	if err != nil {
		return failure(app.stderr, err, s.verbose)
	}
	orch.Inspect(ctx, settings)
	return nil
}
