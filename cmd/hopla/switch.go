// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MohamedXi/hopla-cli/internal/environment"
)

type switchParams struct {
	name      string
	overrides settingsFlags
	dryRun    bool
}

// newSwitchCommand creates the `hopla switch` command.
func newSwitchCommand(app *App) *cobra.Command {
	var p switchParams

	cmd := &cobra.Command{
		Use:   "switch <environment>",
		Short: "Configure the machine for an environment",
		Long: `Configure the machine for an environment.

Steps run in a fixed order and stop at the first failure:
  ` + stepList() + `

Only bootstrap-asdf always runs; every other step runs when its setting is
present in the environment or given as a flag. Flags override the values
from the configuration file.`,
		Example: `  # Apply a configured environment
  hopla switch staging

  # Ad-hoc environment from flags only
  hopla switch local --node 20.11.1 --npm 10.2.4

  # Show the steps without running them
  hopla switch staging --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.name = args[0]
			return runSwitch(cmd.Context(), app, p)
		},
	}

	p.overrides.register(cmd.Flags())
	cmd.Flags().BoolVar(&p.dryRun, "dry-run", false, "print the steps that would run and exit")

	return cmd
}

func runSwitch(ctx context.Context, app *App, p switchParams) error {
	s, err := app.newSession(ctx)
	if err != nil {
		return failure(app.stderr, err, app.verbose)
	}

	settings, err := resolveSettings(s.cfg, p.name, p.overrides.environment())
	if err != nil {
		return failure(app.stderr, err, s.verbose)
	}

	orch, err := app.orchestrator(s)
	if err != nil {
		return failure(app.stderr, err, s.verbose)
	}

	if p.dryRun {
		printPlan(app, p.name, orch, settings)
		return nil
	}

	if err := orch.Configure(ctx, p.name, settings); err != nil {
		return failure(app.stderr, err, s.verbose)
	}
	return nil
}

// printPlan lists the steps Configure would run, with the value each one applies.
func printPlan(app *App, name string, orch *environment.Orchestrator, settings environment.Settings) {
	fmt.Fprintln(app.stdout, TitleStyle.Render("Plan for "+name))
	for i, step := range orch.Plan(settings) {
		fmt.Fprintf(app.stdout, "  %d. %s %s\n", i+1, CmdStyle.Render(step.String()),
			VerboseStyle.Render(stepTarget(step, settings, orch.Asdf())))
	}
}

func stepList() string {
	names := environment.StepNames()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name.String()
	}
	return strings.Join(parts, ", ")
}

func stepTarget(step environment.StepName, s environment.Settings, asdf environment.AsdfSettings) string {
	switch step {
	case environment.StepBootstrapAsdf:
		return fmt.Sprintf("(%s %s in %s)", asdf.Repository, asdf.Version, asdf.Dir)
	case environment.StepSetNpmRegistry:
		return "(" + s.NpmRegistry + ")"
	case environment.StepDockerLogin:
		return "(" + s.DockerRegistry + ")"
	case environment.StepInstallNode:
		return "(nodejs " + s.Node + ")"
	case environment.StepInstallJava:
		return "(java " + s.Java + ")"
	case environment.StepUpdateNpm:
		return "(npm@" + s.Npm + ")"
	default:
		return ""
	}
}
