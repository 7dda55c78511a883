// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MohamedXi/hopla-cli/internal/prerequisites"
)

// newDoctorCommand creates the `hopla doctor` command.
func newDoctorCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the tools hopla drives are installed",
		Long: `Check that the tools hopla drives are installed.

git is required to bootstrap asdf. npm and docker are only needed by the
environments that configure a registry or an npm version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.Context(), app)
		},
	}
}

func runDoctor(ctx context.Context, app *App) error {
	s, err := app.newSession(ctx)
	if err != nil {
		return failure(app.stderr, err, app.verbose)
	}

	var opts []prerequisites.Option
	if app.LookPath != nil {
		opts = append(opts, prerequisites.WithLookPath(app.LookPath))
	}
	results := prerequisites.NewChecker(s.runner, opts...).Check(ctx, prerequisites.DefaultTools())

	fmt.Fprintln(app.stdout, TitleStyle.Render("Prerequisites"))
	for _, r := range results.Results {
		switch {
		case r.Found:
			detail := r.Path
			if r.Version != "" {
				detail = r.Version + ", " + r.Path
			}
			fmt.Fprintf(app.stdout, "  %s %s %s\n", okGlyph, CmdStyle.Render(r.Tool.Name), VerboseStyle.Render("("+detail+")"))
		case r.Tool.Required:
			fmt.Fprintf(app.stdout, "  %s %s %s\n", failGlyph, CmdStyle.Render(r.Tool.Name), ErrorStyle.Render("missing (required)"))
			fmt.Fprintf(app.stdout, "      %s: %s\n", r.Tool.Description, r.Tool.InstallURL)
		default:
			fmt.Fprintf(app.stdout, "  %s %s %s\n", optionalGlyph, CmdStyle.Render(r.Tool.Name), WarningStyle.Render("missing (optional)"))
			fmt.Fprintf(app.stdout, "      %s: %s\n", r.Tool.Description, r.Tool.InstallURL)
		}
	}

	if err := results.Err(); err != nil {
		return failure(app.stderr, err, s.verbose)
	}
	return nil
}
