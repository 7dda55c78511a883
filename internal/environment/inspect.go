// SPDX-License-Identifier: MPL-2.0

package environment

import (
	"context"
	"strings"

	"github.com/MohamedXi/hopla-cli/internal/shell"
)

// NotLoggedIn is reported when docker info shows no registry.
const NotLoggedIn = "Not logged in"

// Inspect logs what the machine is currently configured as, for every field set in s.
// Queries are read-only and silent. Their exit status is not checked: a failing query
// reports whatever it printed, possibly nothing.
func (o *Orchestrator) Inspect(ctx context.Context, s Settings) {
	if s.Node != "" {
		o.log.Info("Node.js version: " + o.query(ctx, shell.NewCommand("node", "-v")))
	}
	if s.Npm != "" {
		o.log.Info("NPM version: " + o.query(ctx, shell.NewCommand("npm", "-v")))
	}
	if s.NpmRegistry != "" {
		o.log.Info("NPM registry: " + o.query(ctx, shell.NewCommand("npm", "get", "registry")))
	}
	if s.DockerRegistry != "" {
		registry := registryLines(o.query(ctx, shell.NewCommand("docker", "info")))
		if registry == "" {
			registry = NotLoggedIn
		}
		o.log.Info("Docker registry: " + registry)
	}

	o.log.Success("Environment check completed.")
}

func (o *Orchestrator) query(ctx context.Context, cmd shell.Command) string {
	return o.runner.Run(ctx, cmd, shell.RunOptions{Silent: true}).TrimmedStdout()
}

// registryLines keeps the docker info lines that mention a registry.
func registryLines(info string) string {
	var lines []string
	for line := range strings.Lines(info) {
		if strings.Contains(line, "Registry") {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return strings.Join(lines, "; ")
}
