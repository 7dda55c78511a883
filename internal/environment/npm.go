// SPDX-License-Identifier: MPL-2.0

package environment

import (
	"context"
	"fmt"

	"github.com/MohamedXi/hopla-cli/internal/issue"
	"github.com/MohamedXi/hopla-cli/internal/shell"
)

func (o *Orchestrator) setNpmRegistry(ctx context.Context, s Settings) error {
	o.log.Info(fmt.Sprintf("Setting NPM registry to %s...", s.NpmRegistry))
	cmd := shell.NewCommand("npm", "set", "registry", s.NpmRegistry)
	if err := o.exec(ctx, StepSetNpmRegistry, issue.NpmRegistryFailedId, cmd, "Failed to set NPM registry"); err != nil {
		return err
	}
	o.log.Success(fmt.Sprintf("NPM registry set to %s", s.NpmRegistry))
	return nil
}

func (o *Orchestrator) loginDockerRegistry(ctx context.Context, s Settings) error {
	o.log.Info(fmt.Sprintf("Logging into Docker registry %s...", s.DockerRegistry))
	cmd := shell.NewCommand("docker", "login", s.DockerRegistry)
	if err := o.exec(ctx, StepDockerLogin, issue.DockerLoginFailedId, cmd, "Failed to log into Docker registry"); err != nil {
		return err
	}
	o.log.Success(fmt.Sprintf("Docker registry set to %s", s.DockerRegistry))
	return nil
}

func (o *Orchestrator) updateNpm(ctx context.Context, s Settings) error {
	o.log.Info(fmt.Sprintf("Updating NPM to v%s...", s.Npm))
	cmd := shell.NewCommand("npm", "install", "-g", "npm@"+s.Npm)
	if err := o.exec(ctx, StepUpdateNpm, issue.NpmUpdateFailedId, cmd, fmt.Sprintf("Failed to update NPM to v%s", s.Npm)); err != nil {
		return err
	}
	o.log.Success(fmt.Sprintf("NPM updated to v%s", s.Npm))
	return nil
}
