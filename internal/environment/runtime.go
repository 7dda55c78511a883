// SPDX-License-Identifier: MPL-2.0

package environment

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MohamedXi/hopla-cli/internal/issue"
	"github.com/MohamedXi/hopla-cli/internal/shell"
)

// unknownJavaVersionHint is logged after a failed Java install.
const unknownJavaVersionHint = "The specified Java version is not available or unknown. " +
	"Please run the command again with a valid Java version according to the asdf-java plugin documentation."

// runtimePlugin describes one asdf-managed runtime.
type runtimePlugin struct {
	step         StepName
	plugin       string
	label        string
	source       string
	installIssue issue.Id
	installHint  string
}

func (o *Orchestrator) installNode(ctx context.Context, s Settings) error {
	return o.provisionRuntime(ctx, runtimePlugin{
		step:         StepInstallNode,
		plugin:       "nodejs",
		label:        "Node.js",
		source:       o.asdf.NodePluginURL,
		installIssue: issue.RuntimeInstallFailedId,
	}, s.Node)
}

func (o *Orchestrator) installJava(ctx context.Context, s Settings) error {
	return o.provisionRuntime(ctx, runtimePlugin{
		step:         StepInstallJava,
		plugin:       "java",
		label:        "Java",
		source:       o.asdf.JavaPluginURL,
		installIssue: issue.UnknownJavaVersionId,
		installHint:  unknownJavaVersionHint,
	}, s.Java)
}

// provisionRuntime registers the plugin if needed, installs the version, then makes it
// the global default and regenerates the shims.
func (o *Orchestrator) provisionRuntime(ctx context.Context, rt runtimePlugin, version string) error {
	o.log.Info(fmt.Sprintf("Installing %s %s...", rt.label, version))

	if !o.pluginRegistered(ctx, rt.plugin) {
		add := o.asdfCommand("plugin-add", rt.plugin, rt.source)
		if err := o.exec(ctx, rt.step, issue.PluginAddFailedId, add,
			fmt.Sprintf("Failed to add asdf %s plugin", rt.plugin)); err != nil {
			return err
		}
	}

	install := o.asdfCommand("install", rt.plugin, version)
	if err := o.exec(ctx, rt.step, rt.installIssue, install,
		fmt.Sprintf("Failed to install %s %s", rt.label, version)); err != nil {
		if rt.installHint != "" {
			o.log.Error(rt.installHint)
		}
		return err
	}
	o.log.Success(fmt.Sprintf("%s %s installed successfully", rt.label, version))

	o.log.Info(fmt.Sprintf("Switching to %s %s...", rt.label, version))
	global := o.asdfCommand("global", rt.plugin, version)
	if err := o.exec(ctx, rt.step, issue.RuntimeActivateFailedId, global,
		fmt.Sprintf("Failed to switch to %s %s", rt.label, version)); err != nil {
		return err
	}
	reshim := o.asdfCommand("reshim", rt.plugin)
	if err := o.exec(ctx, rt.step, issue.RuntimeActivateFailedId, reshim,
		fmt.Sprintf("Failed to reshim %s %s", rt.label, version)); err != nil {
		return err
	}
	o.log.Success(fmt.Sprintf("%s version switched to %s", rt.label, version))
	return nil
}

// pluginRegistered reports whether asdf lists the plugin. A failing listing counts as absent.
func (o *Orchestrator) pluginRegistered(ctx context.Context, plugin string) bool {
	result := o.runner.Run(ctx, o.asdfCommand("plugin-list"), shell.RunOptions{Silent: true})
	if !result.Success() {
		return false
	}
	for line := range strings.Lines(result.Stdout) {
		if fields := strings.Fields(line); len(fields) > 0 && fields[0] == plugin {
			return true
		}
	}
	return false
}

// asdfCommand invokes the managed asdf binary directly instead of sourcing asdf.sh.
func (o *Orchestrator) asdfCommand(args ...string) shell.Command {
	return shell.NewCommand(filepath.Join(o.asdf.Dir, "bin", "asdf"), args...).
		WithEnv("ASDF_DIR=" + o.asdf.Dir)
}
