// SPDX-License-Identifier: MPL-2.0

package environment

import "context"

const (
	// StepBootstrapAsdf clones asdf when it is not installed yet. Always runs.
	StepBootstrapAsdf StepName = "bootstrap-asdf"
	// StepSetNpmRegistry points npm at Settings.NpmRegistry.
	StepSetNpmRegistry StepName = "set-npm-registry"
	// StepDockerLogin logs docker into Settings.DockerRegistry.
	StepDockerLogin StepName = "docker-login"
	// StepInstallNode installs and activates Settings.Node.
	StepInstallNode StepName = "install-node"
	// StepInstallJava installs and activates Settings.Java.
	StepInstallJava StepName = "install-java"
	// StepUpdateNpm installs Settings.Npm globally.
	StepUpdateNpm StepName = "update-npm"
)

type (
	// StepName identifies one provisioning step.
	StepName string

	step struct {
		name    StepName
		applies func(Settings) bool
		run     func(context.Context, Settings) error
	}
)

// StepNames returns every step in execution order.
func StepNames() []StepName {
	return []StepName{
		StepBootstrapAsdf,
		StepSetNpmRegistry,
		StepDockerLogin,
		StepInstallNode,
		StepInstallJava,
		StepUpdateNpm,
	}
}

// String returns the step name.
func (n StepName) String() string { return string(n) }

// steps returns the catalog in execution order.
func (o *Orchestrator) steps() []step {
	return []step{
		{name: StepBootstrapAsdf, applies: func(Settings) bool { return true }, run: o.bootstrapAsdf},
		{name: StepSetNpmRegistry, applies: func(s Settings) bool { return s.NpmRegistry != "" }, run: o.setNpmRegistry},
		{name: StepDockerLogin, applies: func(s Settings) bool { return s.DockerRegistry != "" }, run: o.loginDockerRegistry},
		{name: StepInstallNode, applies: func(s Settings) bool { return s.Node != "" }, run: o.installNode},
		{name: StepInstallJava, applies: func(s Settings) bool { return s.Java != "" }, run: o.installJava},
		{name: StepUpdateNpm, applies: func(s Settings) bool { return s.Npm != "" }, run: o.updateNpm},
	}
}

// Plan returns the steps Configure would run for s, in execution order.
func (o *Orchestrator) Plan(s Settings) []StepName {
	var names []StepName
	for _, st := range o.steps() {
		if st.applies(s) {
			names = append(names, st.name)
		}
	}
	return names
}
