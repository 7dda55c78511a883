// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/MohamedXi/hopla-cli/internal/config"
	"github.com/MohamedXi/hopla-cli/internal/environment"
)

// inspectAll marks every inspectable field as requested. Inspect only looks at
// whether a field is set, never at its value.
var inspectAll = environment.Settings{
	Node:           "*",
	Npm:            "*",
	NpmRegistry:    "*",
	DockerRegistry: "*",
}

// settingsFlags holds the per-field overrides shared by switch and check.
type settingsFlags struct {
	node           string
	java           string
	npm            string
	npmRegistry    string
	dockerRegistry string
}

func (f *settingsFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.node, "node", "", "Node.js version to install and activate")
	fs.StringVar(&f.java, "java", "", "Java version (asdf-java naming, e.g. temurin-17.0.9+9)")
	fs.StringVar(&f.npm, "npm", "", "npm version to install globally")
	fs.StringVar(&f.npmRegistry, "npm-registry", "", "npm registry URL")
	fs.StringVar(&f.dockerRegistry, "docker-registry", "", "Docker registry host to log into")
}

func (f *settingsFlags) environment() config.Environment {
	return config.Environment{
		Node:           f.node,
		Java:           f.java,
		Npm:            f.npm,
		NpmRegistry:    f.npmRegistry,
		DockerRegistry: f.dockerRegistry,
	}
}

// resolveSettings merges the named environment from cfg with the flag overrides.
// An environment missing from the configuration is only accepted when at least
// one override is given.
func resolveSettings(cfg *config.Config, name string, overrides config.Environment) (environment.Settings, error) {
	env, err := cfg.Environment(name)
	if err != nil && (!errors.Is(err, config.ErrEnvironmentNotFound) || overrides.IsEmpty()) {
		return environment.Settings{}, err
	}

	merged := env.Merge(overrides)
	if err := merged.Validate(); err != nil {
		return environment.Settings{}, err
	}
	return environment.Settings(merged), nil
}
