// SPDX-License-Identifier: MPL-2.0

package environment

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/MohamedXi/hopla-cli/internal/issue"
	"github.com/MohamedXi/hopla-cli/internal/logger"
	"github.com/MohamedXi/hopla-cli/internal/shell"
)

const (
	// DefaultAsdfRepository is the git repository asdf is cloned from.
	DefaultAsdfRepository = "https://github.com/asdf-vm/asdf.git"
	// DefaultAsdfVersion is the asdf release branch checked out on bootstrap.
	DefaultAsdfVersion = "v0.10.2"
	// DefaultNodePluginURL is the asdf-nodejs plugin repository.
	DefaultNodePluginURL = "https://github.com/asdf-vm/asdf-nodejs.git"
	// DefaultJavaPluginURL is the asdf-java plugin repository.
	DefaultJavaPluginURL = "https://github.com/halcyon/asdf-java.git"
)

type (
	// AsdfSettings locates and pins the asdf installation the orchestrator manages.
	AsdfSettings struct {
		// Dir is the absolute asdf installation directory.
		Dir string
		// Repository is the git URL asdf is cloned from.
		Repository string
		// Version is the branch or tag checked out on clone.
		Version string
		// NodePluginURL is the source of the nodejs plugin.
		NodePluginURL string
		// JavaPluginURL is the source of the java plugin.
		JavaPluginURL string
	}

	// Orchestrator applies Settings to the current machine through a shell.Runner.
	// It holds no state between runs.
	Orchestrator struct {
		runner  shell.Runner
		log     logger.Logger
		fs      afero.Fs
		asdf    AsdfSettings
		shellRC string
	}

	// Option configures an Orchestrator.
	Option func(*Orchestrator)
)

// DefaultAsdfSettings returns the asdf settings rooted at $HOME/.asdf.
func DefaultAsdfSettings() AsdfSettings {
	return AsdfSettings{
		Dir:           filepath.Join(homeDir(), ".asdf"),
		Repository:    DefaultAsdfRepository,
		Version:       DefaultAsdfVersion,
		NodePluginURL: DefaultNodePluginURL,
		JavaPluginURL: DefaultJavaPluginURL,
	}
}

// WithAsdf overrides the asdf settings. Empty fields keep their defaults.
func WithAsdf(a AsdfSettings) Option {
	return func(o *Orchestrator) {
		if a.Dir != "" {
			o.asdf.Dir = a.Dir
		}
		if a.Repository != "" {
			o.asdf.Repository = a.Repository
		}
		if a.Version != "" {
			o.asdf.Version = a.Version
		}
		if a.NodePluginURL != "" {
			o.asdf.NodePluginURL = a.NodePluginURL
		}
		if a.JavaPluginURL != "" {
			o.asdf.JavaPluginURL = a.JavaPluginURL
		}
	}
}

// WithFs sets the filesystem used for the asdf directory check and the rc update.
func WithFs(fs afero.Fs) Option {
	return func(o *Orchestrator) {
		o.fs = fs
	}
}

// WithShellRC sets the shell startup file that sources asdf after bootstrap.
// An empty path disables the update.
func WithShellRC(path string) Option {
	return func(o *Orchestrator) {
		o.shellRC = path
	}
}

// New creates an Orchestrator. A nil logger discards messages.
func New(runner shell.Runner, log logger.Logger, opts ...Option) *Orchestrator {
	if log == nil {
		log = logger.Discard
	}

	o := &Orchestrator{
		runner:  runner,
		log:     log,
		fs:      afero.NewOsFs(),
		asdf:    DefaultAsdfSettings(),
		shellRC: filepath.Join(homeDir(), ".bashrc"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Asdf returns the effective asdf settings.
func (o *Orchestrator) Asdf() AsdfSettings {
	return o.asdf
}

// Configure provisions the machine to match s. Steps run strictly in catalog order
// and the first failure stops the run with a *StepError. Nothing is rolled back.
func (o *Orchestrator) Configure(ctx context.Context, environmentName string, s Settings) error {
	o.log.Info(fmt.Sprintf("Configuring environment for: %s", environmentName))

	for _, st := range o.steps() {
		if !st.applies(s) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("configure %s: %w", environmentName, err)
		}
		if err := st.run(ctx, s); err != nil {
			return err
		}
	}

	o.log.Success(fmt.Sprintf("Environment %s configured successfully!", environmentName))
	return nil
}

// exec runs one mutating action. On failure it logs failMsg and returns the StepError
// that aborts the run.
func (o *Orchestrator) exec(ctx context.Context, name StepName, id issue.Id, cmd shell.Command, failMsg string) error {
	result := o.runner.Run(ctx, cmd, shell.RunOptions{})
	if result.Success() {
		return nil
	}

	o.log.Error(failMsg)
	return &StepError{
		Step:    name,
		Issue:   id,
		Command: cmd,
		Result:  result,
		Err:     result.AsError(cmd),
	}
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
