// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/MohamedXi/hopla-cli/internal/config"
	"github.com/MohamedXi/hopla-cli/internal/environment"
	"github.com/MohamedXi/hopla-cli/internal/logger"
	"github.com/MohamedXi/hopla-cli/internal/prerequisites"
	"github.com/MohamedXi/hopla-cli/internal/shell"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: every Cobra handler receives an App and delegates through it.
	App struct {
		Config   config.Provider
		Runner   shell.Runner
		Fs       afero.Fs
		LookPath prerequisites.LookPathFunc

		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer

		// Global flag values, bound by NewRootCommand.
		verbose    bool
		configPath string
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		// Runner executes external commands. When nil, each invocation gets an
		// exec runner attached to the App's streams.
		Runner   shell.Runner
		Fs       afero.Fs
		LookPath prerequisites.LookPathFunc
		Stdin    io.Reader
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// session is the per-invocation state shared by a handler: the loaded
	// configuration, the console logger and the runner bound to it.
	session struct {
		cfg     *config.Config
		log     *logger.Console
		runner  shell.Runner
		verbose bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Config:   deps.Config,
		Runner:   deps.Runner,
		Fs:       deps.Fs,
		LookPath: deps.LookPath,
		stdin:    deps.Stdin,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// newSession loads configuration and builds the logger and runner for one command.
// The --verbose flag wins over ui.verbose only when set.
func (a *App) newSession(ctx context.Context) (*session, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.configPath})
	if err != nil {
		return nil, err
	}

	verbose := a.verbose || cfg.UI.Verbose
	console := logger.New(a.stderr, logger.Options{
		Verbose:    verbose,
		Timestamps: cfg.UI.Timestamps,
	})

	runner := a.Runner
	if runner == nil {
		runner = shell.NewExecRunner(
			shell.WithStdio(a.stdin, a.stdout, a.stderr),
			shell.WithLogger(console.Base()),
		)
	}

	return &session{cfg: cfg, log: console, runner: runner, verbose: verbose}, nil
}

// orchestrator builds an Orchestrator from the asdf section of the configuration.
func (a *App) orchestrator(s *session) (*environment.Orchestrator, error) {
	dir, err := config.ExpandHome(s.cfg.Asdf.Dir)
	if err != nil {
		return nil, err
	}
	rc, err := config.ExpandHome(s.cfg.Asdf.ShellRC)
	if err != nil {
		return nil, err
	}

	return environment.New(s.runner, s.log,
		environment.WithFs(a.Fs),
		environment.WithShellRC(rc),
		environment.WithAsdf(environment.AsdfSettings{
			Dir:           dir,
			Repository:    s.cfg.Asdf.Repository,
			Version:       s.cfg.Asdf.Version,
			NodePluginURL: s.cfg.Asdf.Plugins.NodeJS,
			JavaPluginURL: s.cfg.Asdf.Plugins.Java,
		}),
	), nil
}
