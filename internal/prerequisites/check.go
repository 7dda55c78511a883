// SPDX-License-Identifier: MPL-2.0

// Package prerequisites checks that the external tools driven by the orchestrator are installed.
package prerequisites

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/MohamedXi/hopla-cli/internal/shell"
)

// ErrMissingTools is the sentinel error wrapped by MissingToolsError.
var ErrMissingTools = errors.New("missing required tools")

type (
	// Tool is an external program the orchestrator may invoke.
	Tool struct {
		// Name is the binary name looked up in PATH.
		Name string
		// Required tools must be present for any environment switch.
		Required bool
		// Description explains which steps use the tool.
		Description string
		// InstallURL points at installation instructions.
		InstallURL string
	}

	// CheckResult is the outcome for a single tool.
	CheckResult struct {
		Tool    Tool
		Found   bool
		Path    string
		Version string
	}

	// CheckResults aggregates the outcome for a set of tools.
	CheckResults struct {
		Results []CheckResult
		Missing []Tool
	}

	// MissingToolsError lists the required tools that were not found.
	MissingToolsError struct {
		Tools []Tool
	}

	// LookPathFunc resolves a binary name to a path.
	LookPathFunc func(name string) (string, error)

	// Checker looks tools up and queries their versions through a shell.Runner.
	Checker struct {
		runner   shell.Runner
		lookPath LookPathFunc
	}

	// Option configures a Checker.
	Option func(*Checker)
)

// DefaultTools returns the tools used by the provisioning steps.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "git",
			Required:    true,
			Description: "Clones asdf and its plugins",
			InstallURL:  "https://git-scm.com/downloads",
		},
		{
			Name:        "npm",
			Description: "Sets the npm registry and updates npm itself",
			InstallURL:  "https://docs.npmjs.com/downloading-and-installing-node-js-and-npm",
		},
		{
			Name:        "docker",
			Description: "Logs into container registries",
			InstallURL:  "https://docs.docker.com/get-docker/",
		},
	}
}

// WithLookPath replaces exec.LookPath.
func WithLookPath(fn LookPathFunc) Option {
	return func(c *Checker) {
		c.lookPath = fn
	}
}

// NewChecker creates a Checker that queries versions through runner.
func NewChecker(runner shell.Runner, opts ...Option) *Checker {
	c := &Checker{runner: runner, lookPath: exec.LookPath}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check looks up every tool. Versions are best effort: a tool that is found but
// fails its version query is still reported as found.
func (c *Checker) Check(ctx context.Context, tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := c.lookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			result.Version = c.version(ctx, path)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// HasErrors returns true if any required tool is missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Err returns a *MissingToolsError if any required tool is missing.
func (r *CheckResults) Err() error {
	var missing []Tool
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, tool)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingToolsError{Tools: missing}
}

// Error implements the error interface.
func (e *MissingToolsError) Error() string {
	parts := make([]string, 0, len(e.Tools))
	for _, tool := range e.Tools {
		parts = append(parts, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
	}
	return fmt.Sprintf("%s: %s", ErrMissingTools, strings.Join(parts, ", "))
}

// Unwrap returns ErrMissingTools for errors.Is compatibility.
func (e *MissingToolsError) Unwrap() error { return ErrMissingTools }

// version returns the first line of "<path> --version", or "" when it fails.
func (c *Checker) version(ctx context.Context, path string) string {
	result := c.runner.Run(ctx, shell.NewCommand(path, "--version"), shell.RunOptions{Silent: true})
	if !result.Success() {
		return ""
	}
	first, _, _ := strings.Cut(result.TrimmedStdout(), "\n")
	return strings.TrimSpace(first)
}
