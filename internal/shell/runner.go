// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// RunOptions controls how a single command is executed.
	RunOptions struct {
		// Silent suppresses live display of stdout/stderr. Output is captured either way.
		Silent bool
	}

	// Runner executes a single external command synchronously.
	Runner interface {
		Run(ctx context.Context, cmd Command, opts RunOptions) *Result
	}

	// ExecRunnerOption configures an ExecRunner.
	ExecRunnerOption func(*ExecRunner)

	// ExecRunner runs commands as child processes of the current process.
	ExecRunner struct {
		execCommand ExecCommandFunc
		stdin       io.Reader
		stdout      io.Writer
		stderr      io.Writer
		logger      *log.Logger
	}
)

// WithExecCommand overrides how exec.Cmd values are created.
func WithExecCommand(fn ExecCommandFunc) ExecRunnerOption {
	return func(r *ExecRunner) {
		r.execCommand = fn
	}
}

// WithStdio sets the live passthrough streams used when a command is not silent.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) ExecRunnerOption {
	return func(r *ExecRunner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger enables debug tracing of command lines and exit codes.
func WithLogger(logger *log.Logger) ExecRunnerOption {
	return func(r *ExecRunner) {
		r.logger = logger
	}
}

// NewExecRunner creates a runner attached to the process's standard streams.
func NewExecRunner(opts ...ExecRunnerOption) *ExecRunner {
	r := &ExecRunner{
		execCommand: exec.CommandContext,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes cmd and blocks until it exits. Stdout and stderr are always captured;
// unless opts.Silent is set they are also copied to the live streams as they arrive
// and stdin is attached so interactive prompts (e.g., docker login) keep working.
func (r *ExecRunner) Run(ctx context.Context, cmd Command, opts RunOptions) *Result {
	r.debug("exec", "cmd", cmd.String(), "silent", opts.Silent)

	c := r.execCommand(ctx, cmd.Program, cmd.Args...)
	if len(cmd.Env) > 0 {
		base := c.Env
		if base == nil {
			base = os.Environ()
		}
		c.Env = append(base, cmd.Env...)
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if !opts.Silent {
		c.Stdin = r.stdin
		if r.stdout != nil {
			c.Stdout = io.MultiWriter(&stdout, r.stdout)
		}
		if r.stderr != nil {
			c.Stderr = io.MultiWriter(&stderr, r.stderr)
		}
	}

	err := c.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Silent: opts.Silent,
	}

	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			// ExitCode is -1 when the process was terminated by a signal.
			code := ExitCode(exitErr.ExitCode())
			if ok, errs := code.IsValid(); ok {
				result.ExitCode = code
			} else {
				result.ExitCode = ExitFailure
				result.Err = errors.Join(append(errs, err)...)
			}
		case errors.Is(err, exec.ErrNotFound):
			result.ExitCode = ExitNotFound
			result.Err = err
		default:
			result.ExitCode = ExitFailure
			result.Err = fmt.Errorf("failed to execute command: %w", err)
		}
	}

	r.debug("exit", "cmd", cmd.Program, "code", result.ExitCode)
	return result
}

func (r *ExecRunner) debug(msg string, keyvals ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, keyvals...)
	}
}

var _ Runner = (*ExecRunner)(nil)
