// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCommandFailed is the sentinel error wrapped by CommandError.
var ErrCommandFailed = errors.New("command failed")

type (
	// Result is the outcome of one gateway call.
	Result struct {
		// ExitCode is the process exit status (0 = success).
		ExitCode ExitCode
		// Stdout is the captured standard output.
		Stdout string
		// Stderr is the captured standard error.
		Stderr string
		// Silent reports whether live display of the streams was suppressed.
		Silent bool
		// Err is set when the process could not be started or waited for
		// (e.g., program not found). A plain non-zero exit leaves it nil.
		Err error
	}

	// CommandError describes a command that returned a non-zero status.
	CommandError struct {
		Command  Command
		ExitCode ExitCode
		Stderr   string
		Cause    error
	}
)

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Err: err}
}

// NewSuccessResult creates a Result with exit code 0 and the given stdout.
func NewSuccessResult(stdout string) *Result {
	return &Result{Stdout: stdout}
}

// Success reports whether the command ran and exited with status 0.
func (r *Result) Success() bool {
	return r != nil && r.Err == nil && r.ExitCode.IsSuccess()
}

// TrimmedStdout returns stdout without surrounding whitespace.
func (r *Result) TrimmedStdout() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.Stdout)
}

// AsError converts a failed result into a *CommandError. It returns nil on success.
func (r *Result) AsError(cmd Command) error {
	if r.Success() {
		return nil
	}
	if r == nil {
		return &CommandError{Command: cmd, ExitCode: ExitFailure}
	}
	return &CommandError{
		Command:  cmd,
		ExitCode: r.ExitCode,
		Stderr:   strings.TrimSpace(r.Stderr),
		Cause:    r.Err,
	}
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Command, e.Cause)
	}
	return fmt.Sprintf("%s: exit status %s", e.Command, e.ExitCode)
}

// Unwrap returns ErrCommandFailed along with the spawn cause, if any.
func (e *CommandError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrCommandFailed, e.Cause}
	}
	return []error{ErrCommandFailed}
}
