// SPDX-License-Identifier: MPL-2.0

package environment

import (
	"errors"
	"fmt"

	"github.com/MohamedXi/hopla-cli/internal/issue"
	"github.com/MohamedXi/hopla-cli/internal/shell"
)

// ErrStepFailed is the sentinel error wrapped by StepError.
var ErrStepFailed = errors.New("provisioning step failed")

// StepError reports the first failing action of a Configure run.
// No step after Step was attempted.
type StepError struct {
	// Step is the step whose action failed.
	Step StepName
	// Issue points at the catalog entry with remediation guidance.
	Issue issue.Id
	// Command is the external command that failed.
	Command shell.Command
	// Result is the gateway result of the failing command.
	Result *shell.Result
	// Err is the command failure (wraps shell.ErrCommandFailed).
	Err error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Err)
}

// Unwrap exposes both ErrStepFailed and the command failure.
func (e *StepError) Unwrap() []error {
	return []error{ErrStepFailed, e.Err}
}
