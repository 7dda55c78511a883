// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/term"

	"github.com/MohamedXi/hopla-cli/internal/config"
	"github.com/MohamedXi/hopla-cli/internal/environment"
	"github.com/MohamedXi/hopla-cli/internal/issue"
	"github.com/MohamedXi/hopla-cli/internal/prerequisites"
)

// failure renders err for the user and wraps it in an ExitError with status 1.
// The matching catalog entry, if any, is printed after the error text.
func failure(stderr io.Writer, err error, verbose bool) error {
	fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	var stepErr *environment.StepError
	if verbose && errors.As(err, &stepErr) {
		fmt.Fprintln(stderr, VerboseStyle.Render("Command: "+stepErr.Command.String()))
		if stepErr.Result != nil && stepErr.Result.Stderr != "" {
			fmt.Fprintln(stderr, VerboseStyle.Render(stepErr.Result.Stderr))
		}
	}

	renderIssue(stderr, issueFor(err))
	return &ExitError{Code: 1, Err: err}
}

// issueFor maps an error to its catalog entry. It returns 0 when none applies.
func issueFor(err error) issue.Id {
	var stepErr *environment.StepError
	switch {
	case errors.As(err, &stepErr):
		return stepErr.Issue
	case errors.Is(err, config.ErrEnvironmentNotFound):
		return issue.EnvironmentNotFoundId
	case errors.Is(err, prerequisites.ErrMissingTools):
		return issue.ToolNotFoundId
	case isConfigError(err):
		return issue.ConfigLoadFailedId
	default:
		return 0
	}
}

func isConfigError(err error) bool {
	var ae *issue.ActionableError
	return errors.As(err, &ae) || errors.Is(err, config.ErrInvalidEnvironment)
}

// renderIssue prints the glamour-rendered catalog entry for id.
func renderIssue(w io.Writer, id issue.Id) {
	if id == 0 {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(issueStyle(w))
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}

// issueStyle returns the glamour style for w. Writers that are not a terminal
// get plain text.
func issueStyle(w io.Writer) string {
	if f, ok := w.(term.File); ok && term.IsTerminal(f.Fd()) {
		return styles.DarkStyle
	}
	return styles.NoTTYStyle
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
