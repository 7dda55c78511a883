// SPDX-License-Identifier: MPL-2.0

// Package shell is the command execution gateway used by every provisioning step.
//
// A Command is a program name plus an explicit argument list; no shell string is ever
// built or interpreted. A Runner executes exactly one child process per call, waits for
// it, and reports the exit status together with the captured standard streams. Runners
// never retry and never interpret exit codes: deciding what a non-zero status means is
// the caller's job.
package shell
