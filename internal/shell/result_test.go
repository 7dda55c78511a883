// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	if !ExitSuccess.IsSuccess() {
		t.Error("ExitSuccess.IsSuccess() = false")
	}
	if ExitNotFound.IsSuccess() {
		t.Error("ExitNotFound.IsSuccess() = true")
	}
	if ok, errs := ExitCode(255).IsValid(); !ok || len(errs) != 0 {
		t.Errorf("ExitCode(255).IsValid() = %v, %v", ok, errs)
	}

	ok, errs := ExitCode(300).IsValid()
	if ok {
		t.Fatal("ExitCode(300).IsValid() = true")
	}
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidExitCode) {
		t.Errorf("expected ErrInvalidExitCode, got %v", errs)
	}
	if ExitCode(42).String() != "42" {
		t.Errorf("String() = %q", ExitCode(42).String())
	}
}

func TestResult_AsError(t *testing.T) {
	t.Parallel()

	cmd := NewCommand("npm", "set", "registry", "https://registry.example.com")

	if err := NewSuccessResult("ok").AsError(cmd); err != nil {
		t.Errorf("AsError() on success = %v, want nil", err)
	}

	failed := &Result{ExitCode: 2, Stderr: "  boom \n"}
	err := failed.AsError(cmd)
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("expected ErrCommandFailed, got %v", err)
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if cmdErr.ExitCode != 2 || cmdErr.Stderr != "boom" {
		t.Errorf("unexpected CommandError: %+v", cmdErr)
	}
	if !strings.Contains(err.Error(), "exit status 2") {
		t.Errorf("Error() = %q, want exit status", err.Error())
	}

	spawn := NewErrorResult(ExitNotFound, exec.ErrNotFound).AsError(cmd)
	if !errors.Is(spawn, exec.ErrNotFound) || !errors.Is(spawn, ErrCommandFailed) {
		t.Errorf("spawn failure should wrap both causes, got %v", spawn)
	}
}

func TestResult_TrimmedStdout(t *testing.T) {
	t.Parallel()

	if got := NewSuccessResult("  v18.0.0\n").TrimmedStdout(); got != "v18.0.0" {
		t.Errorf("TrimmedStdout() = %q", got)
	}

	var nilResult *Result
	if got := nilResult.TrimmedStdout(); got != "" {
		t.Errorf("nil TrimmedStdout() = %q", got)
	}
	if nilResult.Success() {
		t.Error("nil result reported success")
	}
}
