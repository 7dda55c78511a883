// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MohamedXi/hopla-cli/internal/config"
	"github.com/MohamedXi/hopla-cli/internal/environment"
	"github.com/MohamedXi/hopla-cli/internal/issue"
	"github.com/MohamedXi/hopla-cli/internal/prerequisites"
	"github.com/MohamedXi/hopla-cli/internal/testutil"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q", got)
		}
	})
}

func TestIssueFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{
			name: "step error",
			err:  &environment.StepError{Step: environment.StepDockerLogin, Issue: issue.DockerLoginFailedId, Err: errors.New("exit status 1")},
			want: issue.DockerLoginFailedId,
		},
		{
			name: "environment not found",
			err:  &config.EnvironmentNotFoundError{Name: "qa"},
			want: issue.EnvironmentNotFoundId,
		},
		{
			name: "missing tools",
			err:  &prerequisites.MissingToolsError{},
			want: issue.ToolNotFoundId,
		},
		{
			name: "config error",
			err:  issue.NewErrorContext().WithOperation("load configuration").Wrap(errors.New("boom")).BuildError(),
			want: issue.ConfigLoadFailedId,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := issueFor(tt.err); got != tt.want {
				t.Errorf("issueFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	inner := errors.New("step failed")
	err := &ExitError{Code: 1, Err: inner}
	if err.Error() != "step failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	bare := &ExitError{Code: 3}
	if bare.Error() != "exit status 3" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestExecute_ReportsErrorOnce(t *testing.T) {
	t.Parallel()

	t.Run("rendered failure", func(t *testing.T) {
		t.Parallel()

		runner := testutil.NewFakeRunner().Fail("npm set registry", 1)
		root, _, stderr := newTestRoot(Dependencies{Runner: runner})
		root.SetArgs([]string{"switch", "staging"})

		err := execute(context.Background(), root)
		if code := exitCode(t, err); code != 1 {
			t.Fatalf("exit code = %d, want 1", code)
		}

		out := strings.ToLower(stderr.String())
		if n := strings.Count(out, "step set-npm-registry failed"); n != 1 {
			t.Errorf("error reported %d times, want once:\n%s", n, stderr.String())
		}
	})

	t.Run("usage error", func(t *testing.T) {
		t.Parallel()

		root, _, stderr := newTestRoot(Dependencies{Runner: testutil.NewFakeRunner()})
		root.SetArgs([]string{"switch"})

		err := execute(context.Background(), root)
		if err == nil {
			t.Fatal("expected an argument error")
		}
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			t.Fatalf("usage errors are not rendered by failure, got %v", err)
		}
		if n := strings.Count(stderr.String(), "accepts 1 arg(s)"); n != 1 {
			t.Errorf("usage error reported %d times, want once:\n%s", n, stderr.String())
		}
	})
}

func TestRenderIssue_PlainOutsideTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderIssue(&buf, issue.NpmRegistryFailedId)

	out := buf.String()
	if !strings.Contains(out, "NPM registry could not be set!") {
		t.Errorf("missing issue title:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output written to a buffer must not contain ANSI escapes: %q", out)
	}
	if got := issueStyle(&buf); got != "notty" {
		t.Errorf("issueStyle(buffer) = %q, want notty", got)
	}
}
