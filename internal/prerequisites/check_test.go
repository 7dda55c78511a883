// SPDX-License-Identifier: MPL-2.0

package prerequisites

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/MohamedXi/hopla-cli/internal/testutil"
)

func fakeLookPath(found map[string]string) LookPathFunc {
	return func(name string) (string, error) {
		if path, ok := found[name]; ok {
			return path, nil
		}
		return "", exec.ErrNotFound
	}
}

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	runner := testutil.NewFakeRunner().
		Stdout("git --version", "git version 2.43.0\n").
		Fail("docker --version", 1)

	checker := NewChecker(runner, WithLookPath(fakeLookPath(map[string]string{
		"git":    "/usr/bin/git",
		"docker": "/usr/bin/docker",
	})))

	results := checker.Check(context.Background(), DefaultTools())

	if len(results.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results.Results))
	}

	git := results.Results[0]
	if !git.Found || git.Path != "/usr/bin/git" {
		t.Errorf("git = %+v, want found at /usr/bin/git", git)
	}
	if git.Version != "git version 2.43.0" {
		t.Errorf("git version = %q", git.Version)
	}

	docker := results.Results[2]
	if !docker.Found {
		t.Error("docker should be found even when its version query fails")
	}
	if docker.Version != "" {
		t.Errorf("docker version = %q, want empty", docker.Version)
	}

	if len(results.Missing) != 1 || results.Missing[0].Name != "npm" {
		t.Errorf("missing = %+v, want [npm]", results.Missing)
	}
	if results.HasErrors() {
		t.Error("npm is optional, HasErrors() should be false")
	}
	if err := results.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}

	for _, call := range runner.Calls() {
		if !call.Options.Silent {
			t.Errorf("version query %q should be silent", call.Command)
		}
	}
}

func TestChecker_MissingRequired(t *testing.T) {
	t.Parallel()

	runner := testutil.NewFakeRunner()
	checker := NewChecker(runner, WithLookPath(fakeLookPath(nil)))

	results := checker.Check(context.Background(), DefaultTools())

	if !results.HasErrors() {
		t.Fatal("expected errors when git is missing")
	}

	err := results.Err()
	if !errors.Is(err, ErrMissingTools) {
		t.Fatalf("errors.Is(err, ErrMissingTools) = false for %v", err)
	}

	var missingErr *MissingToolsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected *MissingToolsError, got %T", err)
	}
	if len(missingErr.Tools) != 1 || missingErr.Tools[0].Name != "git" {
		t.Errorf("missing required = %+v, want [git]", missingErr.Tools)
	}
	if !strings.Contains(err.Error(), "https://git-scm.com/downloads") {
		t.Errorf("error should mention the install URL: %v", err)
	}

	if len(runner.Calls()) != 0 {
		t.Errorf("no version query expected for missing tools, got %v", runner.Keys())
	}
}

func TestDefaultTools(t *testing.T) {
	t.Parallel()

	required := 0
	for _, tool := range DefaultTools() {
		if tool.Name == "" || tool.Description == "" || tool.InstallURL == "" {
			t.Errorf("incomplete tool definition: %+v", tool)
		}
		if tool.Required {
			required++
		}
	}
	if required != 1 {
		t.Errorf("expected exactly one required tool, got %d", required)
	}
}
