// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MohamedXi/hopla-cli/internal/shell"
)

type (
	// RunnerCall is one recorded gateway invocation.
	RunnerCall struct {
		Command shell.Command
		Options shell.RunOptions
	}

	// FakeRunner is a scripted shell.Runner.
	//
	// Commands are matched by key: the base name of the program followed by the
	// arguments, separated by single spaces (e.g., "asdf install nodejs 18.0.0").
	// A rule matches when its pattern equals the key or is a word prefix of it.
	// The first matching rule wins; unmatched commands succeed with empty output.
	FakeRunner struct {
		mu    sync.Mutex
		rules []fakeRule
		calls []RunnerCall
	}

	fakeRule struct {
		pattern string
		result  shell.Result
	}
)

// NewFakeRunner creates a FakeRunner where every command succeeds.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{}
}

// On scripts the result returned for commands matching pattern.
func (f *FakeRunner) On(pattern string, result shell.Result) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = append(f.rules, fakeRule{pattern: pattern, result: result})
	return f
}

// Fail scripts a plain non-zero exit for commands matching pattern.
func (f *FakeRunner) Fail(pattern string, code shell.ExitCode) *FakeRunner {
	return f.On(pattern, shell.Result{ExitCode: code})
}

// Stdout scripts a successful run printing out for commands matching pattern.
func (f *FakeRunner) Stdout(pattern, out string) *FakeRunner {
	return f.On(pattern, shell.Result{Stdout: out})
}

// Run implements shell.Runner.
func (f *FakeRunner) Run(_ context.Context, cmd shell.Command, opts shell.RunOptions) *shell.Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, RunnerCall{Command: cmd, Options: opts})

	key := CommandKey(cmd)
	for _, rule := range f.rules {
		if key == rule.pattern || strings.HasPrefix(key, rule.pattern+" ") {
			result := rule.result
			result.Silent = opts.Silent
			return &result
		}
	}
	return &shell.Result{Silent: opts.Silent}
}

// Calls returns the recorded invocations in order.
func (f *FakeRunner) Calls() []RunnerCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RunnerCall(nil), f.calls...)
}

// Keys returns the match keys of the recorded invocations in order.
func (f *FakeRunner) Keys() []string {
	calls := f.Calls()
	keys := make([]string, 0, len(calls))
	for _, c := range calls {
		keys = append(keys, CommandKey(c.Command))
	}
	return keys
}

// CommandKey renders cmd the way FakeRunner patterns are written.
func CommandKey(cmd shell.Command) string {
	parts := append([]string{filepath.Base(cmd.Program)}, cmd.Args...)
	return strings.Join(parts, " ")
}

var _ shell.Runner = (*FakeRunner)(nil)
