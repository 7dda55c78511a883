// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"slices"
	"testing"
)

func TestCommand_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"plain words", NewCommand("npm", "get", "registry"), "npm get registry"},
		{"word with space", NewCommand("echo", "hello world"), "echo 'hello world'"},
		{"empty argument", NewCommand("printf", ""), "printf ''"},
		{"no arguments", NewCommand("node"), "node"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand_WithEnv(t *testing.T) {
	t.Parallel()

	base := NewCommand("asdf", "plugin-list").WithEnv("A=1")
	derived := base.WithEnv("B=2")

	if !slices.Equal(base.Env, []string{"A=1"}) {
		t.Errorf("base env mutated: %v", base.Env)
	}
	if !slices.Equal(derived.Env, []string{"A=1", "B=2"}) {
		t.Errorf("derived env = %v, want [A=1 B=2]", derived.Env)
	}
	if derived.Program != "asdf" || !slices.Equal(derived.Args, []string{"plugin-list"}) {
		t.Errorf("derived command changed: %+v", derived)
	}
}
