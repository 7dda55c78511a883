// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Command is a single external program invocation.
type Command struct {
	// Program is the executable name or path (e.g., "npm", "/home/me/.asdf/bin/asdf").
	Program string
	// Args are passed to the program verbatim, without shell interpretation.
	Args []string
	// Env holds extra KEY=VALUE entries appended to the inherited environment.
	Env []string
}

// NewCommand creates a Command for program with the given arguments.
func NewCommand(program string, args ...string) Command {
	return Command{Program: program, Args: args}
}

// WithEnv returns a copy of the command with additional environment entries.
func (c Command) WithEnv(env ...string) Command {
	out := c
	out.Env = append(append(make([]string, 0, len(c.Env)+len(env)), c.Env...), env...)
	return out
}

// String renders the command as a POSIX shell line, quoting words where needed.
// The result is for display only; it is never executed.
func (c Command) String() string {
	words := make([]string, 0, len(c.Args)+1)
	words = append(words, Quote(c.Program))
	for _, arg := range c.Args {
		words = append(words, Quote(arg))
	}
	return strings.Join(words, " ")
}

// Quote returns word quoted for use in POSIX shell code when it needs quoting.
func Quote(word string) string {
	quoted, err := syntax.Quote(word, syntax.LangBash)
	if err != nil {
		// Only words with NUL bytes are unquotable; show them as-is.
		return word
	}
	return quoted
}
