// SPDX-License-Identifier: MPL-2.0

// Package logger provides the leveled console logger used by the orchestrator and CLI.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Prefix is the label printed in front of every console line.
const Prefix = "HOPLA!"

type (
	// Logger is the logging capability consumed by provisioning code.
	// Each method emits a single, already formatted message.
	Logger interface {
		Info(msg string)
		Success(msg string)
		Warning(msg string)
		Error(msg string)
	}

	// Options configures a Console logger.
	Options struct {
		// Verbose enables debug-level output (e.g., traced command lines).
		Verbose bool
		// Timestamps prefixes each line with the current time.
		Timestamps bool
	}

	// Console renders messages through charmbracelet/log with a glyph per severity.
	Console struct {
		base *log.Logger
	}

	discard struct{}
)

var (
	infoGlyph    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")).Render("ℹ")
	successGlyph = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Render("✔")
	warningGlyph = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Render("⚠")
	errorGlyph   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Render("✖")

	// Discard drops every message.
	Discard Logger = discard{}
)

// New creates a Console writing to w. A nil writer defaults to stderr.
func New(w io.Writer, opts Options) *Console {
	if w == nil {
		w = os.Stderr
	}

	base := log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		ReportTimestamp: opts.Timestamps,
	})
	if opts.Verbose {
		base.SetLevel(log.DebugLevel)
	}

	return &Console{base: base}
}

// Base returns the underlying charmbracelet logger for structured debug tracing.
func (c *Console) Base() *log.Logger {
	return c.base
}

// Info reports an attempt or a neutral fact.
func (c *Console) Info(msg string) {
	c.base.Info(infoGlyph + " " + msg)
}

// Success reports a completed step.
func (c *Console) Success(msg string) {
	c.base.Info(successGlyph + " " + msg)
}

// Warning reports a non-fatal problem.
func (c *Console) Warning(msg string) {
	c.base.Warn(warningGlyph + " " + msg)
}

// Error reports a failure.
func (c *Console) Error(msg string) {
	c.base.Error(errorGlyph + " " + msg)
}

func (discard) Info(string)    {}
func (discard) Success(string) {}
func (discard) Warning(string) {}
func (discard) Error(string)   {}

var _ Logger = (*Console)(nil)
