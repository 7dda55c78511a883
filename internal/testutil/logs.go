// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"strings"
	"sync"

	"github.com/MohamedXi/hopla-cli/internal/logger"
)

const (
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

type (
	// LogEntry is one recorded message.
	LogEntry struct {
		Level string
		Msg   string
	}

	// LogRecorder is a logger.Logger that keeps every message for assertions.
	LogRecorder struct {
		mu      sync.Mutex
		entries []LogEntry
	}
)

// NewLogRecorder creates an empty LogRecorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

func (r *LogRecorder) Info(msg string)    { r.add(LevelInfo, msg) }
func (r *LogRecorder) Success(msg string) { r.add(LevelSuccess, msg) }
func (r *LogRecorder) Warning(msg string) { r.add(LevelWarning, msg) }
func (r *LogRecorder) Error(msg string)   { r.add(LevelError, msg) }

func (r *LogRecorder) add(level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, LogEntry{Level: level, Msg: msg})
}

// Entries returns every recorded message in order.
func (r *LogRecorder) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]LogEntry(nil), r.entries...)
}

// Messages returns the messages recorded at level.
func (r *LogRecorder) Messages(level string) []string {
	var out []string
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e.Msg)
		}
	}
	return out
}

// Has reports whether a message at level contains substr.
func (r *LogRecorder) Has(level, substr string) bool {
	for _, msg := range r.Messages(level) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

var _ logger.Logger = (*LogRecorder)(nil)
