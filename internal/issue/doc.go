// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and remediation
// suggestions. The issue catalog holds Markdown guidance for every failure class the CLI
// can report; entries are rendered for the terminal with glamour.
package issue
