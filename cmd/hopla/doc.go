// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the hopla command tree.
//
// Every command is built from an App, the composition root that owns the config
// provider, the command runner and the output streams. Handlers load configuration,
// resolve the requested environment and delegate to internal/environment.
package cmd
