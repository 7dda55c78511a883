// SPDX-License-Identifier: MPL-2.0

// Package environment provisions a machine to match a named environment and inspects
// what it is currently configured as.
//
// The Orchestrator runs a fixed, ordered catalog of steps:
//
//	bootstrap-asdf -> set-npm-registry -> docker-login -> install-node -> install-java -> update-npm
//
// Only bootstrap-asdf is unconditional; every other step runs when its Settings field is
// set. Each external action goes through a shell.Runner. The first failing action aborts
// the run: the orchestrator logs the failure and returns a *StepError, leaving exit-status
// mapping to the caller. Inspect mirrors the same fields with read-only queries and never
// fails.
package environment
