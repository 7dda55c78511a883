// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test doubles and helpers shared by package tests.
//
// FakeRunner stands in for the command execution gateway: it records every command
// and answers with scripted results, so provisioning flows can be asserted without
// spawning processes. LogRecorder captures the four logging severities. The Must*
// helpers wrap environment and filesystem setup, failing the test on error.
package testutil
