// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/hopla/config.cue (or $XDG_CONFIG_HOME on Linux,
// ~/Library/Application Support/hopla/config.cue on macOS, %APPDATA%\hopla\config.cue
// on Windows), falling back to ./config.cue. It holds the asdf bootstrap settings, UI
// options and the named environments that `hopla switch` and `hopla check` resolve.
//
// Files are validated against an embedded CUE schema (config_schema.cue) before being
// merged into Viper, so type errors are reported with file positions. Any default can be
// overridden with a HOPLA_ prefixed environment variable (e.g., HOPLA_ASDF_VERSION).
package config
