// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FormatCUE renders the configuration in the native file format.
	FormatCUE Format = "cue"
	// FormatTOML renders the configuration as TOML.
	FormatTOML Format = "toml"
	// FormatYAML renders the configuration as YAML.
	FormatYAML Format = "yaml"
)

// ErrInvalidFormat is the sentinel error wrapped by InvalidFormatError.
var ErrInvalidFormat = errors.New("invalid output format")

type (
	// Format selects the encoding used by Encode.
	Format string

	// InvalidFormatError is returned when a Format is not recognized.
	InvalidFormatError struct {
		Value Format
	}
)

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: cue, toml, yaml)", e.Value)
}

// Unwrap returns ErrInvalidFormat for errors.Is compatibility.
func (e *InvalidFormatError) Unwrap() error { return ErrInvalidFormat }

// Encode serializes cfg in the requested format.
func Encode(cfg *Config, format Format) (string, error) {
	switch format {
	case FormatCUE, "":
		return GenerateCUE(cfg), nil
	case FormatTOML:
		data, err := toml.Marshal(cfg)
		if err != nil {
			return "", fmt.Errorf("failed to encode config as toml: %w", err)
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return "", fmt.Errorf("failed to encode config as yaml: %w", err)
		}
		return string(data), nil
	default:
		return "", &InvalidFormatError{Value: format}
	}
}
