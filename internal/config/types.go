// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/asaskevich/govalidator"
	"golang.org/x/exp/maps"

	"github.com/MohamedXi/hopla-cli/internal/environment"
)

const (
	// DefaultAsdfDir is where asdf is cloned when no directory is configured.
	DefaultAsdfDir = "~/.asdf"
	// DefaultShellRC is the shell startup file that sources asdf after bootstrap.
	DefaultShellRC = "~/.bashrc"
)

var (
	// ErrEnvironmentNotFound is the sentinel error wrapped by EnvironmentNotFoundError.
	ErrEnvironmentNotFound = errors.New("environment not found")
	// ErrInvalidEnvironment is the sentinel error wrapped by InvalidEnvironmentError.
	ErrInvalidEnvironment = errors.New("invalid environment")
)

type (
	// Config is the root configuration structure.
	Config struct {
		Asdf         AsdfConfig             `json:"asdf" mapstructure:"asdf" toml:"asdf" yaml:"asdf"`
		UI           UIConfig               `json:"ui" mapstructure:"ui" toml:"ui" yaml:"ui"`
		Environments map[string]Environment `json:"environments,omitempty" mapstructure:"environments" toml:"environments,omitempty" yaml:"environments,omitempty"`
	}

	// AsdfConfig controls how the version manager is bootstrapped.
	AsdfConfig struct {
		// Dir is the installation directory; "~" expands to the home directory.
		Dir string `json:"dir" mapstructure:"dir" toml:"dir" yaml:"dir"`
		// Repository is the git URL asdf is cloned from.
		Repository string `json:"repository" mapstructure:"repository" toml:"repository" yaml:"repository"`
		// Version is the release tag checked out after cloning.
		Version string `json:"version" mapstructure:"version" toml:"version" yaml:"version"`
		// ShellRC is the startup file that gets the asdf source lines.
		ShellRC string `json:"shell_rc" mapstructure:"shell_rc" toml:"shell_rc" yaml:"shell_rc"`
		// Plugins are the plugin repositories registered on demand.
		Plugins PluginsConfig `json:"plugins" mapstructure:"plugins" toml:"plugins" yaml:"plugins"`
	}

	// PluginsConfig holds the plugin source URLs per runtime.
	PluginsConfig struct {
		NodeJS string `json:"nodejs" mapstructure:"nodejs" toml:"nodejs" yaml:"nodejs"`
		Java   string `json:"java" mapstructure:"java" toml:"java" yaml:"java"`
	}

	// UIConfig contains console output settings.
	UIConfig struct {
		// Verbose enables debug output, including traced command lines.
		Verbose bool `json:"verbose" mapstructure:"verbose" toml:"verbose" yaml:"verbose"`
		// Timestamps prefixes log lines with the current time.
		Timestamps bool `json:"timestamps" mapstructure:"timestamps" toml:"timestamps" yaml:"timestamps"`
	}

	// Environment is a named set of provisioning settings. Empty fields are skipped.
	Environment struct {
		Node           string `json:"node,omitempty" mapstructure:"node" toml:"node,omitempty" yaml:"node,omitempty"`
		Java           string `json:"java,omitempty" mapstructure:"java" toml:"java,omitempty" yaml:"java,omitempty"`
		Npm            string `json:"npm,omitempty" mapstructure:"npm" toml:"npm,omitempty" yaml:"npm,omitempty"`
		NpmRegistry    string `json:"npm_registry,omitempty" mapstructure:"npm_registry" toml:"npm_registry,omitempty" yaml:"npm_registry,omitempty"`
		DockerRegistry string `json:"docker_registry,omitempty" mapstructure:"docker_registry" toml:"docker_registry,omitempty" yaml:"docker_registry,omitempty"`
	}

	// EnvironmentNotFoundError is returned when a named environment is not configured.
	EnvironmentNotFoundError struct {
		Name      string
		Available []string
	}

	// InvalidEnvironmentError is returned when an environment has malformed fields.
	InvalidEnvironmentError struct {
		FieldErrs []error
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Asdf: AsdfConfig{
			Dir:        DefaultAsdfDir,
			Repository: environment.DefaultAsdfRepository,
			Version:    environment.DefaultAsdfVersion,
			ShellRC:    DefaultShellRC,
			Plugins: PluginsConfig{
				NodeJS: environment.DefaultNodePluginURL,
				Java:   environment.DefaultJavaPluginURL,
			},
		},
	}
}

// Environment looks up a named environment. Names are case-insensitive because
// Viper folds map keys to lower case.
func (c *Config) Environment(name string) (Environment, error) {
	if env, ok := c.Environments[strings.ToLower(name)]; ok {
		return env, nil
	}
	return Environment{}, &EnvironmentNotFoundError{Name: name, Available: c.EnvironmentNames()}
}

// EnvironmentNames returns the configured environment names, sorted.
func (c *Config) EnvironmentNames() []string {
	names := maps.Keys(c.Environments)
	slices.Sort(names)
	return names
}

// Validate checks every configured environment.
func (c *Config) Validate() error {
	for _, name := range c.EnvironmentNames() {
		if err := c.Environments[name].Validate(); err != nil {
			return fmt.Errorf("environments.%s: %w", name, err)
		}
	}
	return nil
}

// IsEmpty reports whether no field is set.
func (e Environment) IsEmpty() bool {
	return e == Environment{}
}

// Merge returns e with every non-empty field of override applied on top.
func (e Environment) Merge(override Environment) Environment {
	out := e
	if override.Node != "" {
		out.Node = override.Node
	}
	if override.Java != "" {
		out.Java = override.Java
	}
	if override.Npm != "" {
		out.Npm = override.Npm
	}
	if override.NpmRegistry != "" {
		out.NpmRegistry = override.NpmRegistry
	}
	if override.DockerRegistry != "" {
		out.DockerRegistry = override.DockerRegistry
	}
	return out
}

// Validate checks that versions are single words and the registry is a URL.
func (e Environment) Validate() error {
	var errs []error

	for field, value := range map[string]string{"node": e.Node, "java": e.Java, "npm": e.Npm, "docker_registry": e.DockerRegistry} {
		if value != "" && strings.ContainsAny(value, " \t\r\n") {
			errs = append(errs, fmt.Errorf("%s: %q must not contain whitespace", field, value))
		}
	}
	if e.NpmRegistry != "" && !govalidator.IsRequestURL(e.NpmRegistry) {
		errs = append(errs, fmt.Errorf("npm_registry: %q is not a valid URL", e.NpmRegistry))
	}

	if len(errs) == 0 {
		return nil
	}
	slices.SortFunc(errs, func(a, b error) int { return strings.Compare(a.Error(), b.Error()) })
	return &InvalidEnvironmentError{FieldErrs: errs}
}

// Error implements the error interface.
func (e *EnvironmentNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("environment %q is not configured (no environments defined)", e.Name)
	}
	return fmt.Sprintf("environment %q is not configured (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

// Unwrap returns ErrEnvironmentNotFound for errors.Is compatibility.
func (e *EnvironmentNotFoundError) Unwrap() error { return ErrEnvironmentNotFound }

// Error implements the error interface.
func (e *InvalidEnvironmentError) Error() string {
	msgs := make([]string, 0, len(e.FieldErrs))
	for _, err := range e.FieldErrs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidEnvironment, strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidEnvironment for errors.Is compatibility.
func (e *InvalidEnvironmentError) Unwrap() error { return ErrInvalidEnvironment }

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
