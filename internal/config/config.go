// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/MohamedXi/hopla-cli/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "hopla"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix is the prefix of environment variables overriding config keys.
	EnvPrefix = "HOPLA"

	// maxConfigFileSize guards against accidentally pointing --config at a huge file.
	maxConfigFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the hopla configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FilePath returns the default config file path.
func FilePath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// loadWithOptions performs option-driven config loading. It returns the decoded
// configuration and the path of the file that was read ("" when only defaults apply).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("asdf.dir", defaults.Asdf.Dir)
	v.SetDefault("asdf.repository", defaults.Asdf.Repository)
	v.SetDefault("asdf.version", defaults.Asdf.Version)
	v.SetDefault("asdf.shell_rc", defaults.Asdf.ShellRC)
	v.SetDefault("asdf.plugins.nodejs", defaults.Asdf.Plugins.NodeJS)
	v.SetDefault("asdf.plugins.java", defaults.Asdf.Plugins.Java)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("ui.timestamps", defaults.UI.Timestamps)

	resolvedPath := ""

	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'hopla config init' to create a default configuration").
				Wrap(fmt.Errorf("config file not found: %s: %w", opts.ConfigFilePath, os.ErrNotExist)).
				BuildError()
		}
		resolvedPath = opts.ConfigFilePath
	} else {
		cfgDir := opts.ConfigDirPath
		if cfgDir == "" {
			var err error
			if cfgDir, err = ConfigDir(); err != nil {
				return nil, "", err
			}
		}

		for _, candidate := range []string{
			filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt),
			ConfigFileName + "." + ConfigFileExt,
		} {
			if fileExists(candidate) {
				resolvedPath = candidate
				break
			}
		}
		// No config file found: defaults apply.
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("See 'hopla config --help' for configuration options").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Versions must be single words, e.g. \"18.0.0\" or \"temurin-17.0.9+9\"").
			WithSuggestion("npm_registry must be an absolute http(s) URL").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config schema,
// and merges its contents into Viper.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxConfigFileSize {
		return fmt.Errorf("config file %s is too large (%d bytes, max %d)", path, len(data), maxConfigFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err())
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return formatCUEError(err)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err)
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// formatCUEError flattens a CUE error list into one message with positions.
func formatCUEError(err error) error {
	return fmt.Errorf("invalid configuration:\n%s", strings.TrimSpace(cueerrors.Details(err, nil)))
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig creates a default config file in dir if it doesn't exist.
// It returns the path of the config file and whether it was created.
func CreateDefaultConfig(dir string) (string, bool, error) {
	if dir == "" {
		var err error
		if dir, err = ConfigDir(); err != nil {
			return "", false, err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfgPath, true, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// hopla configuration file\n\n")

	sb.WriteString("asdf: {\n")
	fmt.Fprintf(&sb, "\tdir:        %q\n", cfg.Asdf.Dir)
	fmt.Fprintf(&sb, "\trepository: %q\n", cfg.Asdf.Repository)
	fmt.Fprintf(&sb, "\tversion:    %q\n", cfg.Asdf.Version)
	fmt.Fprintf(&sb, "\tshell_rc:   %q\n", cfg.Asdf.ShellRC)
	sb.WriteString("\tplugins: {\n")
	fmt.Fprintf(&sb, "\t\tnodejs: %q\n", cfg.Asdf.Plugins.NodeJS)
	fmt.Fprintf(&sb, "\t\tjava:   %q\n", cfg.Asdf.Plugins.Java)
	sb.WriteString("\t}\n")
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose:    %v\n", cfg.UI.Verbose)
	fmt.Fprintf(&sb, "\ttimestamps: %v\n", cfg.UI.Timestamps)
	sb.WriteString("}\n")

	if len(cfg.Environments) == 0 {
		sb.WriteString("\n// environments: {\n")
		sb.WriteString("// \tstaging: {\n")
		sb.WriteString("// \t\tnode:            \"18.0.0\"\n")
		sb.WriteString("// \t\tnpm_registry:    \"https://registry.example.com\"\n")
		sb.WriteString("// \t\tdocker_registry: \"registry.example.com\"\n")
		sb.WriteString("// \t}\n")
		sb.WriteString("// }\n")
		return sb.String()
	}

	sb.WriteString("\nenvironments: {\n")
	for _, name := range cfg.EnvironmentNames() {
		env := cfg.Environments[name]
		fmt.Fprintf(&sb, "\t%q: {\n", name)
		writeField := func(key, value string) {
			if value != "" {
				fmt.Fprintf(&sb, "\t\t%s: %q\n", key, value)
			}
		}
		writeField("node", env.Node)
		writeField("java", env.Java)
		writeField("npm", env.Npm)
		writeField("npm_registry", env.NpmRegistry)
		writeField("docker_registry", env.DockerRegistry)
		sb.WriteString("\t}\n")
	}
	sb.WriteString("}\n")

	return sb.String()
}
