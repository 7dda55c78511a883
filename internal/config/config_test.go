// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MohamedXi/hopla-cli/internal/environment"
	"github.com/MohamedXi/hopla-cli/internal/issue"
	"github.com/MohamedXi/hopla-cli/internal/testutil"
)

const sampleConfig = `
asdf: {
	version: "v0.14.0"
	plugins: java: "https://example.com/asdf-java.git"
}

ui: verbose: true

environments: {
	staging: {
		node:         "18.0.0"
		npm_registry: "https://registry.example.com"
	}
	Production: {
		node:            "20.11.1"
		java:            "temurin-17.0.9+9"
		npm:             "10.2.4"
		docker_registry: "registry.example.com"
	}
}
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	testutil.MustWriteFile(t, path, content)
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Asdf.Dir != "~/.asdf" {
		t.Errorf("Asdf.Dir = %q", cfg.Asdf.Dir)
	}
	if cfg.Asdf.Version != "v0.10.2" {
		t.Errorf("Asdf.Version = %q, want v0.10.2", cfg.Asdf.Version)
	}
	if cfg.Asdf.Repository != "https://github.com/asdf-vm/asdf.git" {
		t.Errorf("Asdf.Repository = %q", cfg.Asdf.Repository)
	}
	if cfg.Asdf.Plugins.NodeJS != "https://github.com/asdf-vm/asdf-nodejs.git" {
		t.Errorf("Plugins.NodeJS = %q", cfg.Asdf.Plugins.NodeJS)
	}
	if cfg.Asdf.Plugins.Java != "https://github.com/halcyon/asdf-java.git" {
		t.Errorf("Plugins.Java = %q", cfg.Asdf.Plugins.Java)
	}
	if cfg.UI.Verbose || cfg.UI.Timestamps {
		t.Error("UI flags should default to false")
	}
	if len(cfg.Environments) != 0 {
		t.Errorf("expected no environments, got %v", cfg.Environments)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, path, err := NewProvider().LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("LoadWithPath() error = %v", err)
	}
	if path != "" {
		t.Errorf("expected no resolved path, got %q", path)
	}
	if cfg.Asdf != DefaultConfig().Asdf {
		t.Errorf("Asdf = %+v, want defaults", cfg.Asdf)
	}
}

func TestLoad_CUEFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, sampleConfig)
	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Asdf.Version != "v0.14.0" {
		t.Errorf("Asdf.Version = %q, want v0.14.0", cfg.Asdf.Version)
	}
	if cfg.Asdf.Plugins.Java != "https://example.com/asdf-java.git" {
		t.Errorf("Plugins.Java = %q", cfg.Asdf.Plugins.Java)
	}
	if cfg.Asdf.Plugins.NodeJS != environment.DefaultNodePluginURL {
		t.Errorf("unset plugin should keep default, got %q", cfg.Asdf.Plugins.NodeJS)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose should be true")
	}

	staging, err := cfg.Environment("staging")
	if err != nil {
		t.Fatalf("Environment(staging) error = %v", err)
	}
	if staging.Node != "18.0.0" || staging.NpmRegistry != "https://registry.example.com" {
		t.Errorf("staging = %+v", staging)
	}
	if staging.Java != "" || staging.DockerRegistry != "" {
		t.Errorf("unset fields should be empty, got %+v", staging)
	}

	// Viper folds keys to lower case; lookups are case-insensitive.
	prod, err := cfg.Environment("PRODUCTION")
	if err != nil {
		t.Fatalf("Environment(PRODUCTION) error = %v", err)
	}
	if prod.Java != "temurin-17.0.9+9" || prod.DockerRegistry != "registry.example.com" {
		t.Errorf("production = %+v", prod)
	}

	if got := strings.Join(cfg.EnvironmentNames(), ","); got != "production,staging" {
		t.Errorf("EnvironmentNames() = %q", got)
	}
}

func TestLoad_DirectoryLookup(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `environments: dev: node: "20.0.0"`)
	cfg, resolved, err := NewProvider().LoadWithPath(context.Background(), LoadOptions{ConfigDirPath: filepath.Dir(path)})
	if err != nil {
		t.Fatalf("LoadWithPath() error = %v", err)
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if _, err := cfg.Environment("dev"); err != nil {
		t.Errorf("Environment(dev) error = %v", err)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown top-level field", `colour: "red"`},
		{"unknown environment field", `environments: dev: python: "3.12"`},
		{"registry without scheme", `environments: dev: npm_registry: "registry.example.com"`},
		{"version with whitespace", `environments: dev: node: "18 0 0"`},
		{"asdf version without v", `asdf: version: "0.10.2"`},
		{"wrong type", `ui: verbose: "yes"`},
		{"syntax error", `environments: {`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.content)
			_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
			if err == nil {
				t.Fatal("expected an error")
			}

			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("expected *issue.ActionableError, got %T: %v", err, err)
			}
			if ae.Resource != path {
				t.Errorf("Resource = %q, want %q", ae.Resource, path)
			}
		})
	}
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: missing})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || len(ae.Suggestions) == 0 {
		t.Errorf("expected actionable error with suggestions, got %v", err)
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(testutil.MustSetenv(t, "HOPLA_ASDF_VERSION", "v0.15.0"))
	t.Cleanup(testutil.MustSetenv(t, "HOPLA_UI_TIMESTAMPS", "true"))

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Asdf.Version != "v0.15.0" {
		t.Errorf("Asdf.Version = %q, want env override v0.15.0", cfg.Asdf.Version)
	}
	if !cfg.UI.Timestamps {
		t.Error("UI.Timestamps should be overridden to true")
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	original := DefaultConfig()
	original.Environments = map[string]Environment{
		"staging": {Node: "18.0.0", NpmRegistry: "https://registry.example.com"},
		"qa":      {Java: "temurin-21.0.1+12", Npm: "10.2.4", DockerRegistry: "ghcr.io"},
	}

	path := writeConfig(t, GenerateCUE(original))
	loaded, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("generated CUE does not load: %v\n%s", err, GenerateCUE(original))
	}

	if loaded.Asdf != original.Asdf {
		t.Errorf("Asdf = %+v, want %+v", loaded.Asdf, original.Asdf)
	}
	for name, want := range original.Environments {
		if got := loaded.Environments[name]; got != want {
			t.Errorf("environment %s = %+v, want %+v", name, got, want)
		}
	}
}

func TestGenerateCUE_DefaultsLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, GenerateCUE(DefaultConfig()))
	if _, err := NewProvider().Load(context.Background(), LoadOptions{ConfigFilePath: path}); err != nil {
		t.Fatalf("default CUE does not load: %v", err)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "hopla")

	path, created, err := CreateDefaultConfig(dir)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if !created {
		t.Error("expected the file to be created")
	}
	if path != filepath.Join(dir, "config.cue") {
		t.Errorf("path = %q", path)
	}

	testutil.MustWriteFile(t, path, "// customized\n")
	if _, created, err := CreateDefaultConfig(dir); err != nil || created {
		t.Errorf("second call: created=%v err=%v", created, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "// customized\n" {
		t.Error("existing config must not be overwritten")
	}
}
