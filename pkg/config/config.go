// Package config loads project defaults from layered sources: built-in
// defaults, an optional per-user or per-directory config file, and
// DEVOPSTEMPLATE_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/devops-template/devopstemplate/pkg/project"
)

const envPrefix = "DEVOPSTEMPLATE_"

// configFileNames are probed in order; the first match wins
var configFileNames = []string{
	".devopstemplate.toml",
	".devopstemplate.yaml",
}

// Config holds the configurable defaults applied to new sessions
type Config struct {
	Project  project.ProjectConfig `koanf:"project" toml:"project"`
	Behavior BehaviorConfig        `koanf:"behavior" toml:"behavior"`
}

// BehaviorConfig holds default conflict and output behavior
type BehaviorConfig struct {
	OverwriteExists bool `koanf:"overwrite_exists" toml:"overwrite_exists"`
	SkipExists      bool `koanf:"skip_exists" toml:"skip_exists"`
	Verbosity       int  `koanf:"verbosity" toml:"verbosity"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Project: project.ProjectConfig{
			ProjectName:        "Example Project",
			ProjectSlug:        "example_project",
			ProjectVersion:     "0.1.0",
			ProjectURL:         "https://example.com",
			ProjectDescription: "A short project description",
			AuthorName:         "Full Name",
			AuthorEmail:        "full.name@mail.com",
		},
	}
}

// defaultsMap flattens the built-in defaults for the confmap provider
func defaultsMap() map[string]interface{} {
	d := Defaults()
	return map[string]interface{}{
		"project.project_name":        d.Project.ProjectName,
		"project.project_slug":        d.Project.ProjectSlug,
		"project.project_version":     d.Project.ProjectVersion,
		"project.project_url":         d.Project.ProjectURL,
		"project.project_description": d.Project.ProjectDescription,
		"project.author_name":         d.Project.AuthorName,
		"project.author_email":        d.Project.AuthorEmail,
		"behavior.overwrite_exists":   d.Behavior.OverwriteExists,
		"behavior.skip_exists":        d.Behavior.SkipExists,
		"behavior.verbosity":          d.Behavior.Verbosity,
	}
}

// Load builds the effective configuration for dir. A missing config file is
// not an error; a present but unreadable or malformed one is.
func Load(dir string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path, parser := findConfigFile(dir); path != "" {
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Config{}, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if cfg.Project.ProjectSlug == "" {
		cfg.Project.ProjectSlug = project.DeriveSlug(cfg.Project.ProjectName)
	}
	return cfg, nil
}

// findConfigFile returns the first config file present in dir and the parser
// matching its extension.
func findConfigFile(dir string) (string, koanf.Parser) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if strings.HasSuffix(name, ".yaml") {
			return path, kyaml.Parser()
		}
		return path, ktoml.Parser()
	}
	return "", nil
}

// DefaultTOML renders the built-in defaults as a TOML document, used by the
// genconfig command to seed a config file for editing.
func DefaultTOML() ([]byte, error) {
	data, err := toml.Marshal(Defaults())
	if err != nil {
		return nil, fmt.Errorf("failed to encode default configuration: %w", err)
	}
	return data, nil
}
