// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

// Package config provides configuration loading for repo-factory using Viper.
// Values come from, in order of precedence: REPO_FACTORY_* environment
// variables, the YAML config file under the user config directory, and
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults the wizard pre-populates its prompts with.
type Config struct {
	// Owner is the default repository owner. Empty means the authenticated
	// user.
	Owner string `mapstructure:"owner" yaml:"owner"`

	// Visibility is the default repository visibility (public or private).
	Visibility string `mapstructure:"visibility" yaml:"visibility"`

	// License is the default license keyword offered by the create flow.
	License string `mapstructure:"license" yaml:"license"`

	// GHBinary is the gh executable to shell out to.
	GHBinary string `mapstructure:"gh_binary" yaml:"gh_binary"`

	// WorkspaceDir is where workspace scaffolding is written.
	WorkspaceDir string `mapstructure:"workspace_dir" yaml:"workspace_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Visibility:   "private",
		License:      "mit",
		GHBinary:     "gh",
		WorkspaceDir: ".",
	}
}

// Path returns the config file location under the user config directory.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "repo-factory", "config.yaml")
}

// Load reads the configuration, merging file and environment over defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults := Default()
	v.SetDefault("owner", defaults.Owner)
	v.SetDefault("visibility", defaults.Visibility)
	v.SetDefault("license", defaults.License)
	v.SetDefault("gh_binary", defaults.GHBinary)
	v.SetDefault("workspace_dir", defaults.WorkspaceDir)

	v.SetEnvPrefix("REPO_FACTORY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path := Path(); path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Visibility != "public" && cfg.Visibility != "private" {
		return nil, fmt.Errorf("invalid visibility %q: must be public or private", cfg.Visibility)
	}
	return &cfg, nil
}

// Save writes the configuration as YAML to the given path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if path == "" {
		return fmt.Errorf("no config path available")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
