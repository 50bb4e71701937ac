// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles partconv project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the partconv configuration file.
const FileName = "partconv.yaml"

// Environment variables consulted when flags and the config file leave a
// root unset.
const (
	EnvSourceRoot = "SRC_BASE_DIR"
	EnvTargetRoot = "TGT_BASE_DIR"
)

var (
	// ErrMissingSourceRoot indicates no source root was configured anywhere.
	ErrMissingSourceRoot = errors.New("source root is not configured")

	// ErrMissingTargetRoot indicates no target root was configured anywhere.
	ErrMissingTargetRoot = errors.New("target root is not configured")
)

// Config represents the partconv.yaml project configuration file.
type Config struct {
	Version    int      `yaml:"version"`
	SourceRoot string   `yaml:"source,omitempty"`
	TargetRoot string   `yaml:"target,omitempty"`
	Datasets   []string `yaml:"datasets,omitempty"`
	Delimiter  string   `yaml:"delimiter,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadIfPresent loads partconv.yaml from dir when it exists; otherwise it
// returns an empty Config so flags and environment can fill the rest.
func LoadIfPresent(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{Version: CurrentConfigVersion}, nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	return nil
}

// ResolveSource fills an unset source root from the environment and fails
// when none is configured.
func (c *Config) ResolveSource(getenv func(string) string) error {
	if c.SourceRoot == "" {
		c.SourceRoot = getenv(EnvSourceRoot)
	}
	if c.SourceRoot == "" {
		return fmt.Errorf("%w: set --source, %s, or source in %s", ErrMissingSourceRoot, EnvSourceRoot, FileName)
	}
	return nil
}

// ResolveTarget fills an unset target root from the environment and fails
// when none is configured.
func (c *Config) ResolveTarget(getenv func(string) string) error {
	if c.TargetRoot == "" {
		c.TargetRoot = getenv(EnvTargetRoot)
	}
	if c.TargetRoot == "" {
		return fmt.Errorf("%w: set --target, %s, or target in %s", ErrMissingTargetRoot, EnvTargetRoot, FileName)
	}
	return nil
}

// Resolve fills unset roots from the environment and fails when either
// required root is missing.
func (c *Config) Resolve(getenv func(string) string) error {
	if err := c.ResolveSource(getenv); err != nil {
		return err
	}
	return c.ResolveTarget(getenv)
}
