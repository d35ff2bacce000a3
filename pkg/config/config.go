// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/relctl/pkg/defaults"
)

// DefaultFileName is the project configuration file looked up in the
// working directory when no explicit path is given.
const DefaultFileName = ".release.yaml"

// Target describes a single packaging target: a platform label and the
// artifact glob patterns collected into that platform's archive.
type Target struct {
	// Platform is the platform label used in archive file names
	// (e.g. "Windows", "Linux", "macOS").
	Platform string `yaml:"platform"`

	// Artifacts lists glob patterns, relative to the repository root,
	// of the files included in the archive.
	Artifacts []string `yaml:"artifacts"`
}

// Config provides immutable configuration options for release operations.
// All fields are read-only after creation to prevent accidental modifications.
type Config struct {
	// app is the application name used in archive file names.
	app string

	// remote is the git remote tags are pushed to.
	remote string

	// outputDir is the directory release archives are written to.
	outputDir string

	// targets are the packaging targets.
	targets []Target
}

// App returns the application name.
func (c *Config) App() string {
	return c.app
}

// Remote returns the git remote name.
func (c *Config) Remote() string {
	return c.remote
}

// OutputDir returns the archive output directory.
func (c *Config) OutputDir() string {
	return c.outputDir
}

// Targets returns a copy of the packaging targets to prevent modification.
func (c *Config) Targets() []Target {
	targets := make([]Target, len(c.targets))
	copy(targets, c.targets)
	return targets
}

// Validate checks if the Config has valid settings.
func (c *Config) Validate() error {
	if c.remote == "" {
		return fmt.Errorf("remote cannot be empty")
	}

	if c.outputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}

	for i, t := range c.targets {
		if strings.TrimSpace(t.Platform) == "" {
			return fmt.Errorf("target %d: platform cannot be empty", i)
		}
		if len(t.Artifacts) == 0 {
			return fmt.Errorf("target %q: at least one artifact pattern is required", t.Platform)
		}
	}

	if len(c.targets) > 0 && c.app == "" {
		return fmt.Errorf("app name is required when packaging targets are configured")
	}

	return nil
}

// Option configures a Config.
type Option func(*Config)

// WithApp sets the application name used in archive file names.
func WithApp(name string) Option {
	return func(c *Config) {
		c.app = name
	}
}

// WithRemote sets the git remote tags are pushed to.
func WithRemote(remote string) Option {
	return func(c *Config) {
		if remote != "" {
			c.remote = remote
		}
	}
}

// WithOutputDir sets the archive output directory.
func WithOutputDir(dir string) Option {
	return func(c *Config) {
		if dir != "" {
			c.outputDir = dir
		}
	}
}

// WithTargets sets the packaging targets.
func WithTargets(targets []Target) Option {
	return func(c *Config) {
		c.targets = make([]Target, len(targets))
		copy(c.targets, targets)
	}
}

// New returns a Config with default values, modified by the given options.
func New(options ...Option) *Config {
	c := &Config{
		remote:    defaults.DefaultRemote,
		outputDir: defaults.DefaultOutputDir,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// fileConfig mirrors the on-disk YAML layout.
type fileConfig struct {
	App       string   `yaml:"app"`
	Remote    string   `yaml:"remote"`
	OutputDir string   `yaml:"output_dir"`
	Targets   []Target `yaml:"targets"`
}

// Load reads the configuration file at path and returns the resulting
// Config. A missing file is not an error: the defaults apply and every
// setting can still come from flags.
func Load(path string, options ...Option) (*Config, error) {
	if path == "" {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(options...), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// File settings first, explicit options override them.
	opts := []Option{
		WithApp(fc.App),
		WithRemote(fc.Remote),
		WithOutputDir(fc.OutputDir),
		WithTargets(fc.Targets),
	}
	opts = append(opts, options...)

	c := New(opts...)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return c, nil
}
