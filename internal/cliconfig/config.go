// Copyright 2026 The Textlayout Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cliconfig loads the textlayoutfmt CLI's on-disk configuration
// and merges it with command-line flag overrides.
package cliconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the CLI's persistent configuration, loaded from
// .textlayout.yaml and overridable per-invocation by flags.
type Config struct {
	Format  FormatConfig  `mapstructure:"format"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// FormatConfig mirrors the subset of format.Options a user can pin in
// config rather than pass on every invocation.
type FormatConfig struct {
	PageWidth int `mapstructure:"page_width"`
	Indent    int `mapstructure:"indent"`
}

// LoggingConfig controls the CLI's zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration used when no file and no flags
// override it.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{
			PageWidth: 80,
			Indent:    0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configPath (or, if empty, searches the current directory
// and the user's home directory for ".textlayout") and unmarshals it
// over DefaultConfig. A missing config file is not an error; every field
// simply keeps its default.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".textlayout")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	v.SetEnvPrefix("TEXTLAYOUT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("cliconfig: failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("cliconfig: failed to unmarshal config: %w", err)
	}

	cfg.Validate()

	return cfg, nil
}

// Validate normalizes out-of-range values to their defaults in place.
func (c *Config) Validate() {
	if c.Format.PageWidth <= 0 {
		c.Format.PageWidth = 80
	}
	if c.Format.Indent < 0 {
		c.Format.Indent = 0
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		c.Logging.Level = "info"
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		c.Logging.Format = "console"
	}
}
