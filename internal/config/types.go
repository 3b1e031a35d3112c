// Copyright 2025 Addykit, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config types define the configuration structures used throughout
// addy-export. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

import "time"

// Config represents the complete configuration for addy-export.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// APIConfig contains alias-service settings: the aliases endpoint, the
// environment variable consulted for the token when none is given on the
// command line, and the explicit timeout/retry policy for page requests.
// MaxAttempts defaults to 1, which means no retry.
type APIConfig struct {
	Endpoint    string `yaml:"endpoint" env:"ADDY_API_ENDPOINT"`
	TokenEnv    string `yaml:"token_env" env:"ADDY_TOKEN_ENV"`
	TimeoutMS   int    `yaml:"timeout_ms" env:"ADDY_EXPORT_TIMEOUT_MS"`
	MaxAttempts int    `yaml:"max_attempts" env:"ADDY_EXPORT_MAX_ATTEMPTS"`
}

// DefaultsConfig contains default settings that apply to every export run
// unless overridden. PageSize is capped at 100 by the alias service.
type DefaultsConfig struct {
	PageSize int `yaml:"page_size" env:"ADDY_EXPORT_PAGE_SIZE"`
}

// DefaultConfig returns a Config with sensible defaults suitable for the
// hosted addy.io service. The retry default of a single attempt matches the
// tool's contract: a failed page request aborts the run.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Endpoint:    "https://app.addy.io/api/v1/aliases",
			TokenEnv:    "ADDY_TOKEN",
			TimeoutMS:   30000,
			MaxAttempts: 1,
		},
		Defaults: DefaultsConfig{
			PageSize: 100,
		},
	}
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutMS) * time.Millisecond
}
