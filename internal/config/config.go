// Package config loads gateway configuration from an optional YAML file,
// with environment variables taking precedence over file values.
package config

import (
	"fmt"
	"os"
	"strconv"

	yaml "gopkg.in/yaml.v3"
)

// Config holds the gateway's startup configuration. The GitHub token is the
// only required value; the API key is read but not enforced by the default
// authenticator.
type Config struct {
	Bind        string `yaml:"bind"`
	Port        int    `yaml:"port"`
	GitHubToken string `yaml:"github_token"`
	APIKey      string `yaml:"api_key"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Bind:      "0.0.0.0",
		Port:      8080,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	if v := os.Getenv("GITGATE_BIND"); v != "" {
		cfg.Bind = v
	}
	if v := os.Getenv("GITGATE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("GITGATE_PORT: %w", err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.GitHubToken = v
	}
	if v := os.Getenv("GITGATE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GITGATE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GITGATE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg, nil
}

// Validate checks the configuration before the gateway binds its port.
// A missing GitHub token is fatal: the process must not start without it.
func (c Config) Validate() error {
	if c.GitHubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN is required (set the env var or github_token in the config file)")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}
