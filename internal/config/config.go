// Package config loads gridpath configuration from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config represents the complete gridpath configuration.
type Config struct {
	Server      ServerConfig `yaml:"server"`
	Log         LogConfig    `yaml:"log"`
	Grid        GridConfig   `yaml:"grid"`
	CORSOrigins []string     `yaml:"cors_origins"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level"`  // any logrus level name
	Format string `yaml:"format"` // "text" or "json"
}

// GridConfig bounds and seeds solver requests.
type GridConfig struct {
	// MaxCells caps rows*cols for a single request.
	MaxCells int `yaml:"max_cells"`
	// MaxBatch caps the number of requests in one batch call.
	MaxBatch int `yaml:"max_batch"`
	// Seed is the base seed per-request random streams are derived from.
	Seed int64 `yaml:"seed"`
}

// Hard limit for Grid.MaxBatch.
const maxBatchLimit = 64

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Grid: GridConfig{
			MaxCells: 1_000_000,
			MaxBatch: maxBatchLimit,
			Seed:     1,
		},
		CORSOrigins: []string{"http://localhost:3000"},
	}
}

// Load reads the YAML file at path over the defaults, applies
// GRIDPATH_* environment overrides and validates the result.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GRIDPATH_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("GRIDPATH_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GRIDPATH_PORT must be a valid integer: %w", err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("GRIDPATH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("GRIDPATH_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("GRIDPATH_SEED must be a valid integer: %w", err)
		}
		c.Grid.Seed = seed
	}
	if v := os.Getenv("GRIDPATH_MAX_CELLS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GRIDPATH_MAX_CELLS must be a valid integer: %w", err)
		}
		c.Grid.MaxCells = n
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Host == "" {
		return fmt.Errorf("server host must not be empty")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server shutdown_timeout must not be negative")
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format must be 'text' or 'json', got %q", c.Log.Format)
	}

	if c.Grid.MaxCells < 1 {
		return fmt.Errorf("grid max_cells must be positive, got %d", c.Grid.MaxCells)
	}
	if c.Grid.MaxBatch < 1 || c.Grid.MaxBatch > maxBatchLimit {
		return fmt.Errorf("grid max_batch must be between 1 and %d, got %d", maxBatchLimit, c.Grid.MaxBatch)
	}

	if len(c.CORSOrigins) == 0 {
		return fmt.Errorf("cors_origins must list at least one origin")
	}
	for _, origin := range c.CORSOrigins {
		if strings.ContainsAny(origin, "*?[]") {
			return fmt.Errorf("cors_origins must not contain wildcards, got %q", origin)
		}
		u, err := url.Parse(origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("cors_origins contains invalid origin %q (must have scheme and host)", origin)
		}
	}

	return nil
}
