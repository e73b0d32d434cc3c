// Package common provides shared utilities for CookEngine
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for CookEngine
type Config struct {
	Environment string           `toml:"environment"`
	Server      ServerConfig     `toml:"server"`
	Catalog     CatalogConfig    `toml:"catalog"`
	Generation  GenerationConfig `toml:"generation"`
	Logging     LoggingConfig    `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr returns the host:port listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CatalogConfig holds recipe catalog configuration
type CatalogConfig struct {
	Path string `toml:"path"` // YAML override; empty uses the built-in catalog
}

// GenerationConfig holds recipe generation configuration
type GenerationConfig struct {
	Delay     string  `toml:"delay"`      // simulated latency, "0s" disables
	Timeout   string  `toml:"timeout"`    // per-request synthesis timeout, "0s" disables
	RateLimit float64 `toml:"rate_limit"` // requests per second, 0 disables
	Burst     int     `toml:"burst"`
}

// GetDelay parses and returns the simulated generation delay
func (c *GenerationConfig) GetDelay() time.Duration {
	d, err := time.ParseDuration(c.Delay)
	if err != nil {
		return 1500 * time.Millisecond
	}
	return d
}

// GetTimeout parses and returns the synthesis timeout
func (c *GenerationConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Generation: GenerationConfig{
			Delay:     "1500ms",
			Timeout:   "10s",
			RateLimit: 5,
			Burst:     10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("COOKENGINE_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("COOKENGINE_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("COOKENGINE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("COOKENGINE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if format := os.Getenv("COOKENGINE_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}

	if path := os.Getenv("COOKENGINE_CATALOG_PATH"); path != "" {
		config.Catalog.Path = path
	}

	if v := os.Getenv("COOKENGINE_GENERATION_DELAY"); v != "" {
		config.Generation.Delay = v
	}
	if v := os.Getenv("COOKENGINE_GENERATION_TIMEOUT"); v != "" {
		config.Generation.Timeout = v
	}
	if v := os.Getenv("COOKENGINE_GENERATION_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Generation.RateLimit = f
		}
	}
}

// Validate rejects values that cannot be used at runtime
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if _, err := time.ParseDuration(c.Generation.Delay); err != nil {
		return fmt.Errorf("invalid generation delay %q: %w", c.Generation.Delay, err)
	}
	if _, err := time.ParseDuration(c.Generation.Timeout); err != nil {
		return fmt.Errorf("invalid generation timeout %q: %w", c.Generation.Timeout, err)
	}
	if c.Generation.RateLimit < 0 {
		return fmt.Errorf("invalid generation rate limit %v", c.Generation.RateLimit)
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
