// Package config loads and saves shiftdial's YAML configuration.
//
// A missing file yields DefaultConfig. Environment variables override file
// values after loading:
//
//	SHIFTDIAL_LOG_LEVEL     logging.level
//	SHIFTDIAL_SERVER_ADDR   server.addr
//	SHIFTDIAL_REMOTE        remote
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"shiftdial/internal/domain"
)

// MaxDials bounds the dial count a config may request.
const MaxDials = 64

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all shiftdial configuration.
type Config struct {
	// Number of dials on the board
	Dials int `yaml:"dials"`

	// Schedule counter: "position" or "letter"
	Indexing string `yaml:"indexing"`

	// Base URL of a dialserver; when set the CLI calls it instead of
	// running the cipher locally
	Remote string `yaml:"remote"`

	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// ServerConfig configures the HTTP dial server.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dials:    5,
		Indexing: string(domain.IndexByPosition),
		Logging: LoggingConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     "10s",
			WriteTimeout:    "10s",
			ShutdownTimeout: "5s",
		},
	}
}

// DefaultPath returns $HOME/.shiftdial/config.yaml, or a relative path when
// the home directory is unknown.
func DefaultPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".shiftdial", "config.yaml")
	}
	return filepath.Join(dir, ".shiftdial", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, replacing path atomically.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := replaceFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Dials < 0 || c.Dials > MaxDials {
		return fmt.Errorf("%w: dials must be between 0 and %d, got %d", ErrInvalidConfig, MaxDials, c.Dials)
	}
	if _, err := domain.ParseIndexing(c.Indexing); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for name, v := range map[string]string{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if v == "" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, name, err)
		}
	}
	return nil
}

// IndexingMode returns the parsed indexing mode, defaulting to position.
func (c *Config) IndexingMode() domain.Indexing {
	idx, err := domain.ParseIndexing(c.Indexing)
	if err != nil {
		return domain.IndexByPosition
	}
	return idx
}

// Timeouts returns the parsed server timeouts. Empty or invalid values fall
// back to the defaults.
func (s ServerConfig) Timeouts() (read, write, shutdown time.Duration) {
	def := DefaultConfig().Server
	return parseDuration(s.ReadTimeout, def.ReadTimeout),
		parseDuration(s.WriteTimeout, def.WriteTimeout),
		parseDuration(s.ShutdownTimeout, def.ShutdownTimeout)
}

func parseDuration(v, fallback string) time.Duration {
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	d, _ := time.ParseDuration(fallback)
	return d
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHIFTDIAL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SHIFTDIAL_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SHIFTDIAL_REMOTE"); v != "" {
		c.Remote = v
	}
}
