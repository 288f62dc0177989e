package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" toml:"server"`
	Logging   LogConfig       `yaml:"logging" toml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit" toml:"rate_limit"`
	Engine    EngineConfig    `yaml:"engine" toml:"engine"`
	Launcher  LauncherConfig  `yaml:"launcher" toml:"launcher"`

	// File is the optional YAML/TOML file layered over the environment
	File string `envconfig:"CONFIG_FILE" yaml:"-" toml:"-"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string `envconfig:"PORT" default:"8000" yaml:"port" toml:"port"`
	Host        string `envconfig:"HOST" default:"127.0.0.1" yaml:"host" toml:"host"`
	Compression bool   `envconfig:"HTTP_COMPRESSION" default:"true" yaml:"compression" toml:"compression"`

	// CORSOrigins lists browser origins allowed to call the API and open the
	// WebSocket. "*" allows any page the user visits.
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"tauri://localhost,http://tauri.localhost,http://localhost:1420" yaml:"cors_origins" toml:"cors_origins"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" yaml:"level" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" default:"false" yaml:"development" toml:"development"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100" yaml:"requests_per_second" toml:"requests_per_second"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200" yaml:"burst" toml:"burst"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true" yaml:"enabled" toml:"enabled"`
}

// EngineConfig holds filesystem engine switches.
type EngineConfig struct {
	NoClobber bool `envconfig:"ENGINE_NO_CLOBBER" default:"false" yaml:"no_clobber" toml:"no_clobber"`
}

// LauncherConfig holds external launcher settings.
type LauncherConfig struct {
	Terminals []string `envconfig:"TERMINALS" default:"x-terminal-emulator,gnome-terminal,konsole,xterm" yaml:"terminals" toml:"terminals"`
}

// Load loads configuration from environment variables, then applies
// CONFIG_FILE on top when it is set.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.File != "" {
		if err := cfg.applyFile(cfg.File); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8000",
			Host:        "127.0.0.1",
			Compression: true,
			CORSOrigins: []string{"tauri://localhost", "http://tauri.localhost", "http://localhost:1420"},
		},
		Logging: LogConfig{
			Level: "info",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Launcher: LauncherConfig{
			Terminals: []string{"x-terminal-emulator", "gnome-terminal", "konsole", "xterm"},
		},
	}
}

// applyFile decodes path over cfg; keys absent from the file keep their value.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		err = toml.Unmarshal(data, c)
	default:
		return fmt.Errorf("unsupported config file format: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks values that envconfig and the decoders cannot.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid port: %q", c.Server.Port)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error", "dpanic", "panic", "fatal":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit requires positive rps and burst, got %d/%d",
			c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
