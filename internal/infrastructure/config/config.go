package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration. It is read once at startup
// and never mutated afterwards.
type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Logging LogConfig

	// DemoMode only influences the default state of the UI toggle; it
	// never disables a configured remote path.
	DemoMode bool `envconfig:"DEMO_MODE" default:"true"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"7860"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// GeminiConfig holds remote generation configuration.
type GeminiConfig struct {
	// APIKey empty means remote generation is unavailable regardless of
	// the request flag.
	APIKey string `envconfig:"GEMINI_API_KEY" default:""`

	// Models is the ordered candidate list: a low-latency model first,
	// then a higher-capability one.
	Models []string `envconfig:"GEMINI_MODELS" default:"gemini-2.0-flash,gemini-2.5-pro"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Configured reports whether the remote generation path can be used.
func (g GeminiConfig) Configured() bool {
	return g.APIKey != "" && len(g.Models) > 0
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
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
			Port: "7860",
			Host: "0.0.0.0",
		},
		Gemini: GeminiConfig{
			Models: []string{"gemini-2.0-flash", "gemini-2.5-pro"},
		},
		Logging: LogConfig{
			Level: "info",
		},
		DemoMode: true,
	}
}
