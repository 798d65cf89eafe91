package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Default upstream settings for the Gemini generateContent API.
const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-2.5-flash-preview-09-2025"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Logging LogConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string        `envconfig:"PORT" default:"8000" validate:"required"`
	Host         string        `envconfig:"HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"15s" validate:"min=0"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"120s" validate:"min=0"`
	IdleTimeout  time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s" validate:"min=0"`
	GzipEnabled  bool          `envconfig:"GZIP_ENABLED" default:"true"`
}

// GeminiConfig holds the upstream generative-language settings.
//
// APIKey may be empty: the service still starts and reports the missing
// key on each blueprint request.
type GeminiConfig struct {
	APIKey         string        `envconfig:"GEMINI_API_KEY"`
	BaseURL        string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com" validate:"required,url"`
	Model          string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash-preview-09-2025" validate:"required"`
	Timeout        time.Duration `envconfig:"GEMINI_TIMEOUT" default:"0s" validate:"min=0"`
	BreakerEnabled bool          `envconfig:"GEMINI_BREAKER_ENABLED" default:"false"`
}

// Configured reports whether an API key is present.
func (g GeminiConfig) Configured() bool {
	return g.APIKey != ""
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// CORSConfig holds cross-origin settings for browser clients.
type CORSConfig struct {
	AllowOrigins   []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*" validate:"min=1"`
	AllowPreflight bool     `envconfig:"CORS_ALLOW_PREFLIGHT" default:"false"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct-tag constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "8000",
			Host:         "0.0.0.0",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
			GzipEnabled:  true,
		},
		Gemini: GeminiConfig{
			BaseURL: DefaultGeminiBaseURL,
			Model:   DefaultGeminiModel,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
	}
}
