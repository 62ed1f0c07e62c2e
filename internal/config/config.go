package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the gateway
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	ZeptoMail ZeptoMailConfig `yaml:"zeptomail"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, with container detection
func (c ServerConfig) GetHost() string {
	// On ECS/container, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	// Allow override via environment
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// ZeptoMailConfig holds ZeptoMail API configuration.
// APIKey may be empty at startup: the delivery client resolves the
// credential lazily on first send and falls back to the environment.
type ZeptoMailConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured timeout as a duration
func (c ZeptoMailConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultBaseURL is the ZeptoMail transmission endpoint used when no
// override is configured.
const DefaultBaseURL = "https://api.zeptomail.com/v1.1/email"

// Load reads and parses the configuration file. A missing file is not an
// error: the gateway can run entirely from environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.ZeptoMail.BaseURL == "" {
		cfg.ZeptoMail.BaseURL = DefaultBaseURL
	}
	if cfg.ZeptoMail.TimeoutSeconds == 0 {
		cfg.ZeptoMail.TimeoutSeconds = 30
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so the API key can live in .env locally and in real env vars on ECS.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables if present
	if apiKey := os.Getenv("ZEPTO_API_KEY"); apiKey != "" {
		cfg.ZeptoMail.APIKey = apiKey
	}
	if baseURL := os.Getenv("ZEPTO_API_URL"); baseURL != "" {
		cfg.ZeptoMail.BaseURL = baseURL
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	return cfg, nil
}
