// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime configuration, loaded from environment
// variables. DATABASE_URL and GEMINI_API_KEY are optional at load time;
// commands that need them validate their presence themselves.
type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         8080,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

// RequireDatabase returns an error when no database URL is configured.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	return nil
}

// RequireGemini returns an error when no Gemini API key is configured.
func (c *Config) RequireGemini() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	return nil
}
