// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the HTTP service settings
type Config struct {
	// Port the HTTP server listens on
	Port string

	// APIKey protects the outline endpoint when set; empty leaves the
	// endpoint open (intended for local use only)
	APIKey string

	// MaxUploadBytes caps the size of an uploaded PDF
	MaxUploadBytes int64
}

// Load reads configuration from the environment, applying defaults
func Load() Config {
	cfg := Config{
		Port:           envOr("PORT", "8085"),
		APIKey:         os.Getenv("OUTLINER_API_KEY"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

// Validate checks the configuration for inconsistencies
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
