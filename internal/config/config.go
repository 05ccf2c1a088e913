package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the service reads from the environment. It is
// loaded once at startup; nothing else in the codebase touches os.Getenv.
type Config struct {
	Port        int
	DatabaseURL string
	CORSOrigin  string

	// Rate limit for the transaction-create route.
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Load reads and validates the environment. PORT and DATABASE_URL are
// required; everything else has a default.
func Load() (Config, error) {
	cfg := Config{
		CORSOrigin:      "*",
		RateLimitMax:    60,
		RateLimitWindow: time.Minute,
	}

	portStr := strings.TrimSpace(os.Getenv("PORT"))
	if portStr == "" {
		return Config{}, fmt.Errorf("PORT is not set")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("PORT must be a valid port number, got %q", portStr)
	}
	cfg.Port = port

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is not set")
	}

	if v := strings.TrimSpace(os.Getenv("CORS_ORIGIN")); v != "" {
		cfg.CORSOrigin = v
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_TX_MAX")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.RateLimitMax = parsed
		}
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_TX_WINDOW_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.RateLimitWindow = time.Duration(parsed) * time.Second
		}
	}

	return cfg, nil
}
