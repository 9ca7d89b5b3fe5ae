// Package config loads the application configuration from the environment,
// with optional .env support for local development.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	JWTSecret   []byte
	JWTTTL      time.Duration
	Port        string
	CORSOrigin  string

	// EnforceOwnerDelete gates the owner-match check on account deletion.
	// Off by default: any authenticated user may delete any account, which
	// matches the historical behavior of the API.
	EnforceOwnerDelete bool

	LoginRateMax    int
	LoginRateWindow time.Duration
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:          []byte(strings.TrimSpace(os.Getenv("JWT_SECRET"))),
		JWTTTL:             24 * time.Hour,
		Port:               "8080",
		CORSOrigin:         "*",
		EnforceOwnerDelete: boolEnv("ENFORCE_OWNER_DELETE"),
		LoginRateMax:       10,
		LoginRateWindow:    time.Minute,
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is not set")
	}

	if v := strings.TrimSpace(os.Getenv("JWT_TTL_MS")); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return nil, errors.New("JWT_TTL_MS must be a positive integer")
		}
		cfg.JWTTTL = time.Duration(ms) * time.Millisecond
	}

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Port = v
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ORIGIN")); v != "" {
		cfg.CORSOrigin = v
	}

	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_LOGIN_MAX")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.LoginRateMax = parsed
		}
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_LOGIN_WINDOW_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.LoginRateWindow = time.Duration(parsed) * time.Second
		}
	}

	return cfg, nil
}

func boolEnv(key string) bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(key)), "true")
}
