package config_test

import (
	"testing"
	"time"

	"github.com/diefthyntis/Savasana/internal/config"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/savasana_test")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_MS", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("ENFORCE_OWNER_DELETE", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.CORSOrigin != "*" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Fatalf("expected 24h default TTL, got %v", cfg.JWTTTL)
	}
	if cfg.EnforceOwnerDelete {
		t.Fatal("owner-delete enforcement must default to off")
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error when DATABASE_URL is unset")
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	// Only the API server loads the full config; the migrator reads
	// DATABASE_URL on its own and never trips over a missing secret.
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error when JWT_SECRET is unset")
	}
}

func TestLoad_ParsesTTLAndFlags(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_TTL_MS", "3600000")
	t.Setenv("ENFORCE_OWNER_DELETE", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JWTTTL != time.Hour {
		t.Fatalf("expected 1h TTL, got %v", cfg.JWTTTL)
	}
	if !cfg.EnforceOwnerDelete {
		t.Fatal("expected owner-delete enforcement on")
	}
}

func TestLoad_RejectsBadTTL(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_TTL_MS", "not-a-number")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for a non-numeric TTL")
	}
}
