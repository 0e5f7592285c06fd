package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("port: got %q, want 8080", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("env: got %q, want development", cfg.Env)
	}
	if !cfg.IsDev() {
		t.Error("IsDev should be true by default")
	}
	if cfg.QueryCacheTTL != 60*time.Second {
		t.Errorf("cache ttl: got %v, want 60s", cfg.QueryCacheTTL)
	}
}

func TestQueryCacheTTL(t *testing.T) {
	t.Setenv("QUERY_CACHE_TTL", "0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.QueryCacheTTL != 0 {
		t.Errorf("ttl: got %v, want 0 (caching disabled)", cfg.QueryCacheTTL)
	}

	t.Setenv("QUERY_CACHE_TTL", "banana")
	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric TTL")
	}

	t.Setenv("QUERY_CACHE_TTL", "-5")
	if _, err := Load(); err == nil {
		t.Error("expected error for negative TTL")
	}
}

func TestProductionRequiresPassword(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	if _, err := Load(); err == nil {
		t.Error("expected error for default password in production")
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IsDev() {
		t.Error("IsDev should be false in production")
	}
}

func TestDSN(t *testing.T) {
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_HOST", "h")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_DB", "d")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := "postgres://u:p@h:5433/d?sslmode=disable"
	if cfg.DSN() != want {
		t.Errorf("DSN: got %q, want %q", cfg.DSN(), want)
	}
}
