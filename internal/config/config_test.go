package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "development")
		t.Setenv("DB_NAME", "")
		t.Setenv("ALLOW_DESTRUCTIVE_OPS", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DBName != "private_markets" {
			t.Errorf("expected default db name, got %s", cfg.DBName)
		}
		if cfg.DBMaxOpenConns != 20 {
			t.Errorf("expected 20 max open conns, got %d", cfg.DBMaxOpenConns)
		}
		if cfg.DBSlowQueryThreshold != 5*time.Second {
			t.Errorf("expected 5s slow threshold, got %s", cfg.DBSlowQueryThreshold)
		}
		if cfg.AllowDestructiveOps {
			t.Error("destructive ops should be off by default")
		}
	})

	t.Run("test_env_uses_test_database", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("TEST_DB_NAME", "pm_ci")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DBName != "pm_ci" {
			t.Errorf("expected pm_ci, got %s", cfg.DBName)
		}
	})

	t.Run("production_requires_database_settings", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_NAME", "")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_PASSWORD", "")

		if _, err := Load(); err == nil {
			t.Fatal("expected error for incomplete production config")
		}
	})

	t.Run("production_refuses_destructive_ops", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_NAME", "pm")
		t.Setenv("DB_USER", "pm")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("ALLOW_DESTRUCTIVE_OPS", "true")

		if _, err := Load(); err == nil {
			t.Fatal("expected error when destructive ops are enabled in production")
		}
	})

	t.Run("invalid_numbers_fall_back", func(t *testing.T) {
		t.Setenv("ENV", "development")
		t.Setenv("DB_MAX_OPEN_CONNS", "lots")
		t.Setenv("DB_SLOW_QUERY_THRESHOLD", "soon")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DBMaxOpenConns != 20 {
			t.Errorf("expected fallback 20, got %d", cfg.DBMaxOpenConns)
		}
		if cfg.DBSlowQueryThreshold != 5*time.Second {
			t.Errorf("expected fallback 5s, got %s", cfg.DBSlowQueryThreshold)
		}
	})
}

func TestSplitList(t *testing.T) {
	got := splitList(" http://a.test , ,http://b.test")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Errorf("unexpected split result: %v", got)
	}
}
