package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.DBPath != "krina.sqlite3" {
		t.Errorf("expected default db path krina.sqlite3, got %q", cfg.DBPath)
	}
	if cfg.PostgresDSN != "" {
		t.Errorf("expected empty postgres dsn, got %q", cfg.PostgresDSN)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("KRINA_ADDR", ":9090")
	t.Setenv("KRINA_DB", "/tmp/test.sqlite3")
	t.Setenv("KRINA_POSTGRES_DSN", "postgres://localhost/krina")

	cfg := Load()

	if cfg.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/test.sqlite3" {
		t.Errorf("expected db path /tmp/test.sqlite3, got %q", cfg.DBPath)
	}
	if cfg.PostgresDSN != "postgres://localhost/krina" {
		t.Errorf("expected postgres dsn set, got %q", cfg.PostgresDSN)
	}
}
