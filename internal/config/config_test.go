package config

import "testing"

func TestLoadDefaultsWhenUnset(t *testing.T) {
	t.Setenv("PORT", "")

	cfg := Load()
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
}

func TestLoadReadsPortFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
}

func TestAddr(t *testing.T) {
	cfg := Config{Port: "3000"}
	if got := cfg.Addr(); got != ":3000" {
		t.Fatalf("expected :3000, got %s", got)
	}
}
