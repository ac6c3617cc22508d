package config

import (
	"testing"
	"time"
)

func TestLoadRequiresTokenSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted an empty token secret")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Token.TTL != 15*time.Minute {
		t.Errorf("token TTL = %v, want 15m", cfg.Token.TTL)
	}
	if cfg.Token.Issuer != "taskhive" || cfg.Token.Audience != "taskhive-api" {
		t.Errorf("token issuer/audience = %q/%q", cfg.Token.Issuer, cfg.Token.Audience)
	}
	if cfg.Database.URL == "" {
		t.Error("database URL was not derived from components")
	}
	if cfg.Address() == "" {
		t.Error("Address() returned empty string")
	}
}

func TestGetDurationAcceptsSeconds(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "900")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Token.TTL != 900*time.Second {
		t.Errorf("token TTL = %v, want 900s", cfg.Token.TTL)
	}
}
