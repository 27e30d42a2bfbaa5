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
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr default: %s", cfg.HTTPAddr)
	}
	if cfg.ClueTimer != 15*time.Second {
		t.Fatalf("ClueTimer default: %v", cfg.ClueTimer)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("CLUE_TIMER", "30s")
	t.Setenv("DEV", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9999" || cfg.ClueTimer != 30*time.Second || !cfg.Dev {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
