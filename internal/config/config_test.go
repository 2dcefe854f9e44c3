package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.AnalyticsSink != "memory" {
		t.Errorf("expected default analytics sink memory, got %s", cfg.AnalyticsSink)
	}
	if cfg.WebhookTimeout != 10*time.Second {
		t.Errorf("expected default webhook timeout 10s, got %s", cfg.WebhookTimeout)
	}
	if cfg.CalendarURL == "" {
		t.Error("expected a default calendar URL")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("WEBHOOK_TIMEOUT", "3s")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %d", len(cfg.CORSAllowedOrigins))
	}
	if cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("expected trimmed origin, got %q", cfg.CORSAllowedOrigins[1])
	}
	if cfg.RateLimitPerSecond != 2.5 {
		t.Errorf("expected rate 2.5, got %f", cfg.RateLimitPerSecond)
	}
	if !cfg.RedisTLS {
		t.Error("expected redis TLS enabled")
	}
	if cfg.WebhookTimeout != 3*time.Second {
		t.Errorf("expected webhook timeout 3s, got %s", cfg.WebhookTimeout)
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("REDIS_TLS", "maybe")

	cfg := Load()

	if cfg.RateLimitBurst != 20 {
		t.Errorf("expected fallback burst 20, got %d", cfg.RateLimitBurst)
	}
	if cfg.RedisTLS {
		t.Error("expected fallback redis TLS false")
	}
}
