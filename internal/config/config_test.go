package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.FrontendURL != "http://localhost:4321" {
		t.Errorf("unexpected default frontend url %q", cfg.HTTP.FrontendURL)
	}
	if cfg.HTTP.ShutdownTimeout != 5*time.Second {
		t.Errorf("unexpected default shutdown timeout %v", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.Demo.RateLimitPerMinute != 10 {
		t.Errorf("unexpected default demo rate limit %d", cfg.Demo.RateLimitPerMinute)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SECURE_COOKIES", "true")
	t.Setenv("DEMO_RATE_LIMIT_PER_MINUTE", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":9999" {
		t.Errorf("expected :9999, got %q", cfg.HTTP.Addr)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("expected redis addr override, got %q", cfg.Redis.Addr)
	}
	if !cfg.HTTP.SecureCookies {
		t.Error("expected secure cookies enabled")
	}
	if cfg.Demo.RateLimitPerMinute != 3 {
		t.Errorf("expected rate limit 3, got %d", cfg.Demo.RateLimitPerMinute)
	}
}
