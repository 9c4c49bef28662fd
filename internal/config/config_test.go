package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ADDR", "WEB_DIR", "LOG_LEVEL", "HR_ZONES_CONFIG", "PACE_ZONES_CONFIG",
		"CORS_ORIGINS", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", s.Addr)
	}
	if s.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", s.LogLevel)
	}
	if s.HRZonesPath != "config/hr_zones.json" {
		t.Errorf("HRZonesPath = %q", s.HRZonesPath)
	}
	if s.PaceZonesPath != "config/pace_zones.json" {
		t.Errorf("PaceZonesPath = %q", s.PaceZonesPath)
	}
	if len(s.CORSOrigins) != 1 || s.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", s.CORSOrigins)
	}
	if s.RateLimitRequests != 100 {
		t.Errorf("RateLimitRequests = %d, want 100", s.RateLimitRequests)
	}
	if s.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow = %s, want 1m", s.RateLimitWindow)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", s.Addr)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug (lowercased)", s.LogLevel)
	}
	if len(s.CORSOrigins) != 2 || s.CORSOrigins[0] != "http://a.example" || s.CORSOrigins[1] != "http://b.example" {
		t.Errorf("CORSOrigins = %v", s.CORSOrigins)
	}
	if s.RateLimitRequests != 5 {
		t.Errorf("RateLimitRequests = %d, want 5", s.RateLimitRequests)
	}
	if s.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %s, want 30s", s.RateLimitWindow)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"non-numeric rate limit", "RATE_LIMIT_REQUESTS", "many"},
		{"zero rate limit", "RATE_LIMIT_REQUESTS", "0"},
		{"negative window", "RATE_LIMIT_WINDOW_SECONDS", "-5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Fatalf("Load with %s=%s succeeded, want error", tc.key, tc.value)
			}
		})
	}
}
