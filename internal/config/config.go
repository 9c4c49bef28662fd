// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds the runtime configuration for the service. Zone coefficient
// documents are configured by path here and loaded separately at startup.
type Settings struct {
	Addr          string
	WebDir        string
	LogLevel      string
	HRZonesPath   string
	PaceZonesPath string

	CORSOrigins       []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads settings from the environment, applying defaults for anything
// unset. A .env file is honored when present.
func Load() (*Settings, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	rateLimitRequests, err := intEnv("RATE_LIMIT_REQUESTS", 100)
	if err != nil {
		return nil, err
	}
	rateLimitWindow, err := intEnv("RATE_LIMIT_WINDOW_SECONDS", 60)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Addr:              env("ADDR", ":8080"),
		WebDir:            env("WEB_DIR", "web"),
		LogLevel:          strings.ToLower(env("LOG_LEVEL", "info")),
		HRZonesPath:       env("HR_ZONES_CONFIG", "config/hr_zones.json"),
		PaceZonesPath:     env("PACE_ZONES_CONFIG", "config/pace_zones.json"),
		CORSOrigins:       splitList(env("CORS_ORIGINS", "*")),
		RateLimitRequests: rateLimitRequests,
		RateLimitWindow:   time.Duration(rateLimitWindow) * time.Second,
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", s.LogLevel)
	}
	if s.HRZonesPath == "" || s.PaceZonesPath == "" {
		return fmt.Errorf("zone configuration paths must not be empty")
	}
	if s.RateLimitRequests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", s.RateLimitRequests)
	}
	if s.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be positive, got %s", s.RateLimitWindow)
	}
	return nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
