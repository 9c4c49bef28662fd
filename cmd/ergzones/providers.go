package main

import (
	"log/slog"
	"net/http"
	"os"

	adapthttp "ergzones/internal/adapter/http"
	"ergzones/internal/app"
	"ergzones/internal/config"
	"ergzones/internal/metrics"
	"ergzones/internal/zonecfg"
)

type application struct {
	settings *config.Settings
	logger   *slog.Logger
	server   *adapthttp.Server
	limiter  *adapthttp.RateLimiter
}

func newApplication(settings *config.Settings, logger *slog.Logger, server *adapthttp.Server, limiter *adapthttp.RateLimiter) *application {
	return &application{settings: settings, logger: logger, server: server, limiter: limiter}
}

func (a *application) handler() http.Handler { return a.server.Handler() }

func (a *application) close() { a.limiter.Stop() }

func provideSettings() (*config.Settings, error) { return config.Load() }

func provideLogger(settings *config.Settings) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// provideRegistry loads the default zone configurations once at startup;
// every calculation afterwards reads the shared immutable configs.
func provideRegistry(settings *config.Settings) (*zonecfg.Registry, error) {
	registry := zonecfg.NewRegistry()

	hr, err := zonecfg.Load(settings.HRZonesPath)
	if err != nil {
		return nil, err
	}
	registry.Register(zonecfg.DefaultHRName, hr)

	pace, err := zonecfg.Load(settings.PaceZonesPath)
	if err != nil {
		return nil, err
	}
	registry.Register(zonecfg.DefaultPaceName, pace)

	return registry, nil
}

func provideLimiter(settings *config.Settings) *adapthttp.RateLimiter {
	return adapthttp.NewRateLimiter(settings.RateLimitRequests, settings.RateLimitWindow)
}

func provideServer(settings *config.Settings, zones *app.ZoneService, m *metrics.Metrics, logger *slog.Logger, limiter *adapthttp.RateLimiter) *adapthttp.Server {
	return adapthttp.New(zones, m, logger, limiter, settings.CORSOrigins, settings.WebDir)
}
