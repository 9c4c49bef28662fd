// Package adapthttp is the driving HTTP adapter for the zone calculation
// service.
package adapthttp

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ergzones/internal/app"
	"ergzones/internal/metrics"
)

const (
	serviceName    = "erg-zone-calculator"
	serviceVersion = "1.0.0"
)

// Server routes requests to the zone calculation service.
type Server struct {
	zones       *app.ZoneService
	metrics     *metrics.Metrics
	logger      *slog.Logger
	limiter     *RateLimiter
	corsOrigins []string
	webDir      string
}

// New creates a Server wired to the given application service.
func New(zones *app.ZoneService, m *metrics.Metrics, logger *slog.Logger, limiter *RateLimiter, corsOrigins []string, webDir string) *Server {
	return &Server{
		zones:       zones,
		metrics:     m,
		logger:      logger,
		limiter:     limiter,
		corsOrigins: corsOrigins,
		webDir:      webDir,
	}
}

// WithoutRateLimit disables rate limiting (for tests).
func (s *Server) WithoutRateLimit() *Server {
	s.limiter = nil
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.loggingMiddleware)
	r.Use(s.metricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/api", s.handleAPIInfo)
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(s.rateLimitMiddleware)
		r.Post("/calculate/hr-zones", s.handleHRZones)
		r.Post("/calculate/pace-zones", s.handlePaceZones)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))

	r.Handle("/*", withNoCache(spaFromDisk(s.webDir)))
	return r
}
