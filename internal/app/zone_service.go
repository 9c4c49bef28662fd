package app

import (
	"log/slog"

	"ergzones/internal/domain"
	"ergzones/internal/format"
	"ergzones/internal/metrics"
	"ergzones/internal/zonecfg"
)

// ZoneService is the application facade the HTTP adapter drives. It resolves
// the named configuration, validates the benchmark, and assembles the full
// formatted report.
type ZoneService struct {
	registry *zonecfg.Registry
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewZoneService creates a ZoneService backed by the given configuration
// registry.
func NewZoneService(registry *zonecfg.Registry, logger *slog.Logger, m *metrics.Metrics) *ZoneService {
	return &ZoneService{registry: registry, logger: logger, metrics: m}
}

// HRReport is the response payload for a heart-rate calculation.
type HRReport struct {
	MaxHR int          `json:"max_hr"`
	Zones []ZoneResult `json:"zones"`
}

// PaceReport is the response payload for a pace calculation. BenchmarkPace
// is the formatted base 500m time derived from the input performance.
type PaceReport struct {
	DistanceMeters int          `json:"distance_meters"`
	TimeSeconds    float64      `json:"time_seconds"`
	BenchmarkPace  string       `json:"benchmark_pace"`
	Zones          []ZoneResult `json:"zones"`
}

// HRZones calculates every heart-rate zone for maxHR against the named
// configuration.
func (s *ZoneService) HRZones(configName string, maxHR int) (*HRReport, error) {
	report, err := s.hrZones(configName, maxHR)
	s.metrics.ObserveCalculation(string(domain.KindHeartRate), err)
	return report, err
}

func (s *ZoneService) hrZones(configName string, maxHR int) (*HRReport, error) {
	cfg, err := s.registry.Get(configName)
	if err != nil {
		return nil, err
	}
	benchmark, err := domain.NewHRBenchmark(maxHR)
	if err != nil {
		return nil, err
	}
	zones, err := BuildReport(NewHRCalculator(cfg), format.HR{}, benchmark)
	if err != nil {
		return nil, err
	}

	s.logger.Info("calculated hr zones", "config", configName, "max_hr", maxHR, "zones", len(zones))
	return &HRReport{MaxHR: maxHR, Zones: zones}, nil
}

// PaceZones calculates every pace zone for a distance/time benchmark against
// the named configuration.
func (s *ZoneService) PaceZones(configName string, distanceMeters int, timeSeconds float64) (*PaceReport, error) {
	report, err := s.paceZones(configName, distanceMeters, timeSeconds)
	s.metrics.ObserveCalculation(string(domain.KindPace), err)
	return report, err
}

func (s *ZoneService) paceZones(configName string, distanceMeters int, timeSeconds float64) (*PaceReport, error) {
	cfg, err := s.registry.Get(configName)
	if err != nil {
		return nil, err
	}
	benchmark, err := domain.NewPaceBenchmark(distanceMeters, timeSeconds)
	if err != nil {
		return nil, err
	}

	formatter := format.Pace{}
	zones, err := BuildReport(NewPaceCalculator(cfg), formatter, benchmark)
	if err != nil {
		return nil, err
	}

	base := benchmark.Base500mTime()
	s.logger.Info("calculated pace zones",
		"config", configName, "distance_meters", distanceMeters, "time_seconds", timeSeconds, "zones", len(zones))
	return &PaceReport{
		DistanceMeters: distanceMeters,
		TimeSeconds:    timeSeconds,
		BenchmarkPace:  formatter.FormatValue(&base),
		Zones:          zones,
	}, nil
}
