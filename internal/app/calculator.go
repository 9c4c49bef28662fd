// Package app contains the application services driving zone calculations.
package app

import (
	"fmt"

	"ergzones/internal/domain"
	"ergzones/internal/zonecfg"
)

// Calculator answers zone-bound questions for one benchmark kind against a
// loaded zone configuration. It is stateless apart from the configuration
// reference and safe for concurrent use.
type Calculator struct {
	cfg  *zonecfg.Config
	kind domain.BenchmarkKind
}

// NewHRCalculator creates a calculator that accepts heart-rate benchmarks.
func NewHRCalculator(cfg *zonecfg.Config) *Calculator {
	return &Calculator{cfg: cfg, kind: domain.KindHeartRate}
}

// NewPaceCalculator creates a calculator that accepts pace benchmarks.
func NewPaceCalculator(cfg *zonecfg.Config) *Calculator {
	return &Calculator{cfg: cfg, kind: domain.KindPace}
}

// Kind returns the benchmark kind this calculator accepts.
func (c *Calculator) Kind() domain.BenchmarkKind { return c.kind }

// checkKind rejects benchmarks of the wrong shape. The same numeric values
// could otherwise be silently misapplied across domains.
func (c *Calculator) checkKind(b domain.Benchmark) error {
	if b == nil {
		return &domain.InvalidBenchmarkError{
			Reason: fmt.Sprintf("calculator expects a %s benchmark, got none", c.kind),
		}
	}
	if b.Kind() != c.kind {
		return &domain.InvalidBenchmarkError{
			Reason: fmt.Sprintf("calculator expects a %s benchmark, got %s", c.kind, b.Kind()),
			Value:  b,
		}
	}
	return nil
}

// ZoneBounds computes both bounds for one zone.
func (c *Calculator) ZoneBounds(zoneName string, b domain.Benchmark) (domain.Bounds, error) {
	if err := c.checkKind(b); err != nil {
		return domain.Bounds{}, err
	}
	zone, err := c.cfg.Zone(zoneName)
	if err != nil {
		return domain.Bounds{}, err
	}
	return b.ZoneBounds(zone), nil
}

// LowerBound computes the lower bound of one zone. A zone that intentionally
// has no lower bound yields a NoLowerBoundError, distinct from an unknown
// zone (ZoneNotFoundError) and from an invalid benchmark.
func (c *Calculator) LowerBound(zoneName string, b domain.Benchmark) (float64, error) {
	bounds, err := c.ZoneBounds(zoneName, b)
	if err != nil {
		return 0, err
	}
	if bounds.Lower == nil {
		return 0, &domain.NoLowerBoundError{Zone: zoneName}
	}
	return *bounds.Lower, nil
}

// UpperBound computes the upper bound of one zone, symmetric to LowerBound.
func (c *Calculator) UpperBound(zoneName string, b domain.Benchmark) (float64, error) {
	bounds, err := c.ZoneBounds(zoneName, b)
	if err != nil {
		return 0, err
	}
	if bounds.Upper == nil {
		return 0, &domain.NoUpperBoundError{Zone: zoneName}
	}
	return *bounds.Upper, nil
}

// NamedBound pairs a zone name with one side of its bounds. A nil Value
// marks an open-ended zone.
type NamedBound struct {
	Zone  string
	Value *float64
}

// AllLowerBounds computes the lower bound of every configured zone in
// document order. Open-ended zones appear with a nil value rather than
// aborting the batch.
func (c *Calculator) AllLowerBounds(b domain.Benchmark) ([]NamedBound, error) {
	return c.allBounds(b, func(bounds domain.Bounds) *float64 { return bounds.Lower })
}

// AllUpperBounds computes the upper bound of every configured zone in
// document order, symmetric to AllLowerBounds.
func (c *Calculator) AllUpperBounds(b domain.Benchmark) ([]NamedBound, error) {
	return c.allBounds(b, func(bounds domain.Bounds) *float64 { return bounds.Upper })
}

func (c *Calculator) allBounds(b domain.Benchmark, side func(domain.Bounds) *float64) ([]NamedBound, error) {
	if err := c.checkKind(b); err != nil {
		return nil, err
	}
	names := c.cfg.ZoneNames()
	out := make([]NamedBound, 0, len(names))
	for _, name := range names {
		zone, err := c.cfg.Zone(name)
		if err != nil {
			return nil, err
		}
		out = append(out, NamedBound{Zone: name, Value: side(b.ZoneBounds(zone))})
	}
	return out, nil
}
