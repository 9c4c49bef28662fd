// Package domain holds the zone-calculation value objects and error taxonomy.
package domain

import (
	"fmt"
	"math"
)

// Benchmark validation ranges. These are business rules, not formatting
// limits.
const (
	MinHeartRate = 100
	MaxHeartRate = 240

	MinDistanceMeters = 500
	MaxDistanceMeters = 10000

	MinTimeSeconds = 60.0
	MaxTimeSeconds = 3600.0
)

// BenchmarkKind tags the two supported benchmark shapes. The kind is decided
// once at the API boundary and never inferred from value shape.
type BenchmarkKind string

const (
	KindHeartRate BenchmarkKind = "heart_rate"
	KindPace      BenchmarkKind = "pace"
)

// Bounds holds the calculated bounds for one zone. A nil side is an
// open-ended bound, never zero.
type Bounds struct {
	Lower *float64
	Upper *float64
}

// Benchmark is a validated performance input from which zone bounds derive.
type Benchmark interface {
	Kind() BenchmarkKind
	ZoneBounds(z Zone) Bounds
}

// HRBenchmark is a maximum heart rate benchmark.
type HRBenchmark struct {
	maxHR int
}

// NewHRBenchmark validates and constructs an HRBenchmark.
func NewHRBenchmark(maxHR int) (HRBenchmark, error) {
	if maxHR < MinHeartRate || maxHR > MaxHeartRate {
		return HRBenchmark{}, &InvalidBenchmarkError{
			Reason: fmt.Sprintf("maximum heart rate must be between %d and %d BPM", MinHeartRate, MaxHeartRate),
			Value:  maxHR,
		}
	}
	return HRBenchmark{maxHR: maxHR}, nil
}

// MaxHR returns the maximum heart rate in BPM.
func (b HRBenchmark) MaxHR() int { return b.maxHR }

// Kind reports that this is a heart-rate benchmark.
func (b HRBenchmark) Kind() BenchmarkKind { return KindHeartRate }

// ZoneBounds computes the heart-rate bounds for a zone. Values are truncated
// toward zero, not rounded: 92.5 becomes 92.
func (b HRBenchmark) ZoneBounds(z Zone) Bounds {
	var bounds Bounds
	if z.LowerCoefficient != nil {
		v := math.Trunc(float64(b.maxHR) * *z.LowerCoefficient)
		bounds.Lower = &v
	}
	if z.UpperCoefficient != nil {
		v := math.Trunc(float64(b.maxHR) * *z.UpperCoefficient)
		bounds.Upper = &v
	}
	return bounds
}

// PaceBenchmark is a distance/time benchmark for rowing or ergometer work.
type PaceBenchmark struct {
	distanceMeters int
	timeSeconds    float64
}

// NewPaceBenchmark validates and constructs a PaceBenchmark.
func NewPaceBenchmark(distanceMeters int, timeSeconds float64) (PaceBenchmark, error) {
	if distanceMeters < MinDistanceMeters || distanceMeters > MaxDistanceMeters {
		return PaceBenchmark{}, &InvalidBenchmarkError{
			Reason: fmt.Sprintf("distance must be between %d and %d meters", MinDistanceMeters, MaxDistanceMeters),
			Value:  distanceMeters,
		}
	}
	if timeSeconds < MinTimeSeconds || timeSeconds > MaxTimeSeconds {
		return PaceBenchmark{}, &InvalidBenchmarkError{
			Reason: fmt.Sprintf("time must be between %.0f and %.0f seconds", MinTimeSeconds, MaxTimeSeconds),
			Value:  timeSeconds,
		}
	}
	return PaceBenchmark{distanceMeters: distanceMeters, timeSeconds: timeSeconds}, nil
}

// DistanceMeters returns the benchmark distance.
func (b PaceBenchmark) DistanceMeters() int { return b.distanceMeters }

// TimeSeconds returns the benchmark elapsed time.
func (b PaceBenchmark) TimeSeconds() float64 { return b.timeSeconds }

// Base500mTime is the benchmark normalized to seconds per 500 meters, the
// unit all pace coefficients are expressed against.
func (b PaceBenchmark) Base500mTime() float64 {
	return b.timeSeconds / (float64(b.distanceMeters) / 500)
}

// Kind reports that this is a pace benchmark.
func (b PaceBenchmark) Kind() BenchmarkKind { return KindPace }

// ZoneBounds computes the pace bounds for a zone as fractional seconds per
// 500m. No truncation is applied here; that is a formatting concern.
func (b PaceBenchmark) ZoneBounds(z Zone) Bounds {
	base := b.Base500mTime()
	var bounds Bounds
	if z.LowerCoefficient != nil {
		v := base * *z.LowerCoefficient
		bounds.Lower = &v
	}
	if z.UpperCoefficient != nil {
		v := base * *z.UpperCoefficient
		bounds.Upper = &v
	}
	return bounds
}
