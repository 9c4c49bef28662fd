package domain

import (
	"fmt"
	"strings"
)

// ConfigErrorKind classifies configuration load failures so the presentation
// layer can choose a response shape without parsing messages.
type ConfigErrorKind int

const (
	// ConfigUnreadable means the configuration source could not be read.
	ConfigUnreadable ConfigErrorKind = iota
	// ConfigMalformed means the source was not a valid structured document.
	ConfigMalformed
	// ConfigSchema means the document parsed but violated the zone schema.
	ConfigSchema
)

func (k ConfigErrorKind) String() string {
	switch k {
	case ConfigUnreadable:
		return "unreadable"
	case ConfigMalformed:
		return "malformed"
	case ConfigSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// ConfigError reports a configuration that could not be loaded. Zone is set
// when a specific entry is at fault.
type ConfigError struct {
	Path string
	Zone string
	Kind ConfigErrorKind
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Zone != "" {
		return fmt.Sprintf("configuration %s: zone %q: %v", e.Path, e.Zone, e.Err)
	}
	return fmt.Sprintf("configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ZoneNotFoundError reports a lookup for a zone name the configuration does
// not define.
type ZoneNotFoundError struct {
	Name      string
	Available []string
}

func (e *ZoneNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("zone %q not found in configuration", e.Name)
	}
	return fmt.Sprintf("zone %q not found in configuration. Available zones: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// InvalidBenchmarkError reports a benchmark with an out-of-range value or
// the wrong shape for the calculator it was handed to.
type InvalidBenchmarkError struct {
	Reason string
	Value  any
}

func (e *InvalidBenchmarkError) Error() string {
	if e.Value == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s (got %v)", e.Reason, e.Value)
}

// NoLowerBoundError reports a single-zone query against a zone that
// intentionally has no lower bound. This is a valid domain state, not a
// defect; bulk queries represent it as an absent value instead.
type NoLowerBoundError struct {
	Zone string
}

func (e *NoLowerBoundError) Error() string {
	return fmt.Sprintf("zone %q has no lower bound defined", e.Zone)
}

// NoUpperBoundError is the upper-side counterpart of NoLowerBoundError.
type NoUpperBoundError struct {
	Zone string
}

func (e *NoUpperBoundError) Error() string {
	return fmt.Sprintf("zone %q has no upper bound defined", e.Zone)
}
