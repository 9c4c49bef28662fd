// Package zonecfg loads and exposes zone coefficient configurations.
//
// A configuration document is a JSON object mapping zone name to a pair of
// coefficients, where either coefficient may be null for an open-ended zone:
//
//	{
//	  "UT2": {"lower_bound": 1.18, "upper_bound": 1.24},
//	  "AN":  {"lower_bound": null, "upper_bound": 1.00}
//	}
//
// Document order is significant: it drives iteration order in calculation
// results.
package zonecfg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"ergzones/internal/domain"
)

// Names the default configurations registered at startup.
const (
	DefaultHRName   = "hr"
	DefaultPaceName = "pace"
)

// Config is an immutable, ordered set of zone definitions. It is safe for
// concurrent reads; it has no mutation API after construction.
type Config struct {
	names []string
	zones map[string]domain.Zone
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigError{Path: path, Kind: domain.ConfigUnreadable, Err: err}
	}
	return Parse(data, path)
}

// Parse builds a Config from raw document bytes. The source string only
// identifies the document in errors.
//
// The whole parse is atomic: the first invalid entry fails the load and no
// partial Config is ever returned. A json.Decoder token walk preserves the
// document's key order, which encoding/json map decoding would lose.
func Parse(data []byte, source string) (*Config, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, &domain.ConfigError{Path: source, Kind: domain.ConfigMalformed, Err: err}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &domain.ConfigError{
			Path: source,
			Kind: domain.ConfigMalformed,
			Err:  fmt.Errorf("expected a top-level object, got %v", tok),
		}
	}

	cfg := &Config{zones: make(map[string]domain.Zone)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &domain.ConfigError{Path: source, Kind: domain.ConfigMalformed, Err: err}
		}
		name, ok := tok.(string)
		if !ok {
			return nil, &domain.ConfigError{
				Path: source,
				Kind: domain.ConfigMalformed,
				Err:  fmt.Errorf("expected a zone name, got %v", tok),
			}
		}

		var entry map[string]json.RawMessage
		if err := dec.Decode(&entry); err != nil {
			return nil, &domain.ConfigError{Path: source, Zone: name, Kind: domain.ConfigMalformed, Err: err}
		}

		lower, err := boundField(entry, "lower_bound")
		if err != nil {
			return nil, &domain.ConfigError{Path: source, Zone: name, Kind: domain.ConfigSchema, Err: err}
		}
		upper, err := boundField(entry, "upper_bound")
		if err != nil {
			return nil, &domain.ConfigError{Path: source, Zone: name, Kind: domain.ConfigSchema, Err: err}
		}

		zone, err := domain.NewZone(name, lower, upper)
		if err != nil {
			return nil, &domain.ConfigError{Path: source, Zone: name, Kind: domain.ConfigSchema, Err: err}
		}
		if _, dup := cfg.zones[name]; dup {
			return nil, &domain.ConfigError{
				Path: source,
				Zone: name,
				Kind: domain.ConfigSchema,
				Err:  errors.New("duplicate zone name"),
			}
		}

		cfg.names = append(cfg.names, name)
		cfg.zones[name] = zone
	}
	if _, err := dec.Token(); err != nil {
		return nil, &domain.ConfigError{Path: source, Kind: domain.ConfigMalformed, Err: err}
	}

	if len(cfg.names) == 0 {
		return nil, &domain.ConfigError{
			Path: source,
			Kind: domain.ConfigSchema,
			Err:  errors.New("configuration defines no zones"),
		}
	}
	return cfg, nil
}

// boundField extracts one coefficient. The key must be present; an explicit
// null is a valid open-ended bound and yields nil.
func boundField(entry map[string]json.RawMessage, key string) (*float64, error) {
	raw, ok := entry[key]
	if !ok {
		return nil, fmt.Errorf("missing required field %q", key)
	}
	var v *float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("field %q must be a number or null", key)
	}
	return v, nil
}

// ZoneNames returns all zone names in document order.
func (c *Config) ZoneNames() []string {
	return slices.Clone(c.names)
}

// Zone returns the definition for the named zone.
func (c *Config) Zone(name string) (domain.Zone, error) {
	z, ok := c.zones[name]
	if !ok {
		return domain.Zone{}, &domain.ZoneNotFoundError{Name: name, Available: c.ZoneNames()}
	}
	return z, nil
}

// LowerBoundCoefficient returns the named zone's lower coefficient, or nil
// when the zone is open-ended on that side.
func (c *Config) LowerBoundCoefficient(name string) (*float64, error) {
	z, err := c.Zone(name)
	if err != nil {
		return nil, err
	}
	return z.LowerCoefficient, nil
}

// UpperBoundCoefficient returns the named zone's upper coefficient, or nil
// when the zone is open-ended on that side.
func (c *Config) UpperBoundCoefficient(name string) (*float64, error) {
	z, err := c.Zone(name)
	if err != nil {
		return nil, err
	}
	return z.UpperCoefficient, nil
}
