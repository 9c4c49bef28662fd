package domain

import (
	"errors"
	"strings"
)

// Zone is a named training-intensity band defined by a lower and/or upper
// coefficient. A nil coefficient marks that side as open-ended.
type Zone struct {
	Name             string
	LowerCoefficient *float64
	UpperCoefficient *float64
}

// NewZone validates and constructs a Zone. Coefficients must be positive
// when present, and the lower coefficient must be strictly less than the
// upper one when both are set.
func NewZone(name string, lower, upper *float64) (Zone, error) {
	if strings.TrimSpace(name) == "" {
		return Zone{}, errors.New("zone name cannot be empty")
	}
	if lower != nil && *lower <= 0 {
		return Zone{}, errors.New("lower bound coefficient must be positive")
	}
	if upper != nil && *upper <= 0 {
		return Zone{}, errors.New("upper bound coefficient must be positive")
	}
	if lower != nil && upper != nil && *lower >= *upper {
		return Zone{}, errors.New("lower bound coefficient must be less than upper bound coefficient")
	}
	return Zone{Name: name, LowerCoefficient: lower, UpperCoefficient: upper}, nil
}
