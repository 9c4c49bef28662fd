package app

import (
	"ergzones/internal/domain"
	"ergzones/internal/format"
)

// ZoneResult is one row of a calculation response: the numeric bounds plus
// their display renderings. Bounds are nullable for open-ended zones.
type ZoneResult struct {
	ZoneName            string   `json:"zone_name"`
	LowerBound          *float64 `json:"lower_bound"`
	UpperBound          *float64 `json:"upper_bound"`
	LowerBoundFormatted string   `json:"lower_bound_formatted"`
	UpperBoundFormatted string   `json:"upper_bound_formatted"`
	RangeFormatted      string   `json:"range_formatted"`
}

// BuildReport computes and formats every zone for the benchmark, in
// configuration order.
func BuildReport(calc *Calculator, f format.Formatter, b domain.Benchmark) ([]ZoneResult, error) {
	lowers, err := calc.AllLowerBounds(b)
	if err != nil {
		return nil, err
	}
	uppers, err := calc.AllUpperBounds(b)
	if err != nil {
		return nil, err
	}

	results := make([]ZoneResult, 0, len(lowers))
	for i, lb := range lowers {
		ub := uppers[i]
		results = append(results, ZoneResult{
			ZoneName:            lb.Zone,
			LowerBound:          lb.Value,
			UpperBound:          ub.Value,
			LowerBoundFormatted: f.FormatValue(lb.Value),
			UpperBoundFormatted: f.FormatValue(ub.Value),
			RangeFormatted:      format.FormatZoneBounds(f, lb.Value, ub.Value),
		})
	}
	return results, nil
}
