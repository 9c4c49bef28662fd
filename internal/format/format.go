// Package format renders numeric zone bounds as display strings.
package format

import "fmt"

// NoBounds is the sentinel rendered when a zone has neither bound. Existing
// consumers match this exact string.
const NoBounds = "No bounds"

// Formatter renders a single bound value. A nil value is an open-ended
// bound and renders as the empty string; this is a distinct case from
// formatting zero.
type Formatter interface {
	FormatValue(v *float64) string
}

// HR formats heart-rate bounds, e.g. "92bpm". Fractional values are
// truncated, not rounded: 92.9 renders as "92bpm".
type HR struct{}

// FormatValue implements Formatter.
func (HR) FormatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%dbpm", int(*v))
}

// Pace formats seconds-per-500m as "M:SS/500m" with zero-padded seconds.
// Fractional seconds are truncated and the minutes component is unbounded:
// 3661 renders as "61:01/500m".
type Pace struct{}

// FormatValue implements Formatter.
func (Pace) FormatValue(v *float64) string {
	if v == nil {
		return ""
	}
	total := int(*v)
	return fmt.Sprintf("%d:%02d/500m", total/60, total%60)
}

// VerbosePace formats seconds-per-500m as "M min S sec/500m", omitting the
// minutes clause when zero and the seconds clause when zero.
type VerbosePace struct{}

// FormatValue implements Formatter.
func (VerbosePace) FormatValue(v *float64) string {
	if v == nil {
		return ""
	}
	total := int(*v)
	minutes, seconds := total/60, total%60
	switch {
	case minutes == 0:
		return fmt.Sprintf("%d sec/500m", seconds)
	case seconds == 0:
		return fmt.Sprintf("%d min/500m", minutes)
	default:
		return fmt.Sprintf("%d min %d sec/500m", minutes, seconds)
	}
}

// FormatZoneBounds renders a bound pair as a range string: "lower-upper"
// when both are present, "<upper" when only the upper bound exists,
// ">lower" when only the lower bound exists, and NoBounds when neither
// does. The one-sided prefix glyphs are a display contract, reproduced
// exactly for existing consumers.
func FormatZoneBounds(f Formatter, lower, upper *float64) string {
	switch {
	case lower == nil && upper == nil:
		return NoBounds
	case lower == nil:
		return "<" + f.FormatValue(upper)
	case upper == nil:
		return ">" + f.FormatValue(lower)
	default:
		return f.FormatValue(lower) + "-" + f.FormatValue(upper)
	}
}
