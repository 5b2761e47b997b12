package textformat

import (
	"fmt"
	"math"
	"strings"
)

// RoundingMode selects how numeric tags drop precision
type RoundingMode int

const (
	RoundTruncate RoundingMode = iota
	RoundCeiling
	RoundNearest
)

var roundingNames = map[RoundingMode]string{
	RoundTruncate: "truncate",
	RoundCeiling:  "ceiling",
	RoundNearest:  "nearest",
}

func (r RoundingMode) String() string {
	if s, ok := roundingNames[r]; ok {
		return s
	}
	return fmt.Sprintf("RoundingMode(%d)", int(r))
}

// ParseRoundingMode resolves "truncate", "ceiling" or "nearest"
func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for mode, n := range roundingNames {
		if n == name {
			return mode, nil
		}
	}
	return RoundTruncate, fmt.Errorf("unknown rounding mode %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (r RoundingMode) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *RoundingMode) UnmarshalText(text []byte) error {
	mode, err := ParseRoundingMode(string(text))
	if err != nil {
		return err
	}
	*r = mode
	return nil
}

// apply rounds value to the given decimals. Truncation is toward zero,
// nearest rounds halves away from zero.
func (r RoundingMode) apply(value float64, decimals int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}

	scale := math.Pow(10, float64(decimals))
	scaled := value * scale
	if math.IsInf(scaled, 0) {
		// already too large to carry a fraction at this precision
		return value
	}
	switch r {
	case RoundCeiling:
		scaled = math.Ceil(scaled)
	case RoundNearest:
		scaled = math.Round(scaled)
	default:
		scaled = math.Trunc(scaled)
	}
	return scaled / scale
}
