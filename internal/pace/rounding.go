package pace

import (
	"fmt"
	"math"
)

// Rounding selects how fractional seconds are resolved to whole seconds
type Rounding int

const (
	RoundHalfEven Rounding = iota // 12658.5 -> 12658 (default)
	RoundHalfAway                 // 12658.5 -> 12659
)

// Round applies the rounding rule to x
func (r Rounding) Round(x float64) float64 {
	if r == RoundHalfAway {
		return math.Round(x)
	}
	return math.RoundToEven(x)
}

// String returns the config name of the rounding rule
func (r Rounding) String() string {
	if r == RoundHalfAway {
		return "half_away"
	}
	return "half_even"
}

// ParseRounding maps a config value to a Rounding. Empty means the default.
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "", "half_even":
		return RoundHalfEven, nil
	case "half_away":
		return RoundHalfAway, nil
	}
	return RoundHalfEven, fmt.Errorf("unknown rounding %q", s)
}
