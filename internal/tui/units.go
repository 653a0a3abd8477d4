package tui

import (
	"fmt"

	"pacecalc/internal/pace"
)

// Units formats pace and speed for display
type Units struct {
	rounding pace.Rounding
}

// NewUnits creates a new Units helper using the calculator's rounding rule
func NewUnits(rounding pace.Rounding) Units {
	return Units{rounding: rounding}
}

// FormatPace formats minutes per km as "6:30 /km"
func (u Units) FormatPace(p float64) string {
	if p <= 0 {
		return "-"
	}
	return pace.FormatPaceClock(p, u.rounding) + " " + u.PaceLabel()
}

// FormatSpeed formats km/h as "9.2 km/h"
func (u Units) FormatSpeed(speed float64) string {
	if speed <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f %s", speed, u.SpeedLabel())
}

// Summary renders pace and speed of a result on one line
func (u Units) Summary(res pace.Result) string {
	return fmt.Sprintf("配速 %s · 时速 %s", u.FormatPace(res.Pace), u.FormatSpeed(res.Speed))
}

// PaceLabel returns the pace unit label
func (u Units) PaceLabel() string {
	return "/km"
}

// SpeedLabel returns the speed unit label
func (u Units) SpeedLabel() string {
	return "km/h"
}
