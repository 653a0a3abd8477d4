package pace

import (
	"fmt"
	"math"
	"strings"
)

// Mode decides how a submit with text in both fields is treated
type Mode int

const (
	// ModeExclusive requires exactly one non-empty field
	ModeExclusive Mode = iota
	// ModeAutoFill treats the last edited field as authoritative and fills the other one
	ModeAutoFill
)

// String returns the config name of the mode
func (m Mode) String() string {
	if m == ModeAutoFill {
		return "autofill"
	}
	return "exclusive"
}

// ParseMode maps a config value to a Mode. Empty means the default.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "exclusive":
		return ModeExclusive, nil
	case "autofill":
		return ModeAutoFill, nil
	}
	return ModeExclusive, fmt.Errorf("unknown mode %q", s)
}

// Field tags which input the user edited last
type Field int

const (
	FieldNone Field = iota
	FieldPace
	FieldSpeed
)

// Input is the raw text of both fields plus the edit tag
type Input struct {
	PaceText  string
	SpeedText string
	Edited    Field
}

// Result is a successful calculation
type Result struct {
	Pace      float64 // min/km
	Speed     float64 // km/h
	PaceText  string  // pace field text after any auto-fill
	SpeedText string  // speed field text after any auto-fill
	Source    Field   // field the pace was derived from
	Distances []Row
	Times     []Row
}

// Calculator turns input text into tables. The zero value uses exclusive
// mode and half-even rounding.
type Calculator struct {
	Mode     Mode
	Rounding Rounding
}

// NewCalculator creates a calculator with the given mode and rounding
func NewCalculator(mode Mode, rounding Rounding) Calculator {
	return Calculator{Mode: mode, Rounding: rounding}
}

// BuildDistanceTable returns the time for each fixed distance at pace
func (c Calculator) BuildDistanceTable(pace float64) []Row {
	return buildDistanceTable(pace, c.Rounding)
}

// BuildTimeTable returns the distance covered in each fixed duration at pace
func (c Calculator) BuildTimeTable(pace float64) []Row {
	return buildTimeTable(pace)
}

// Calculate validates the input and builds both tables
func (c Calculator) Calculate(in Input) (Result, error) {
	paceText := strings.TrimSpace(in.PaceText)
	speedText := strings.TrimSpace(in.SpeedText)

	source, err := c.resolveSource(paceText, speedText, in.Edited)
	if err != nil {
		return Result{}, err
	}

	var p float64
	switch source {
	case FieldPace:
		p, err = ParsePace(paceText)
		if err != nil {
			return Result{}, err
		}
		if c.Mode == ModeAutoFill {
			speedText = FormatSpeedText(p)
		}
	case FieldSpeed:
		p, err = ParseSpeed(speedText)
		if err != nil {
			return Result{}, err
		}
		if c.Mode == ModeAutoFill {
			paceText = FormatPaceText(p, c.Rounding)
		}
	}

	return Result{
		Pace:      p,
		Speed:     PaceToSpeed(p),
		PaceText:  paceText,
		SpeedText: speedText,
		Source:    source,
		Distances: c.BuildDistanceTable(p),
		Times:     c.BuildTimeTable(p),
	}, nil
}

// resolveSource picks the field to parse
func (c Calculator) resolveSource(paceText, speedText string, edited Field) (Field, error) {
	hasPace := paceText != ""
	hasSpeed := speedText != ""

	if c.Mode == ModeAutoFill {
		switch {
		case edited == FieldPace && hasPace:
			return FieldPace, nil
		case edited == FieldSpeed && hasSpeed:
			return FieldSpeed, nil
		case edited != FieldNone && hasPace != hasSpeed:
			// authoritative field was cleared, fall back to the one with text
			if hasPace {
				return FieldPace, nil
			}
			return FieldSpeed, nil
		}
	}

	switch {
	case hasPace && hasSpeed:
		return FieldNone, ErrBothFieldsFilled
	case hasPace:
		return FieldPace, nil
	case hasSpeed:
		return FieldSpeed, nil
	}
	return FieldNone, ErrNoFieldFilled
}

// FormatSpeedText renders the speed for a pace with one decimal, e.g. 6.5 -> "9.2"
func FormatSpeedText(pace float64) string {
	return fmt.Sprintf("%.1f", PaceToSpeed(pace))
}

// FormatPaceText renders a pace as concatenated minute and second digits,
// e.g. 5.0 -> "500", 12.5 -> "1230". Seconds that round to 60 carry into minutes.
func FormatPaceText(pace float64, r Rounding) string {
	m, s := splitPace(pace, r)
	return fmt.Sprintf("%d%02d", m, s)
}

// splitPace separates a pace into whole minutes and rounded seconds
func splitPace(pace float64, r Rounding) (int, int) {
	minutes := math.Floor(pace)
	seconds := r.Round((pace - minutes) * 60)
	m, s := int(minutes), int(seconds)
	if s >= 60 {
		m += s / 60
		s %= 60
	}
	return m, s
}
