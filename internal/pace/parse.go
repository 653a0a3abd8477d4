package pace

import (
	"math"
	"strconv"
	"strings"
)

// MinutesPerHour relates pace (min/km) and speed (km/h): speed = 60 / pace
const MinutesPerHour = 60.0

// ParsePace parses concatenated minute and second digits into minutes per km.
// The last two digits are seconds, the rest are minutes: "630" is 6:30, "1230" is 12:30.
func ParsePace(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if len(text) < 3 || len(text) > 4 || !isDigits(text) {
		return 0, errInvalidPaceFormat
	}

	seconds, _ := strconv.Atoi(text[len(text)-2:])
	minutes, _ := strconv.Atoi(text[:len(text)-2])

	if seconds >= 60 {
		return 0, ErrInvalidSeconds
	}
	if minutes == 0 && seconds == 0 {
		return 0, ErrZeroPace
	}

	return float64(minutes) + float64(seconds)/60, nil
}

// ParseSpeed parses a decimal km/h value and returns the matching pace in minutes per km
func ParseSpeed(text string) (float64, error) {
	text = strings.TrimSpace(text)
	speed, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return 0, errInvalidSpeedFormat
	}
	if speed == 0 {
		return 0, ErrZeroSpeed
	}
	if speed < 0 {
		return 0, errInvalidSpeedFormat
	}

	pace := SpeedToPace(speed)
	if !fitsTables(pace) {
		return 0, errInvalidSpeedFormat
	}
	return pace, nil
}

// fitsTables reports whether the longest distance at pace still fits in whole seconds
func fitsTables(pace float64) bool {
	if math.IsInf(pace, 0) {
		return false
	}
	return DistanceMarathon*pace*MinutesPerHour < math.MaxInt64
}

// PaceToSpeed converts minutes per km to km/h
func PaceToSpeed(pace float64) float64 {
	if pace <= 0 {
		return 0
	}
	return MinutesPerHour / pace
}

// SpeedToPace converts km/h to minutes per km
func SpeedToPace(speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return MinutesPerHour / speed
}

// isDigits reports whether s is made only of ASCII digits
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
