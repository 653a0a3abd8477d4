package pace

import "fmt"

// DistanceEntry is a fixed row of the distance-to-time table
type DistanceEntry struct {
	Label string
	Km    float64
}

// DurationEntry is a fixed row of the time-to-distance table
type DurationEntry struct {
	Label   string
	Minutes int
}

// Row is one rendered table line
type Row struct {
	Label string
	Value string
}

// Standard distances in km
const (
	DistanceHalfMarathon = 21.0975
	DistanceMarathon     = 42.195
)

var distances = [...]DistanceEntry{
	{"100m", 0.1},
	{"200m", 0.2},
	{"400m", 0.4},
	{"800m", 0.8},
	{"1KM", 1.0},
	{"3KM", 3.0},
	{"5KM", 5.0},
	{"10KM", 10.0},
	{"半马", DistanceHalfMarathon},
	{"全马", DistanceMarathon},
}

var durations = [...]DurationEntry{
	{"1分", 1},
	{"5分", 5},
	{"10分", 10},
	{"15分", 15},
	{"20分", 20},
	{"30分", 30},
	{"40分", 40},
	{"60分", 60},
	{"90分", 90},
	{"120分", 120},
}

// Table headers
const (
	DistanceHeader     = "距离"
	ElapsedTimeHeader  = "用时（时:分:秒）"
	DurationHeader     = "时间"
	DistanceKmHeader   = "可跑距离（km）"
	DistanceTableTitle = "距离 → 时间"
	TimeTableTitle     = "时间 → 距离"
)

// Distances returns the fixed distance entries in table order
func Distances() []DistanceEntry {
	out := make([]DistanceEntry, len(distances))
	copy(out, distances[:])
	return out
}

// Durations returns the fixed time entries in table order
func Durations() []DurationEntry {
	out := make([]DurationEntry, len(durations))
	copy(out, durations[:])
	return out
}

// FormatDuration renders whole seconds as HH:MM:SS. Hours grow past two digits as needed.
func FormatDuration(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatKm renders a distance with exactly two decimals
func FormatKm(km float64) string {
	return fmt.Sprintf("%.2f", km)
}

// FormatPaceClock renders a pace as M:SS, e.g. 6.5 -> "6:30"
func FormatPaceClock(pace float64, r Rounding) string {
	m, s := splitPace(pace, r)
	return fmt.Sprintf("%d:%02d", m, s)
}

// SecondsFor returns the whole seconds needed to cover km at the given pace
func SecondsFor(km, pace float64, r Rounding) int {
	totalMinutes := km * pace
	return int(r.Round(totalMinutes * 60))
}

// KmFor returns the distance covered in minutes at the given pace
func KmFor(minutes int, pace float64) float64 {
	return float64(minutes) / pace
}

// buildDistanceTable renders the time needed for every fixed distance
func buildDistanceTable(pace float64, r Rounding) []Row {
	rows := make([]Row, 0, len(distances))
	for _, d := range distances {
		rows = append(rows, Row{
			Label: d.Label,
			Value: FormatDuration(SecondsFor(d.Km, pace, r)),
		})
	}
	return rows
}

// buildTimeTable renders the distance covered for every fixed duration
func buildTimeTable(pace float64) []Row {
	rows := make([]Row, 0, len(durations))
	for _, d := range durations {
		rows = append(rows, Row{
			Label: d.Label,
			Value: FormatKm(KmFor(d.Minutes, pace)),
		})
	}
	return rows
}
