package service

const (
	// History sources
	SourcePace  = "pace"
	SourceSpeed = "speed"

	// Default number of history rows when the caller passes 0
	DefaultHistoryLimit = 50
)
