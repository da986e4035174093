package common

const (
	// NowLabel is shown as lastSeen for members that are online right now.
	NowLabel = "Сейчас"

	// LastSeenLayout formats lastSeen for members that are not online.
	LastSeenLayout = "02.01.2006, 15:04:05"

	// DayLayout keys per-day playtime buckets.
	DayLayout = "2006-01-02"
)
