package playtime

import "fmt"

// FormatDuration renders milliseconds as hours and minutes, e.g. "2ч 15м".
// Durations under an hour are shown in minutes only.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / 3_600_000
	minutes := ms % 3_600_000 / 60_000
	if hours > 0 {
		return fmt.Sprintf("%dч %dм", hours, minutes)
	}
	return fmt.Sprintf("%dм", minutes)
}
