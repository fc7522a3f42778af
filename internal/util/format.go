package util

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as "2h 5m" or "35m".
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatSeconds renders a second count for display, switching units as the
// value grows: "45s", "12m 3s", "1h 4m".
func FormatSeconds(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}

// FormatPercent renders a 0-100 score as "87%".
func FormatPercent(score int) string {
	return fmt.Sprintf("%d%%", score)
}
