package timeutil

import (
	"fmt"
	"time"
)

// ClockLayout defines the canonical timestamp format used in history entries.
const ClockLayout = time.RFC3339

// FormatTimestamp formats a time for history/display payloads.
func FormatTimestamp(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatClock renders a number of remaining seconds as M:SS for the countdown.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
