package pomodoro

import (
	"fmt"
	"math"
	"time"
)

// FormatCountdown renders remaining time for the per-tick label.
// Minutes are floored while seconds are rounded up, so 59.5s renders
// as "00:60". Callers rely on that output; keep it.
func FormatCountdown(remaining time.Duration) string {
	seconds := clampSeconds(remaining)
	minutes := int(math.Floor(seconds / 60))
	rest := int(math.Ceil(math.Mod(seconds, 60)))
	return fmt.Sprintf("%02d:%02d", minutes, rest)
}

// FormatStatic renders a duration with both fields truncated. It is used
// for the label shown right after a phase switch.
func FormatStatic(duration time.Duration) string {
	seconds := clampSeconds(duration)
	minutes := int(seconds / 60)
	rest := int(math.Mod(seconds, 60))
	return fmt.Sprintf("%02d:%02d", minutes, rest)
}

func clampSeconds(duration time.Duration) float64 {
	if duration < 0 {
		return 0
	}
	return duration.Seconds()
}
