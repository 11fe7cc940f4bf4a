package render

import (
	"fmt"
	"math"
	"strconv"
)

// FormatDuration renders a number of seconds as 2h03m04s, 03m04s, or 04s,
// with milliseconds appended when present (04.500s).
func FormatDuration(seconds float64) string {
	whole := int64(seconds)
	msec := int64(math.Round(1000 * (seconds - float64(whole))))
	if msec >= 1000 {
		whole++
		msec -= 1000
	}

	hours := whole / 3600
	mins := (whole / 60) % 60
	secs := fmt.Sprintf("%02d", whole%60)
	if msec > 0 {
		secs += fmt.Sprintf(".%03d", msec)
	}

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%02dm%ss", hours, mins, secs)
	case mins > 0:
		return fmt.Sprintf("%02dm%ss", mins, secs)
	default:
		return secs + "s"
	}
}

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count using 1024-based units, rounded to two
// decimal places.
func FormatBytes(size float64) string {
	unit := 0
	for size > 1024 && unit+1 < len(byteUnits) {
		size /= 1024
		unit++
	}
	rounded := math.Round(size*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + byteUnits[unit]
}
