package utils

import (
	"fmt"
	"time"
)

// HoursSince returns the fractional hours between t and now, clamped at zero
// for timestamps in the future.
func HoursSince(t, now time.Time) float64 {
	h := now.Sub(t).Hours()
	if h < 0 {
		return 0
	}
	return h
}

// TimeAgo renders an age in hours as "45m ago", "5h ago" or "3d ago".
func TimeAgo(hoursOld float64) string {
	switch {
	case hoursOld < 1:
		return fmt.Sprintf("%dm ago", int(hoursOld*60))
	case hoursOld < 24:
		return fmt.Sprintf("%dh ago", int(hoursOld))
	default:
		return fmt.Sprintf("%dd ago", int(hoursOld/24))
	}
}

// PrettyDate formats t for human readable notifications.
func PrettyDate(t time.Time) string {
	return t.Format("Mon, 02 Jan 2006 15:04 MST")
}
