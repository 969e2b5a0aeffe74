package clock

import (
	"strings"
	"time"
)

// formatTime renders t as "HH:MM" (or "H:MM" without the leading zero)
// and reports whether the separator is currently visible. With a flashing
// separator, visibility follows the wall-clock second at a 50% duty
// cycle.
func formatTime(t time.Time, is24Hour, leadingZero, flashing bool) (string, bool) {
	var hour string
	if is24Hour {
		hour = t.Format("15")
	} else {
		hour = t.Format("03")
	}
	if !leadingZero {
		hour = strings.TrimPrefix(hour, "0")
	}

	visible := true
	if flashing {
		visible = t.Second()%2 == 0
	}

	return hour + ":" + t.Format("04"), visible
}
