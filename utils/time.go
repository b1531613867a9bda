package utils

import (
	"os"
	"time"
)

// DisplayTime formats a scheduled time for patient-facing text, in the
// clinic's local timezone when CLINIC_TZ is set.
func DisplayTime(t time.Time) string {
	if tz := os.Getenv("CLINIC_TZ"); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			t = t.In(loc)
		}
	}
	return t.Format("Monday, January 2, 2006 at 3:04 PM")
}
