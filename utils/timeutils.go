package utils

import (
	"time"
)

// FormatMinuteOfDay renders a minute-of-day as a short 12-hour clock label, e.g. "8:05 AM"
func FormatMinuteOfDay(minutes int) string {
	return time.Date(2000, time.January, 1, 0, minutes, 0, 0, time.UTC).Format("3:04 PM")
}

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
