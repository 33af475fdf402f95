package common

import (
	"strconv"
	"strings"
	"time"
)

// ParsePositiveInt parses positive integers with fallback.
func ParsePositiveInt(value string, fallback int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback, false
	}
	return parsed, true
}

// ParseDate parses a YYYY-MM-DD query parameter in the given timezone.
// Blank input returns the zero time, which filters treat as unbounded.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, true
	}
	if loc == nil {
		loc = time.UTC
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// EndOfDay pushes a date boundary to the last instant of that day so an
// inclusive "to" filter covers the whole day.
func EndOfDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
