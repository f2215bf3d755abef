package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of the wall-clock day all schedule math
// operates in.
const MinutesPerDay = 24 * 60

// ParseClock parses an "HH:MM" 24-hour time string into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range in %q", s)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range in %q", s)
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as "HH:MM". The input is
// normalized first, so callers may pass raw offsets that under- or overflow
// the day.
func FormatClock(minutes int) string {
	m := Normalize(minutes)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Normalize wraps an arbitrary minute offset into [0, 1440). Negative values
// wrap to the previous day's equivalent minute (06:00 − 7h ⇒ 23:00).
func Normalize(minutes int) int {
	m := minutes % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return m
}

// CircularDistance returns the shortest distance in minutes between two
// times of day, treating the day as a ring (23:30 and 00:30 are 60 minutes
// apart, not 1380).
func CircularDistance(a, b int) int {
	d := Normalize(a) - Normalize(b)
	if d < 0 {
		d = -d
	}
	if d > MinutesPerDay/2 {
		d = MinutesPerDay - d
	}
	return d
}
