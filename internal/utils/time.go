package utils

import (
	"time"

	"droplet/internal/constants"
)

// Today returns the date string (YYYY-MM-DD) for the given instant.
func Today(now time.Time) string {
	return now.Format(constants.DateFormat)
}

// Clock returns the clock time string (HH:MM, 24-hour) for the given instant.
func Clock(now time.Time) string {
	return now.Format(constants.TimeFormat)
}

// ParseDate parses a date string (YYYY-MM-DD) in the local timezone at midnight.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, dateStr, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// ParseClock parses a clock time string in the standard format (HH:MM).
func ParseClock(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateClockFormat checks if the string matches the standard clock time format.
func ValidateClockFormat(timeStr string) bool {
	_, err := ParseClock(timeStr)
	return err == nil
}

// ClockMinutes parses a clock time string (HH:MM) and returns minutes from midnight.
func ClockMinutes(timeStr string) (int, error) {
	t, err := ParseClock(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
