package utils

import (
	"testing"
	"time"
)

func TestTodayAndClock(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 5, 0, 0, time.Local)
	if got := Today(now); got != "2025-03-10" {
		t.Errorf("expected 2025-03-10, got %q", got)
	}
	if got := Clock(now); got != "07:05" {
		t.Errorf("expected 07:05, got %q", got)
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Errorf("expected midnight, got %v", parsed)
	}
	if Today(parsed) != "2025-03-10" {
		t.Errorf("round trip mismatch: %v", parsed)
	}

	if _, err := ParseDate("03/10/2025"); err == nil {
		t.Error("expected error for wrong date format")
	}
}

func TestValidateClockFormat(t *testing.T) {
	valid := []string{"00:00", "09:00", "23:59"}
	for _, s := range valid {
		if !ValidateClockFormat(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	invalid := []string{"", "9:00am", "24:00", "12:60", "noon"}
	for _, s := range invalid {
		if ValidateClockFormat(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestClockMinutes(t *testing.T) {
	got, err := ClockMinutes("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 570 {
		t.Errorf("expected 570, got %d", got)
	}

	if _, err := ClockMinutes("bad"); err == nil {
		t.Error("expected error for malformed input")
	}
}
