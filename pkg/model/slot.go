package model

import (
	"fmt"
	"regexp"
	"time"
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)
	timeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// IsValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidClockTime reports whether s is a zero-padded 24-hour HH:MM string.
func IsValidClockTime(s string) bool {
	return timeRegex.MatchString(s)
}

// SlotsOverlap tests half-open interval intersection between [aStart, aEnd)
// and [bStart, bEnd). Both intervals are zero-padded HH:MM strings on the
// same date, so lexical comparison is chronological. Touching endpoints do
// not overlap: a booking ending at 20:00 never conflicts with one starting
// at 20:00.
func SlotsOverlap(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// SlotEnd returns the instant at which the slot (date, endTime) elapses, in UTC.
func SlotEnd(date, endTime string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04", date+" "+endTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot end %q %q: %w", date, endTime, err)
	}
	return t.UTC(), nil
}

// SlotDuration returns the length of the half-open interval [startTime, endTime).
func SlotDuration(startTime, endTime string) (time.Duration, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", endTime, err)
	}
	if !end.After(start) {
		return 0, fmt.Errorf("end time %q must be after start time %q", endTime, startTime)
	}
	return end.Sub(start), nil
}
