// ABOUTME: Calendar-day helpers shared across storage and progression.
// ABOUTME: Days are compared by date identity only, never by time of day.
package models

import "time"

// DayFormat is the canonical day key layout used in storage keys and stats.
const DayFormat = "2006-01-02"

// DayKey formats a time as its calendar-day key, dropping the time component.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a day key back into a time at midnight local time.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.Local)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}
