// ABOUTME: Tests for entry/stats models and day helpers.
// ABOUTME: Day comparisons are by calendar identity only.
package models

import (
	"testing"
	"time"
)

func TestNewExerciseEntry(t *testing.T) {
	day := time.Date(2026, 8, 31, 23, 59, 0, 0, time.Local)
	e := NewExerciseEntry(day, 10, 20, 5)

	if e.Date != "2026-08-31" {
		t.Errorf("Date = %s, want 2026-08-31", e.Date)
	}
	if e.Total() != 35 {
		t.Errorf("Total = %d, want 35", e.Total())
	}
	if e.IsEmpty() {
		t.Error("entry with counts reported empty")
	}
	if NewExerciseEntry(day, 0, 0, 0).IsEmpty() != true {
		t.Error("zero entry not reported empty")
	}
}

func TestNewAggregateStats(t *testing.T) {
	s := NewAggregateStats()
	if s.Level != 1 {
		t.Errorf("zero-state level = %d, want 1", s.Level)
	}
	if s.LastWorkoutDate != "" {
		t.Errorf("zero-state LastWorkoutDate = %q, want empty", s.LastWorkoutDate)
	}
}

func TestDayKeyIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 8, 31, 0, 1, 0, 0, time.Local)
	night := time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local)

	if DayKey(morning) != DayKey(night) {
		t.Error("same calendar day produced different keys")
	}
	if !SameDay(morning, night) {
		t.Error("SameDay false for the same calendar day")
	}
	if SameDay(night, night.Add(time.Minute)) {
		t.Error("SameDay true across midnight")
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2026-08-31")
	if err != nil {
		t.Fatalf("ParseDay failed: %v", err)
	}
	if DayKey(day) != "2026-08-31" {
		t.Errorf("round trip gave %s", DayKey(day))
	}
	if _, err := ParseDay("31/08/2026"); err == nil {
		t.Error("expected error for wrong format")
	}
}
