// ABOUTME: Tests for the Badger-backed store.
// ABOUTME: Round trips, overwrites, malformed payload fallback, reset.
package storage

import (
	"testing"
	"time"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

var testDay = time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)

func TestEntryAbsent(t *testing.T) {
	s := setupStore(t)

	entry, err := s.Entry("2026-08-31")
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if entry != nil {
		t.Errorf("expected nil entry, got %+v", entry)
	}
}

func TestStatsDefaultZeroState(t *testing.T) {
	s := setupStore(t)

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Level != 1 || stats.XP != 0 || stats.TotalExercises() != 0 {
		t.Errorf("expected zero state, got %+v", stats)
	}
}

func TestSaveDayRoundTrip(t *testing.T) {
	s := setupStore(t)

	entry := models.NewExerciseEntry(testDay, 10, 20, 5)
	stats := models.NewAggregateStats()
	stats.TotalPushUps = 10
	stats.TotalSquats = 20
	stats.TotalAbs = 5
	stats.XP = 62.5
	stats.CurrentStreak = 1
	stats.LongestStreak = 1
	stats.LastWorkoutDate = entry.Date

	if err := s.SaveDay(entry, stats); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	got, err := s.Entry(entry.Date)
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if got == nil {
		t.Fatal("entry not found after save")
	}
	if got.ID != entry.ID {
		t.Error("ID mismatch")
	}
	if got.PushUps != 10 || got.Squats != 20 || got.Abs != 5 {
		t.Errorf("counts mismatch: %+v", got)
	}

	gotStats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if gotStats.XP != 62.5 {
		t.Errorf("XP = %v, want 62.5 (fraction must survive)", gotStats.XP)
	}
	if gotStats.LastWorkoutDate != entry.Date {
		t.Errorf("LastWorkoutDate = %s, want %s", gotStats.LastWorkoutDate, entry.Date)
	}
}

func TestSaveDayOverwritesEntry(t *testing.T) {
	s := setupStore(t)

	first := models.NewExerciseEntry(testDay, 10, 0, 0)
	if err := s.SaveDay(first, models.NewAggregateStats()); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	second := models.NewExerciseEntry(testDay, 5, 5, 5)
	if err := s.SaveDay(second, models.NewAggregateStats()); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	got, err := s.Entry(second.Date)
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if got.PushUps != 5 || got.Squats != 5 || got.Abs != 5 {
		t.Errorf("re-save must replace the day's entry, got %+v", got)
	}
}

func TestMalformedStatsFallsBackToZeroState(t *testing.T) {
	s := setupStore(t)

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(statsKey), []byte("not json{{{"))
	})
	if err != nil {
		t.Fatalf("write garbage: %v", err)
	}

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Level != 1 || stats.XP != 0 {
		t.Errorf("expected zero-state fallback, got %+v", stats)
	}
}

func TestMalformedEntryTreatedAsAbsent(t *testing.T) {
	s := setupStore(t)

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(workoutKey("2026-08-31"), []byte("garbage"))
	})
	if err != nil {
		t.Fatalf("write garbage: %v", err)
	}

	entry, err := s.Entry("2026-08-31")
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if entry != nil {
		t.Errorf("expected nil for malformed entry, got %+v", entry)
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := setupStore(t)

	entry := models.NewExerciseEntry(testDay, 10, 10, 10)
	stats := models.NewAggregateStats()
	stats.XP = 100
	if err := s.SaveDay(entry, stats); err != nil {
		t.Fatalf("SaveDay failed: %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	got, _ := s.Entry(entry.Date)
	if got != nil {
		t.Error("entry survived reset")
	}
	gotStats, _ := s.Stats()
	if gotStats.XP != 0 || gotStats.Level != 1 {
		t.Errorf("stats survived reset: %+v", gotStats)
	}
}
