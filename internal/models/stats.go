// ABOUTME: AggregateStats model: the durable per-user progression singleton.
// ABOUTME: Totals, streaks, XP, and level derived from the workout history.
package models

// AggregateStats is the single persisted record of lifetime progression.
// Counters only ever grow under normal operation; the sole exception is an
// explicit reset. Level is always recomputed from XP, never trusted from disk.
type AggregateStats struct {
	TotalPushUps    int     `json:"total_push_ups"`
	TotalSquats     int     `json:"total_squats"`
	TotalAbs        int     `json:"total_abs"`
	CurrentStreak   int     `json:"current_streak"`
	LongestStreak   int     `json:"longest_streak"`
	LastWorkoutDate string  `json:"last_workout_date"` // day key, empty if never saved
	XP              float64 `json:"xp"`
	Level           int     `json:"level"`
}

// NewAggregateStats returns the zero state: all counters at zero, level 1.
func NewAggregateStats() *AggregateStats {
	return &AggregateStats{Level: 1}
}

// TotalExercises returns the combined lifetime exercise count.
func (s *AggregateStats) TotalExercises() int {
	return s.TotalPushUps + s.TotalSquats + s.TotalAbs
}
