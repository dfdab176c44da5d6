// ABOUTME: ExerciseEntry model for a single day's logged workout.
// ABOUTME: One entry per calendar day; re-saving a day replaces the stored entry.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseEntry holds the exercise counts logged for one calendar day.
type ExerciseEntry struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"` // day key, YYYY-MM-DD
	PushUps   int       `json:"push_ups"`
	Squats    int       `json:"squats"`
	Abs       int       `json:"abs"`
	CreatedAt time.Time `json:"created_at"`
}

// NewExerciseEntry creates an entry for the given day with a generated UUID.
func NewExerciseEntry(day time.Time, pushUps, squats, abs int) *ExerciseEntry {
	return &ExerciseEntry{
		ID:        uuid.New(),
		Date:      DayKey(day),
		PushUps:   pushUps,
		Squats:    squats,
		Abs:       abs,
		CreatedAt: time.Now(),
	}
}

// Total returns the combined number of exercises in the entry.
func (e *ExerciseEntry) Total() int {
	return e.PushUps + e.Squats + e.Abs
}

// IsEmpty reports whether the entry logs no exercises at all.
func (e *ExerciseEntry) IsEmpty() bool {
	return e.Total() == 0
}
