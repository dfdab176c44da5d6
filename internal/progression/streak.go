// ABOUTME: Streak continuation policy evaluated at save time.
// ABOUTME: Consecutive calendar days extend the streak; any gap restarts it.
package progression

import (
	"time"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
)

// NextStreak returns the streak counters that result from logging a workout
// on the given day against the prior aggregate state.
//
// A prior date that is neither yesterday nor today lands in the default
// branch and restarts the streak at 1. That includes future-dated prior
// dates (device clock changes); the silent reset there is intentional.
func NextStreak(prior *models.AggregateStats, today time.Time) (current, longest int) {
	switch prior.LastWorkoutDate {
	case "":
		// First-ever save.
		current = 1
	case models.DayKey(today.AddDate(0, 0, -1)):
		current = prior.CurrentStreak + 1
	case models.DayKey(today):
		// Same-day re-save: no double increment.
		current = prior.CurrentStreak
	default:
		current = 1
	}

	longest = prior.LongestStreak
	if current > longest {
		longest = current
	}
	return current, longest
}
