// ABOUTME: Workout session service orchestrating progression and storage.
// ABOUTME: Load, save, and reset; mutations are serialized through one mutex.
package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/achievements"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/progression"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/storage"
)

// Service is the engine entry point consumed by the presentation layer.
// There is a single local user; the mutex keeps saveWorkout and resetAll
// from interleaving against the same keys.
type Service struct {
	repo storage.Repository
	mu   sync.Mutex
}

// NewService creates a Service over the given repository.
func NewService(repo storage.Repository) *Service {
	return &Service{repo: repo}
}

// SaveResult reports the outcome of a successful save.
type SaveResult struct {
	Entry    *models.ExerciseEntry
	Stats    *models.AggregateStats
	XPEarned float64

	// NewlyUnlocked lists achievements whose requirement flipped from false
	// to true during this save. Computed by diffing evaluations; nothing is
	// persisted about unlock state.
	NewlyUnlocked []achievements.Achievement
}

// LoadDailyState reads the entry for the given day (nil if none) and the
// aggregate stats. Pure read; no mutation.
func (s *Service) LoadDailyState(day time.Time) (*models.ExerciseEntry, *models.AggregateStats, error) {
	entry, err := s.repo.Entry(models.DayKey(day))
	if err != nil {
		return nil, nil, fmt.Errorf("load entry: %w", err)
	}
	stats, err := s.repo.Stats()
	if err != nil {
		return nil, nil, fmt.Errorf("load stats: %w", err)
	}
	stats.Level = progression.LevelForXP(stats.XP)
	return entry, stats, nil
}

// SaveWorkout records the day's exercise counts, updates the aggregate, and
// persists both atomically. Re-saving a day replaces that day's entry; its
// previous contribution is subtracted from the aggregate before the new one
// is added, so edits do not double-count.
func (s *Service) SaveWorkout(day time.Time, pushUps, squats, abs int) (*SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pushUps < 0 || squats < 0 || abs < 0 {
		return nil, ErrNegativeCount
	}

	entry := models.NewExerciseEntry(day, pushUps, squats, abs)
	if entry.IsEmpty() {
		return nil, ErrEmptyWorkout
	}

	prior, err := s.repo.Stats()
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	prior.Level = progression.LevelForXP(prior.XP)

	previous, err := s.repo.Entry(entry.Date)
	if err != nil {
		return nil, fmt.Errorf("load entry: %w", err)
	}

	xpEarned := progression.XPForEntry(entry)
	currentStreak, longestStreak := progression.NextStreak(prior, day)

	next := *prior
	if previous != nil {
		// Replacing an already-logged day: back out the old entry's
		// contribution so the edit does not stack on top of it.
		next.TotalPushUps -= previous.PushUps
		next.TotalSquats -= previous.Squats
		next.TotalAbs -= previous.Abs
		next.XP -= progression.XPForEntry(previous)
	}
	next.TotalPushUps += entry.PushUps
	next.TotalSquats += entry.Squats
	next.TotalAbs += entry.Abs
	next.XP += xpEarned
	if next.XP < 0 {
		next.XP = 0
	}
	next.Level = progression.LevelForXP(next.XP)
	next.CurrentStreak = currentStreak
	next.LongestStreak = longestStreak
	next.LastWorkoutDate = entry.Date

	if err := s.repo.SaveDay(entry, &next); err != nil {
		return nil, fmt.Errorf("save workout: %w", err)
	}

	return &SaveResult{
		Entry:         entry,
		Stats:         &next,
		XPEarned:      xpEarned,
		NewlyUnlocked: newlyUnlocked(prior, &next),
	}, nil
}

// ResetAll clears every persisted entry and returns the aggregate to the
// zero state. Irreversible; confirmation UX belongs to the caller.
func (s *Service) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Reset(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

func newlyUnlocked(before, after *models.AggregateStats) []achievements.Achievement {
	var out []achievements.Achievement
	for _, a := range achievements.Catalog() {
		if a.Unlocked(after) && !a.Unlocked(before) {
			out = append(out, a)
		}
	}
	return out
}
