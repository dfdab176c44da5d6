// ABOUTME: Tests for the workout session service.
// ABOUTME: Save scenarios, streak transitions, same-day edits, reset.
package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/achievements"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/progression"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/storage"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	repo, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return NewService(repo)
}

var day1 = time.Date(2026, 8, 1, 8, 0, 0, 0, time.Local)

func TestFirstSave(t *testing.T) {
	svc := setupService(t)

	result, err := svc.SaveWorkout(day1, 10, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 20.0, result.XPEarned)
	assert.Equal(t, 20.0, result.Stats.XP)
	assert.Equal(t, 1, result.Stats.Level)
	assert.Equal(t, 1, result.Stats.CurrentStreak)
	assert.Equal(t, 10, result.Stats.TotalPushUps)
	assert.Equal(t, models.DayKey(day1), result.Stats.LastWorkoutDate)
}

func TestEmptyWorkoutRejected(t *testing.T) {
	svc := setupService(t)

	_, err := svc.SaveWorkout(day1, 0, 0, 0)
	require.ErrorIs(t, err, ErrEmptyWorkout)

	// Nothing may have been mutated.
	entry, stats, err := svc.LoadDailyState(day1)
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Equal(t, 0.0, stats.XP)
	assert.Equal(t, 0, stats.CurrentStreak)
}

func TestNegativeCountsRejected(t *testing.T) {
	svc := setupService(t)

	_, err := svc.SaveWorkout(day1, -1, 5, 5)
	require.ErrorIs(t, err, ErrNegativeCount)
}

func TestConsecutiveDaysExtendStreak(t *testing.T) {
	svc := setupService(t)

	for i := 0; i < 3; i++ {
		result, err := svc.SaveWorkout(day1.AddDate(0, 0, i), 5, 5, 5)
		require.NoError(t, err)
		assert.Equal(t, i+1, result.Stats.CurrentStreak)
		assert.Equal(t, i+1, result.Stats.LongestStreak)
	}
}

func TestSkippedDayResetsStreak(t *testing.T) {
	svc := setupService(t)

	_, err := svc.SaveWorkout(day1, 5, 5, 5)
	require.NoError(t, err)
	_, err = svc.SaveWorkout(day1.AddDate(0, 0, 1), 5, 5, 5)
	require.NoError(t, err)

	result, err := svc.SaveWorkout(day1.AddDate(0, 0, 3), 5, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.CurrentStreak)
	assert.Equal(t, 2, result.Stats.LongestStreak, "longest streak must survive the reset")
}

func TestSameDayResaveReplacesContribution(t *testing.T) {
	svc := setupService(t)

	_, err := svc.SaveWorkout(day1, 10, 0, 0)
	require.NoError(t, err)

	// Editing the day down replaces the old entry's totals and XP instead of
	// stacking on top of them.
	result, err := svc.SaveWorkout(day1, 5, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 10.0, result.XPEarned, "xpEarned reports this call's entry")
	assert.Equal(t, 5, result.Stats.TotalPushUps)
	assert.Equal(t, 10.0, result.Stats.XP)
	assert.Equal(t, 1, result.Stats.CurrentStreak, "same-day edit must not touch the streak")

	entry, _, err := svc.LoadDailyState(day1)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 5, entry.PushUps)
}

func TestLevelAndProgressScenario(t *testing.T) {
	svc := setupService(t)

	// 125 push-ups = 250 XP → level 3, halfway through its band.
	result, err := svc.SaveWorkout(day1, 125, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 250.0, result.Stats.XP)
	assert.Equal(t, 3, result.Stats.Level)
	assert.Equal(t, 50.0, progression.LevelProgress(result.Stats.Level, result.Stats.XP))
}

func TestNewlyUnlockedReportedOnce(t *testing.T) {
	svc := setupService(t)

	result, err := svc.SaveWorkout(day1, 10, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, result.NewlyUnlocked)
	assert.Equal(t, "pushup_10", result.NewlyUnlocked[0].ID)

	// Re-saving the same counts flips nothing new.
	result, err = svc.SaveWorkout(day1, 10, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, result.NewlyUnlocked)
}

func TestLoadDailyStateAfterSave(t *testing.T) {
	svc := setupService(t)

	_, err := svc.SaveWorkout(day1, 3, 4, 5)
	require.NoError(t, err)

	entry, stats, err := svc.LoadDailyState(day1)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 3, entry.PushUps)
	assert.Equal(t, 4, entry.Squats)
	assert.Equal(t, 5, entry.Abs)
	assert.Equal(t, 12, stats.TotalExercises())
}

func TestResetAll(t *testing.T) {
	svc := setupService(t)

	_, err := svc.SaveWorkout(day1, 100, 100, 100)
	require.NoError(t, err)

	require.NoError(t, svc.ResetAll())

	entry, stats, err := svc.LoadDailyState(day1)
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Equal(t, 0, stats.TotalExercises())
	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 0, stats.LongestStreak)
	assert.Equal(t, 0.0, stats.XP)
	assert.Equal(t, 1, stats.Level)
	assert.Empty(t, achievements.Unlocked(stats, ""))
}

func TestStreakAfterResetStartsFresh(t *testing.T) {
	svc := setupService(t)

	_, err := svc.SaveWorkout(day1, 5, 0, 0)
	require.NoError(t, err)
	require.NoError(t, svc.ResetAll())

	result, err := svc.SaveWorkout(day1.AddDate(0, 0, 5), 5, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.CurrentStreak)
	assert.Equal(t, 1, result.Stats.LongestStreak)
}
