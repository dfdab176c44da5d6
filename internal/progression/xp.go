// ABOUTME: Pure XP and level math for workout progression.
// ABOUTME: Fixed per-exercise weights and a linear 100-XP-per-level curve.
package progression

import (
	"math"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
)

const (
	// Per-exercise XP weights. Fractional weights mean stored XP is fractional
	// too; rounding happens only at display time.
	PushUpXP = 2.0
	SquatXP  = 1.5
	AbXP     = 2.5

	// LevelXPSpan is the width of each level's XP band: level 1 spans
	// [0,100), level 2 spans [100,200), unbounded above.
	LevelXPSpan = 100.0
)

// XPForEntry returns the weighted XP earned by a day's entry.
func XPForEntry(e *models.ExerciseEntry) float64 {
	return float64(e.PushUps)*PushUpXP + float64(e.Squats)*SquatXP + float64(e.Abs)*AbXP
}

// LevelForXP returns the level for a total XP amount: floor(xp/100)+1.
func LevelForXP(xp float64) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(xp/LevelXPSpan)) + 1
}

// LevelProgress returns the position within the given level's XP band as a
// percentage in [0,100]. Display only, never persisted.
func LevelProgress(level int, xp float64) float64 {
	if level < 1 {
		level = 1
	}
	start := float64(level-1) * LevelXPSpan
	p := (xp - start) / LevelXPSpan * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
