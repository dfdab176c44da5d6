// ABOUTME: Achievement types and requirement rule descriptors.
// ABOUTME: Requirements are serializable threshold conditions, not closures.
package achievements

import (
	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
)

// Category groups achievements for display filtering.
type Category string

const (
	CategoryPushUps Category = "push-ups"
	CategorySquats  Category = "squats"
	CategoryAbs     Category = "abs"
	CategoryTotal   Category = "total"
	CategoryStreaks Category = "streaks"
	CategoryLevels  Category = "levels"
	CategoryXP      Category = "xp"
	CategorySpecial Category = "special"
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryPushUps,
	CategorySquats,
	CategoryAbs,
	CategoryTotal,
	CategoryStreaks,
	CategoryLevels,
	CategoryXP,
	CategorySpecial,
}

// IsValid reports whether c names a known category.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Rarity is the display tier of an achievement.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Metric names an AggregateStats field a condition can read.
type Metric string

const (
	MetricTotalPushUps   Metric = "total_push_ups"
	MetricTotalSquats    Metric = "total_squats"
	MetricTotalAbs       Metric = "total_abs"
	MetricTotalExercises Metric = "total_exercises"
	MetricCurrentStreak  Metric = "current_streak"
	MetricLongestStreak  Metric = "longest_streak"
	MetricLevel          Metric = "level"
	MetricXP             Metric = "xp"
)

// Condition is a single at-least threshold on one stats metric.
type Condition struct {
	Metric    Metric  `json:"metric"`
	Threshold float64 `json:"threshold"`
}

// Met reports whether the condition holds for the given stats.
func (c Condition) Met(stats *models.AggregateStats) bool {
	return metricValue(stats, c.Metric) >= c.Threshold
}

// Requirement is the conjunction of its conditions.
type Requirement []Condition

// Met reports whether every condition holds for the given stats.
func (r Requirement) Met(stats *models.AggregateStats) bool {
	for _, c := range r {
		if !c.Met(stats) {
			return false
		}
	}
	return true
}

func metricValue(stats *models.AggregateStats, m Metric) float64 {
	switch m {
	case MetricTotalPushUps:
		return float64(stats.TotalPushUps)
	case MetricTotalSquats:
		return float64(stats.TotalSquats)
	case MetricTotalAbs:
		return float64(stats.TotalAbs)
	case MetricTotalExercises:
		return float64(stats.TotalExercises())
	case MetricCurrentStreak:
		return float64(stats.CurrentStreak)
	case MetricLongestStreak:
		return float64(stats.LongestStreak)
	case MetricLevel:
		return float64(stats.Level)
	case MetricXP:
		return stats.XP
	default:
		return 0
	}
}

// Achievement is an immutable catalog entry. There is no persisted unlocked
// flag: unlock status is always a live evaluation against current stats.
type Achievement struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Category    Category    `json:"category"`
	Rarity      Rarity      `json:"rarity"`
	Requirement Requirement `json:"requirement"`
}

// Unlocked reports whether the achievement's requirement holds for stats.
func (a Achievement) Unlocked(stats *models.AggregateStats) bool {
	return a.Requirement.Met(stats)
}
