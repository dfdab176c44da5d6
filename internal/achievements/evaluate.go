// ABOUTME: Stateless unlock evaluation over the achievement catalog.
// ABOUTME: Unlock status is a read-time query, never a stored flag.
package achievements

import (
	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
)

// Unlocked returns the catalog entries whose requirements hold for stats.
// An empty category means all categories. Order follows the catalog.
func Unlocked(stats *models.AggregateStats, category Category) []Achievement {
	return filter(stats, category, true)
}

// Locked returns the catalog entries whose requirements do not yet hold for
// stats, within the optionally category-filtered set.
func Locked(stats *models.AggregateStats, category Category) []Achievement {
	return filter(stats, category, false)
}

func filter(stats *models.AggregateStats, category Category, unlocked bool) []Achievement {
	var out []Achievement
	for _, a := range catalog {
		if category != "" && a.Category != category {
			continue
		}
		if a.Unlocked(stats) == unlocked {
			out = append(out, a)
		}
	}
	return out
}

// Counts returns how many achievements are unlocked and total within the
// optionally category-filtered set.
func Counts(stats *models.AggregateStats, category Category) (unlocked, total int) {
	for _, a := range catalog {
		if category != "" && a.Category != category {
			continue
		}
		total++
		if a.Unlocked(stats) {
			unlocked++
		}
	}
	return unlocked, total
}
