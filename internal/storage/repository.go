// ABOUTME: Repository interface for workout data storage.
// ABOUTME: Defines the contract for entries, stats, and lifecycle operations.
package storage

import (
	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
)

// Repository defines the storage interface for workout data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Entry returns the stored entry for a day key, or nil if absent.
	Entry(day string) (*models.ExerciseEntry, error)

	// Stats returns the aggregate stats singleton, or the zero state if
	// nothing has been persisted yet.
	Stats() (*models.AggregateStats, error)

	// SaveDay persists the day's entry and the updated stats atomically:
	// either both keys are written or neither is.
	SaveDay(entry *models.ExerciseEntry, stats *models.AggregateStats) error

	// Reset removes every persisted entry and the stats singleton.
	Reset() error

	// Lifecycle
	Close() error
}
