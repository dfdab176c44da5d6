// ABOUTME: Badger-backed key-value store for workout entries and stats.
// ABOUTME: Keys: workout_<YYYY-MM-DD> per day, user_stats for the singleton.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
)

const (
	statsKey      = "user_stats"
	workoutPrefix = "workout_"
)

// Store is the Badger-backed Repository implementation.
type Store struct {
	db *badger.DB
	mu sync.Mutex
}

var _ Repository = (*Store)(nil)

// Open opens or creates the store in the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Store{db: db}, nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitquest")
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func workoutKey(day string) []byte {
	return []byte(workoutPrefix + day)
}

// Entry returns the stored entry for a day key, or nil if absent.
// A payload that fails to parse is treated as absent: stale local data must
// not brick the app.
func (s *Store) Entry(day string) (*models.ExerciseEntry, error) {
	var entry *models.ExerciseEntry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(workoutKey(day))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		var e models.ExerciseEntry
		if err := json.Unmarshal(val, &e); err != nil {
			return nil
		}
		entry = &e
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read entry %s: %w", day, err)
	}
	return entry, nil
}

// Stats returns the persisted aggregate stats, or the zero state if the key
// is absent or its payload fails to parse.
func (s *Store) Stats() (*models.AggregateStats, error) {
	stats := models.NewAggregateStats()
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(statsKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		var loaded models.AggregateStats
		if err := json.Unmarshal(val, &loaded); err != nil {
			return nil
		}
		stats = &loaded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}
	return stats, nil
}

// SaveDay writes the day's entry and the stats singleton in one transaction,
// so a failed write leaves both keys untouched.
func (s *Store) SaveDay(entry *models.ExerciseEntry, stats *models.AggregateStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryData, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	statsData, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(workoutKey(entry.Date), entryData); err != nil {
			return err
		}
		return txn.Set([]byte(statsKey), statsData)
	})
	if err != nil {
		return fmt.Errorf("save day %s: %w", entry.Date, err)
	}
	return nil
}

// Reset drops every persisted key.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	return nil
}
