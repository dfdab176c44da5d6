// ABOUTME: Error values returned by the workout session service.
// ABOUTME: All errors are local to one operation; none are fatal.
package tracker

import "errors"

// ErrEmptyWorkout is returned when a save contains no exercises at all.
// At least one exercise must be logged; nothing is mutated on rejection.
var ErrEmptyWorkout = errors.New("workout has no exercises")

// ErrNegativeCount is returned when any exercise count is below zero.
var ErrNegativeCount = errors.New("exercise counts must be non-negative")
