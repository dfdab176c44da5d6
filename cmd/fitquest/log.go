// ABOUTME: CLI command for logging a day's workout.
// ABOUTME: Saves exercise counts and reports XP, streak, and new unlocks.
package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/tracker"
)

var (
	logPushUps int
	logSquats  int
	logAbs     int
	logDate    string
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Log a workout",
	Long: `Log exercise counts for a day. Logging the same day again replaces
that day's entry rather than adding to it.

Examples:
  fitquest log --pushups 20 --squats 30 --abs 15
  fitquest log --pushups 50
  fitquest log --squats 40 --date 2026-08-30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now()
		if logDate != "" {
			var err error
			day, err = models.ParseDay(logDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (expected YYYY-MM-DD)", logDate)
			}
		}

		result, err := svc.SaveWorkout(day, logPushUps, logSquats, logAbs)
		if err != nil {
			if errors.Is(err, tracker.ErrEmptyWorkout) {
				color.Yellow("⚠ No exercises to save — add at least one exercise first")
				return nil
			}
			return fmt.Errorf("failed to save workout: %w", err)
		}

		color.Green("✓ Workout saved for %s", result.Entry.Date)
		fmt.Printf("  +%d XP (total %.1f, level %d)\n",
			int(math.Round(result.XPEarned)), result.Stats.XP, result.Stats.Level)
		fmt.Printf("  Streak: %d day(s), longest %d\n",
			result.Stats.CurrentStreak, result.Stats.LongestStreak)

		for _, a := range result.NewlyUnlocked {
			color.Cyan("  🏆 Unlocked: %s — %s", a.Title, a.Description)
		}

		return nil
	},
}

func init() {
	logCmd.Flags().IntVarP(&logPushUps, "pushups", "p", 0, "push-ups done")
	logCmd.Flags().IntVarP(&logSquats, "squats", "s", 0, "squats done")
	logCmd.Flags().IntVarP(&logAbs, "abs", "a", 0, "abs exercises done")
	logCmd.Flags().StringVar(&logDate, "date", "", "day to log (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(logCmd)
}
