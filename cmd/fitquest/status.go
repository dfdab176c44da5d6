// ABOUTME: CLI command showing the day's entry and aggregate progression.
// ABOUTME: Level, XP, progress bar, streak, and lifetime totals.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/achievements"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/progression"
)

var statusDate string

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show progression status",
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now()
		if statusDate != "" {
			var err error
			day, err = models.ParseDay(statusDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s (expected YYYY-MM-DD)", statusDate)
			}
		}

		entry, stats, err := svc.LoadDailyState(day)
		if err != nil {
			return fmt.Errorf("failed to load state: %w", err)
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Printf("Level %d", stats.Level)
		fmt.Printf("  %.1f XP\n", stats.XP)
		progress := progression.LevelProgress(stats.Level, stats.XP)
		fmt.Printf("  %s %.0f%% to level %d\n", progressBar(progress, 20), progress, stats.Level+1)

		fmt.Printf("\n🔥 Streak: %d day(s)", stats.CurrentStreak)
		faint.Printf("  (longest %d)\n", stats.LongestStreak)

		fmt.Printf("\n%s\n", models.DayKey(day))
		if entry != nil {
			fmt.Printf("  Push-ups: %d  Squats: %d  Abs: %d\n", entry.PushUps, entry.Squats, entry.Abs)
		} else {
			faint.Println("  No workout logged yet.")
		}

		fmt.Println("\nTotals")
		fmt.Printf("  Push-ups: %d  Squats: %d  Abs: %d  (all: %d)\n",
			stats.TotalPushUps, stats.TotalSquats, stats.TotalAbs, stats.TotalExercises())

		unlocked, total := achievements.Counts(stats, "")
		fmt.Printf("\nAchievements: %d/%d unlocked\n", unlocked, total)

		return nil
	},
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func init() {
	statusCmd.Flags().StringVar(&statusDate, "date", "", "day to inspect (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(statusCmd)
}
