// ABOUTME: CLI command listing achievements by unlock state and category.
// ABOUTME: Unlock state is always re-derived from current stats.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/achievements"
)

var (
	achievementsCategory string
	achievementsLocked   bool
	achievementsAll      bool
)

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"ach"},
	Short:   "List achievements",
	Long: `List achievements against your current stats.

Categories: push-ups, squats, abs, total, streaks, levels, xp, special

Examples:
  fitquest achievements                      # unlocked achievements
  fitquest achievements --locked             # what's still ahead
  fitquest achievements --category streaks
  fitquest achievements --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category := achievements.Category(achievementsCategory)
		if achievementsCategory != "" && !category.IsValid() {
			return fmt.Errorf("unknown category: %s", achievementsCategory)
		}

		_, stats, err := svc.LoadDailyState(time.Now())
		if err != nil {
			return fmt.Errorf("failed to load stats: %w", err)
		}

		unlocked, total := achievements.Counts(stats, category)
		fmt.Printf("Achievements: %d/%d unlocked\n\n", unlocked, total)

		if achievementsAll || !achievementsLocked {
			printAchievements("Unlocked 🏆", achievements.Unlocked(stats, category), true)
		}
		if achievementsAll || achievementsLocked {
			printAchievements("Locked", achievements.Locked(stats, category), false)
		}

		return nil
	},
}

func printAchievements(heading string, list []achievements.Achievement, unlocked bool) {
	if len(list) == 0 {
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Println(heading)
	for _, a := range list {
		title := a.Title
		if !unlocked {
			title = faint.Sprint(title)
		}
		fmt.Printf("  %s %s %s\n", title, rarityTag(a.Rarity), faint.Sprint(a.Description))
	}
	fmt.Println()
}

func rarityTag(r achievements.Rarity) string {
	switch r {
	case achievements.RarityRare:
		return color.BlueString("[rare]")
	case achievements.RarityEpic:
		return color.MagentaString("[epic]")
	case achievements.RarityLegendary:
		return color.YellowString("[legendary]")
	default:
		return color.New(color.Faint).Sprint("[common]")
	}
}

func init() {
	achievementsCmd.Flags().StringVarP(&achievementsCategory, "category", "c", "", "filter by category")
	achievementsCmd.Flags().BoolVar(&achievementsLocked, "locked", false, "show locked achievements instead")
	achievementsCmd.Flags().BoolVar(&achievementsAll, "all", false, "show both unlocked and locked")
	rootCmd.AddCommand(achievementsCmd)
}
