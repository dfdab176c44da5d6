// ABOUTME: CLI command for wiping all workout history and stats.
// ABOUTME: Destructive; requires --force or an interactive confirmation.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all progress",
	Long: `Reset all workout history, totals, streaks, XP, and level back to zero.

This cannot be undone. Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			fmt.Print("Reset ALL progress? This cannot be undone. [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := svc.ResetAll(); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}

		color.Green("✓ Progress reset")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
