// ABOUTME: Root Cobra command for fitquest CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/config"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/storage"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/tracker"
)

var (
	dataDir string

	repo storage.Repository
	svc  *tracker.Service
)

var rootCmd = &cobra.Command{
	Use:   "fitquest",
	Short: "Daily workout tracker with XP, streaks, and achievements",
	Long: `Fitquest tracks daily push-ups, squats, and abs, turning workouts
into XP, levels, day streaks, and unlockable achievements.

QUICK START:

  $ fitquest log --pushups 20 --squats 30 --abs 15   # Log today's workout
  $ fitquest status                                  # Level, XP, streak, totals
  $ fitquest achievements                            # What you've unlocked

HOW PROGRESSION WORKS:

  XP       push-ups x2, squats x1.5, abs x2.5
  Level    every 100 XP is one level
  Streak   consecutive calendar days with a logged workout;
           skipping a day restarts the count

  Re-logging the same day replaces that day's entry (it does not stack).

ACHIEVEMENTS:

  77 achievements across push-ups, squats, abs, totals, streaks,
  levels, XP, and special combinations. Unlock state is always derived
  from your current stats.

  $ fitquest achievements --category streaks
  $ fitquest achievements --locked

MCP INTEGRATION:

  Run 'fitquest mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fitquest": { "command": "fitquest", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Workouts are stored locally at ~/.local/share/fitquest.
  'fitquest reset --force' wipes everything.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		svc = tracker.NewService(repo)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.local/share/fitquest)")
}
