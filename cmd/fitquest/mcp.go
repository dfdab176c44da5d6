// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "fitquest": {
        "command": "fitquest",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_workout        Log exercise counts for a day
  get_status         Day's entry plus stats, level, and streak
  list_achievements  Unlocked or locked achievements
  reset_progress     Irreversibly wipe all progress

AVAILABLE RESOURCES:

  fitquest://stats          Aggregate stats and today's workout
  fitquest://achievements   Catalog partitioned by unlock state`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
