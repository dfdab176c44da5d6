// ABOUTME: MCP resource implementations for the fitquest engine.
// ABOUTME: Provides fitquest://stats and fitquest://achievements resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/achievements"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/progression"
)

func (s *Server) registerResources() {
	// fitquest://stats - aggregate stats with today's entry
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitquest://stats",
		Name:        "Progression Stats",
		Description: "Aggregate totals, streak, level, and today's workout",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// fitquest://achievements - full catalog partitioned by unlock state
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitquest://achievements",
		Name:        "Achievements",
		Description: "Unlocked and locked achievements against current stats",
		MIMEType:    "application/json",
	}, s.handleAchievementsResource)
}

// Resource handlers

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	entry, stats, err := s.svc.LoadDailyState(now)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	result := map[string]any{
		"date":           models.DayKey(now),
		"today":          entry,
		"stats":          stats,
		"level_progress": progression.LevelProgress(stats.Level, stats.XP),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitquest://stats",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleAchievementsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	_, stats, err := s.svc.LoadDailyState(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	unlocked := achievements.Unlocked(stats, "")
	locked := achievements.Locked(stats, "")

	result := map[string]any{
		"unlocked": unlocked,
		"locked":   locked,
		"counts": map[string]int{
			"unlocked": len(unlocked),
			"total":    len(unlocked) + len(locked),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "fitquest://achievements",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
