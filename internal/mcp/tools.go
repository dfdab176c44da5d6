// ABOUTME: MCP tool implementations for the fitquest engine.
// ABOUTME: Logging workouts, reading status, achievements, and reset.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pm-alexandre/fit-quest-refhgf/internal/achievements"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/models"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/progression"
	"github.com/pm-alexandre/fit-quest-refhgf/internal/tracker"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log exercise counts for a day (replaces that day's entry)",
	}, s.handleLogWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_status",
		Description: "Get a day's entry plus aggregate stats, level, and streak",
	}, s.handleGetStatus)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_achievements",
		Description: "List unlocked or locked achievements, optionally by category",
	}, s.handleListAchievements)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_progress",
		Description: "Irreversibly reset all workout history and stats",
	}, s.handleResetProgress)
}

// Tool input/output types

type logWorkoutInput struct {
	PushUps int    `json:"push_ups,omitempty" jsonschema:"Number of push-ups"`
	Squats  int    `json:"squats,omitempty" jsonschema:"Number of squats"`
	Abs     int    `json:"abs,omitempty" jsonschema:"Number of abs exercises"`
	Date    string `json:"date,omitempty" jsonschema:"Day to log (YYYY-MM-DD), defaults to today"`
}

type logWorkoutOutput struct {
	Date            string   `json:"date"`
	XPEarned        float64  `json:"xp_earned"`
	TotalXP         float64  `json:"total_xp"`
	Level           int      `json:"level"`
	CurrentStreak   int      `json:"current_streak"`
	NewAchievements []string `json:"new_achievements,omitempty"`
	Message         string   `json:"message"`
}

type getStatusInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day to inspect (YYYY-MM-DD), defaults to today"`
}

type listAchievementsInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter: push-ups, squats, abs, total, streaks, levels, xp, special"`
	Locked   bool   `json:"locked,omitempty" jsonschema:"List locked instead of unlocked achievements"`
}

type resetProgressInput struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true to reset"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	day, err := resolveDay(input.Date)
	if err != nil {
		return nil, logWorkoutOutput{}, err
	}

	result, err := s.svc.SaveWorkout(day, input.PushUps, input.Squats, input.Abs)
	if err != nil {
		if errors.Is(err, tracker.ErrEmptyWorkout) {
			return nil, logWorkoutOutput{}, fmt.Errorf("add at least one exercise before saving")
		}
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to save workout: %w", err)
	}

	var unlocked []string
	for _, a := range result.NewlyUnlocked {
		unlocked = append(unlocked, fmt.Sprintf("%s (%s)", a.Title, a.Rarity))
	}

	return nil, logWorkoutOutput{
		Date:            result.Entry.Date,
		XPEarned:        result.XPEarned,
		TotalXP:         result.Stats.XP,
		Level:           result.Stats.Level,
		CurrentStreak:   result.Stats.CurrentStreak,
		NewAchievements: unlocked,
		Message: fmt.Sprintf("Logged workout for %s: earned %d XP, streak %d days",
			result.Entry.Date, int(math.Round(result.XPEarned)), result.Stats.CurrentStreak),
	}, nil
}

func (s *Server) handleGetStatus(ctx context.Context, req *mcp.CallToolRequest, input getStatusInput) (*mcp.CallToolResult, any, error) {
	day, err := resolveDay(input.Date)
	if err != nil {
		return nil, nil, err
	}

	entry, stats, err := s.svc.LoadDailyState(day)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load state: %w", err)
	}

	unlocked, total := achievements.Counts(stats, "")
	result := map[string]any{
		"date":           models.DayKey(day),
		"stats":          stats,
		"level_progress": progression.LevelProgress(stats.Level, stats.XP),
		"achievements": map[string]int{
			"unlocked": unlocked,
			"total":    total,
		},
	}
	if entry != nil {
		result["entry"] = entry
	} else {
		result["entry"] = nil
		result["message"] = "No workout logged for this day yet."
	}

	return nil, result, nil
}

func (s *Server) handleListAchievements(ctx context.Context, req *mcp.CallToolRequest, input listAchievementsInput) (*mcp.CallToolResult, any, error) {
	category := achievements.Category(input.Category)
	if input.Category != "" && !category.IsValid() {
		return nil, nil, fmt.Errorf("unknown category: %s", input.Category)
	}

	_, stats, err := s.svc.LoadDailyState(time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load stats: %w", err)
	}

	var list []achievements.Achievement
	if input.Locked {
		list = achievements.Locked(stats, category)
	} else {
		list = achievements.Unlocked(stats, category)
	}

	if len(list) == 0 {
		return nil, map[string]any{"message": "No achievements found."}, nil
	}
	return nil, list, nil
}

func (s *Server) handleResetProgress(ctx context.Context, req *mcp.CallToolRequest, input resetProgressInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !input.Confirm {
		return nil, simpleOutput{}, fmt.Errorf("reset requires confirm=true")
	}

	if err := s.svc.ResetAll(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to reset: %w", err)
	}

	return nil, simpleOutput{
		Message: "All workout history and stats have been reset.",
	}, nil
}

func resolveDay(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	day, err := models.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return day, nil
}
