// ABOUTME: MCP resource implementations for training data.
// ABOUTME: Provides pulse://sports, pulse://today, and pulse://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pulsetrack/pulse/internal/models"
)

func (s *Server) registerResources() {
	// pulse://sports - the supported sport catalog
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "pulse://sports",
		Name:        "Sport Catalog",
		Description: "Supported sports with display names and icons",
		MIMEType:    "application/json",
	}, s.handleSportsResource)

	// pulse://today - today's scheduled sessions plus the latest snapshot
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "pulse://today",
		Name:        "Today's Training",
		Description: "Sessions scheduled for today and the latest health snapshot",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// pulse://summary - dashboard with profile, goals, and recent workouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "pulse://summary",
		Name:        "Training Summary Dashboard",
		Description: "Sport profile, goal progress, and recent workouts",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleSportsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("pulse://sports", sportCatalogPayload())
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := time.Now().Format("2006-01-02")

	scheduled, err := s.repo.ListScheduledWorkouts(ctx, s.user.ID, today, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule: %w", err)
	}

	result := map[string]interface{}{
		"date":      today,
		"scheduled": scheduled,
	}
	if snap, err := s.repo.GetHealthSnapshot(ctx, s.user.ID); err == nil {
		result["health"] = snap
	}

	return jsonResource("pulse://today", result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
	}

	if sp, err := s.repo.GetSportProfile(ctx, s.user.ID); err == nil {
		result["sport_profile"] = map[string]interface{}{
			"sport":              sp.PrimarySport,
			"experience_level":   sp.ExperienceLevel,
			"training_frequency": sp.TrainingFrequency,
			"session_duration":   sp.SessionDuration,
		}
	}

	goals, err := s.repo.ListGoals(ctx, s.user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	goalSummaries := make([]map[string]interface{}, 0, len(goals))
	for _, g := range goals {
		goalSummaries = append(goalSummaries, map[string]interface{}{
			"name":             g.Name,
			"progress_percent": g.ProgressPercent(),
			"completed":        g.Completed,
		})
	}
	result["goals"] = goalSummaries

	workouts, err := s.repo.ListWorkouts(ctx, s.user.ID, "", 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	result["recent_workouts"] = workouts
	result["counts"] = map[string]int{
		"goals":           len(goals),
		"recent_workouts": len(workouts),
	}

	return jsonResource("pulse://summary", result)
}

func sportCatalogPayload() []map[string]string {
	catalog := make([]map[string]string, 0, len(models.AllSports))
	for _, code := range models.AllSports {
		info := models.GetSportInfo(code)
		catalog = append(catalog, map[string]string{
			"code":  code,
			"label": info.Label,
			"icon":  info.Icon,
		})
	}
	return catalog
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
