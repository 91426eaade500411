// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/pulsetrack/pulse/internal/storage"
)

// setupServer creates an MCP server over a temp database and test user.
func setupServer(t *testing.T) *Server {
	t.Helper()

	repo, err := storage.Open(filepath.Join(t.TempDir(), "pulse.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	user := &models.User{ID: uuid.New(), Email: "user@example.com"}
	server, err := NewServer(repo, user)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
}

func TestHandleLogWorkout(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   logWorkoutInput
		wantErr bool
	}{
		{
			name:  "simple workout",
			input: logWorkoutInput{Title: "Easy run", Sport: "running"},
		},
		{
			name: "workout with everything",
			input: logWorkoutInput{
				Title:           "Threshold swim",
				Sport:           "swimming",
				WorkoutType:     "intervals",
				DurationMinutes: 60,
				Description:     "Main set 10x100",
				Exercises: []models.Exercise{
					{Name: "100m freestyle", Sets: 10, Reps: "1", Rest: "20s"},
				},
			},
		},
		{
			name:  "unknown sport is allowed",
			input: logWorkoutInput{Title: "Range session", Sport: "Archery"},
		},
		{
			name:    "missing title",
			input:   logWorkoutInput{Sport: "running"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if output.ID == "" {
				t.Error("Expected non-empty ID")
			}
			if output.Title != tt.input.Title {
				t.Errorf("Title = %s, want %s", output.Title, tt.input.Title)
			}
		})
	}
}

func TestHandleListWorkouts(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, logWorkoutInput{Title: "Run A", Sport: "running"})
	server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, logWorkoutInput{Title: "Swim A", Sport: "swimming"})

	_, output, err := server.handleListWorkouts(ctx, &mcp.CallToolRequest{}, listWorkoutsInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	workouts, ok := output.([]*models.Workout)
	if !ok {
		t.Fatalf("Expected workout slice, got %T", output)
	}
	if len(workouts) != 2 {
		t.Errorf("Expected 2 workouts, got %d", len(workouts))
	}

	_, output, err = server.handleListWorkouts(ctx, &mcp.CallToolRequest{}, listWorkoutsInput{Sport: "running"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	workouts, ok = output.([]*models.Workout)
	if !ok {
		t.Fatalf("Expected workout slice, got %T", output)
	}
	if len(workouts) != 1 || workouts[0].Title != "Run A" {
		t.Errorf("Expected only the running workout, got %d", len(workouts))
	}
}

func TestHandleListWorkoutsEmpty(t *testing.T) {
	server := setupServer(t)

	_, output, err := server.handleListWorkouts(context.Background(), &mcp.CallToolRequest{}, listWorkoutsInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	msg, ok := output.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected message map for empty store, got %T", output)
	}
	if msg["message"] == "" {
		t.Error("Expected non-empty message")
	}
}

func TestHandleGetWorkoutByPrefix(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, created, err := server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, logWorkoutInput{Title: "Long ride", Sport: "cycling"})
	if err != nil {
		t.Fatalf("log workout: %v", err)
	}

	_, output, err := server.handleGetWorkout(ctx, &mcp.CallToolRequest{}, getWorkoutInput{ID: created.ID})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	w, ok := output.(*models.Workout)
	if !ok {
		t.Fatalf("Expected workout, got %T", output)
	}
	if w.Title != "Long ride" {
		t.Errorf("Title = %s", w.Title)
	}
}

func TestHandleGetWorkoutNotFound(t *testing.T) {
	server := setupServer(t)

	_, _, err := server.handleGetWorkout(context.Background(), &mcp.CallToolRequest{}, getWorkoutInput{ID: "deadbeef"})
	if err == nil {
		t.Error("Expected error for nonexistent workout")
	}
}

func TestHandleAddGoal(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   addGoalInput
		wantErr bool
	}{
		{
			name:  "simple goal",
			input: addGoalInput{Name: "Run 100km", TargetValue: 100, Unit: "km"},
		},
		{
			name: "goal with everything",
			input: addGoalInput{
				Name:        "Swim 20 sessions",
				TargetValue: 20,
				Unit:        "sessions",
				Category:    "consistency",
				Description: "One season block",
				TargetDate:  "2026-12-31",
			},
		},
		{
			name:    "missing name",
			input:   addGoalInput{TargetValue: 10},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleAddGoal(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if output.ID == "" || output.Message == "" {
				t.Error("Expected ID and message")
			}
		})
	}
}

func TestHandleUpdateGoalProgress(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, created, err := server.handleAddGoal(ctx, &mcp.CallToolRequest{}, addGoalInput{
		Name: "Run 100km", TargetValue: 100, Unit: "km",
	})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}

	_, output, err := server.handleUpdateGoalProgress(ctx, &mcp.CallToolRequest{}, updateGoalProgressInput{
		ID: created.ID, Value: 42,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output.Message, "42") {
		t.Errorf("Message = %q, want progress in it", output.Message)
	}
}

func TestHandleUpdateGoalProgressNotFound(t *testing.T) {
	server := setupServer(t)

	_, _, err := server.handleUpdateGoalProgress(context.Background(), &mcp.CallToolRequest{}, updateGoalProgressInput{
		ID: "deadbeef", Value: 1,
	})
	if err == nil {
		t.Error("Expected error for nonexistent goal")
	}
}

func TestHandleCompleteGoal(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, created, _ := server.handleAddGoal(ctx, &mcp.CallToolRequest{}, addGoalInput{
		Name: "Race season", TargetValue: 3, Unit: "races",
	})

	_, output, err := server.handleCompleteGoal(ctx, &mcp.CallToolRequest{}, goalIDInput{ID: created.ID})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}

	_, listed, err := server.handleListGoals(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	goals, ok := listed.([]map[string]interface{})
	if !ok {
		t.Fatalf("Expected goal summaries, got %T", listed)
	}
	if len(goals) != 1 || goals[0]["completed"] != true {
		t.Errorf("Expected completed goal, got %+v", goals)
	}
}

func TestHandleScheduleWorkout(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	_, output, err := server.handleScheduleWorkout(ctx, &mcp.CallToolRequest{}, scheduleWorkoutInput{
		Title: "Morning swim", Sport: "swimming", Date: "2026-09-01", TimeOfDay: "morning",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}

	_, listed, err := server.handleListSchedule(ctx, &mcp.CallToolRequest{}, listScheduleInput{
		From: "2026-09-01", To: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("list schedule: %v", err)
	}
	scheduled, ok := listed.([]*models.ScheduledWorkout)
	if !ok {
		t.Fatalf("Expected scheduled slice, got %T", listed)
	}
	if len(scheduled) != 1 || scheduled[0].TimeOfDay != "morning" {
		t.Errorf("Expected one morning session, got %+v", scheduled)
	}
}

func TestHandleScheduleWorkoutBadDate(t *testing.T) {
	server := setupServer(t)

	_, _, err := server.handleScheduleWorkout(context.Background(), &mcp.CallToolRequest{}, scheduleWorkoutInput{
		Title: "Run", Date: "next tuesday",
	})
	if err == nil {
		t.Error("Expected error for unparseable date")
	}
}

func TestHandleGetSportProfileUnset(t *testing.T) {
	server := setupServer(t)

	_, output, err := server.handleGetSportProfile(context.Background(), &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	msg, ok := output.(map[string]interface{})
	if !ok || msg["message"] == "" {
		t.Errorf("Expected message for unset profile, got %+v", output)
	}
}

func TestHandleGetSportProfile(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	sp := models.DefaultSportProfile(server.user.ID)
	sp.PrimarySport = "swimming"
	sp.ExperienceLevel = "intermediate"
	if err := server.repo.UpsertSportProfile(ctx, sp); err != nil {
		t.Fatalf("upsert sport profile: %v", err)
	}

	_, output, err := server.handleGetSportProfile(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, ok := output.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected map, got %T", output)
	}
	if got["sport"] != "swimming" || got["sport_label"] != "Swimming" {
		t.Errorf("profile = %+v", got)
	}
}

func TestHandleGetHealthSnapshotEmpty(t *testing.T) {
	server := setupServer(t)

	_, output, err := server.handleGetHealthSnapshot(context.Background(), &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	msg, ok := output.(map[string]interface{})
	if !ok || msg["message"] == "" {
		t.Errorf("Expected message for missing snapshot, got %+v", output)
	}
}

func TestHandleSportsResource(t *testing.T) {
	server := setupServer(t)

	result, err := server.handleSportsResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Contents) == 0 {
		t.Fatal("Expected non-empty contents")
	}
	if result.Contents[0].URI != "pulse://sports" {
		t.Errorf("URI = %s", result.Contents[0].URI)
	}
	text := result.Contents[0].Text
	for _, want := range []string{"swimming", "Basketball", "🎾"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in catalog:\n%s", want, text)
		}
	}
}

func TestHandleTodayResource(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Contents[0].URI != "pulse://today" {
		t.Errorf("URI = %s", result.Contents[0].URI)
	}
}

func TestHandleSummaryResource(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	server.handleLogWorkout(ctx, &mcp.CallToolRequest{}, logWorkoutInput{Title: "Tempo run", Sport: "running"})
	server.handleAddGoal(ctx, &mcp.CallToolRequest{}, addGoalInput{Name: "Run 100km", TargetValue: 100, Unit: "km"})

	result, err := server.handleSummaryResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	text := result.Contents[0].Text
	for _, want := range []string{"Tempo run", "Run 100km", "recent_workouts"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in summary:\n%s", want, text)
		}
	}
}

func TestHandleSummaryResourceEmpty(t *testing.T) {
	server := setupServer(t)

	result, err := server.handleSummaryResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("Expected non-nil result")
	}
}
