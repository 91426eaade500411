// ABOUTME: MCP tool implementations for training data.
// ABOUTME: Workouts, goals, schedule, sport profile, and health snapshot.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pulsetrack/pulse/internal/models"
)

func (s *Server) registerTools() {
	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a completed training session",
	}, s.handleLogWorkout)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workouts, optionally filtered by sport",
	}, s.handleListWorkouts)

	// get_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with its exercise list",
	}, s.handleGetWorkout)

	// add_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_goal",
		Description: "Create a training goal with a numeric target",
	}, s.handleAddGoal)

	// list_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List goals with current progress",
	}, s.handleListGoals)

	// update_goal_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_goal_progress",
		Description: "Set the current value of a goal by ID or ID prefix",
	}, s.handleUpdateGoalProgress)

	// complete_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_goal",
		Description: "Mark a goal as completed",
	}, s.handleCompleteGoal)

	// schedule_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "schedule_workout",
		Description: "Put a workout slot on the calendar",
	}, s.handleScheduleWorkout)

	// list_schedule
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_schedule",
		Description: "List scheduled workouts in a date range",
	}, s.handleListSchedule)

	// get_sport_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_sport_profile",
		Description: "Get the user's sport, experience level, and training cadence",
	}, s.handleGetSportProfile)

	// get_health_snapshot
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_health_snapshot",
		Description: "Get the latest synced smartwatch health snapshot",
	}, s.handleGetHealthSnapshot)
}

// Tool input/output types

type logWorkoutInput struct {
	Title           string            `json:"title" jsonschema:"Workout title"`
	Sport           string            `json:"sport,omitempty" jsonschema:"Sport code (running, swimming, cycling, basketball, soccer, tennis)"`
	WorkoutType     string            `json:"workout_type,omitempty" jsonschema:"Session type (endurance, intervals, strength, recovery, etc.)"`
	DurationMinutes int               `json:"duration_minutes,omitempty" jsonschema:"Duration in minutes"`
	Description     string            `json:"description,omitempty" jsonschema:"Free-form notes"`
	Exercises       []models.Exercise `json:"exercises,omitempty" jsonschema:"Structured exercise list"`
}

type workoutOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Sport   string `json:"sport"`
	Message string `json:"message"`
}

type listWorkoutsInput struct {
	Sport string `json:"sport,omitempty" jsonschema:"Filter by sport code"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type getWorkoutInput struct {
	ID string `json:"id" jsonschema:"Workout ID or prefix"`
}

type addGoalInput struct {
	Name        string  `json:"name" jsonschema:"Goal name"`
	TargetValue float64 `json:"target_value" jsonschema:"Numeric target"`
	Unit        string  `json:"unit,omitempty" jsonschema:"Unit of measurement (km, kg, sessions, etc.)"`
	Category    string  `json:"category,omitempty" jsonschema:"Goal category"`
	Description string  `json:"description,omitempty" jsonschema:"Free-form description"`
	TargetDate  string  `json:"target_date,omitempty" jsonschema:"Target date (YYYY-MM-DD)"`
}

type goalOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type updateGoalProgressInput struct {
	ID    string  `json:"id" jsonschema:"Goal ID or prefix"`
	Value float64 `json:"value" jsonschema:"New current value"`
}

type goalIDInput struct {
	ID string `json:"id" jsonschema:"Goal ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type scheduleWorkoutInput struct {
	Title     string `json:"title" jsonschema:"Session title"`
	Sport     string `json:"sport,omitempty" jsonschema:"Sport code"`
	Date      string `json:"date" jsonschema:"Scheduled date (YYYY-MM-DD)"`
	TimeOfDay string `json:"time_of_day,omitempty" jsonschema:"Slot (morning, afternoon, evening)"`
}

type listScheduleInput struct {
	From string `json:"from,omitempty" jsonschema:"Range start (YYYY-MM-DD), defaults to today"`
	To   string `json:"to,omitempty" jsonschema:"Range end (YYYY-MM-DD), defaults to a week out"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, workoutOutput{}, fmt.Errorf("title is required")
	}
	if input.Sport != "" && !models.IsValidSport(input.Sport) {
		// Unknown sports are allowed but normalized to lowercase.
		input.Sport = strings.ToLower(input.Sport)
	}

	w := models.NewWorkout(s.user.ID, input.Title, input.Sport)
	w.WorkoutType = input.WorkoutType
	w.Completed = true
	if input.DurationMinutes > 0 {
		w.WithDuration(input.DurationMinutes)
	}
	if input.Description != "" {
		w.WithDescription(input.Description)
	}
	if len(input.Exercises) > 0 {
		w.WithExercises(input.Exercises)
	}

	if err := s.repo.CreateWorkout(ctx, w); err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, workoutOutput{
		ID:      w.ID.String()[:8],
		Title:   w.Title,
		Sport:   w.Sport,
		Message: fmt.Sprintf("Logged %q (ID: %s)", w.Title, w.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	workouts, err := s.repo.ListWorkouts(ctx, s.user.ID, input.Sport, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}

	return nil, workouts, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input getWorkoutInput) (*mcp.CallToolResult, any, error) {
	id, err := s.resolveWorkoutID(ctx, input.ID)
	if err != nil {
		return nil, nil, err
	}

	w, err := s.repo.GetWorkout(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("workout not found: %s", input.ID)
	}

	return nil, w, nil
}

func (s *Server) handleAddGoal(ctx context.Context, req *mcp.CallToolRequest, input addGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, goalOutput{}, fmt.Errorf("name is required")
	}

	g := models.NewGoal(s.user.ID, input.Name, input.TargetValue, input.Unit)
	if input.Category != "" {
		g.WithCategory(input.Category)
	}
	if input.Description != "" {
		g.WithDescription(input.Description)
	}
	if input.TargetDate != "" {
		if t, err := time.Parse("2006-01-02", input.TargetDate); err == nil {
			g.WithTargetDate(t)
		}
	}

	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to create goal: %w", err)
	}

	return nil, goalOutput{
		ID:      g.ID.String()[:8],
		Name:    g.Name,
		Message: fmt.Sprintf("Added goal %q: %.0f %s (ID: %s)", g.Name, g.TargetValue, g.Unit, g.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	goals, err := s.repo.ListGoals(ctx, s.user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list goals: %w", err)
	}

	if len(goals) == 0 {
		return nil, map[string]interface{}{"message": "No goals found."}, nil
	}

	out := make([]map[string]interface{}, 0, len(goals))
	for _, g := range goals {
		out = append(out, map[string]interface{}{
			"id":               g.ID.String()[:8],
			"name":             g.Name,
			"category":         g.Category,
			"current_value":    g.CurrentValue,
			"target_value":     g.TargetValue,
			"unit":             g.Unit,
			"progress_percent": g.ProgressPercent(),
			"completed":        g.Completed,
		})
	}
	return nil, out, nil
}

func (s *Server) handleUpdateGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input updateGoalProgressInput) (*mcp.CallToolResult, simpleOutput, error) {
	g, err := s.resolveGoal(ctx, input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.repo.UpdateGoalProgress(ctx, g.ID, input.Value); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update goal: %w", err)
	}

	g.CurrentValue = input.Value
	return nil, simpleOutput{
		Message: fmt.Sprintf("%s: %.1f/%.1f %s (%.0f%%)", g.Name, g.CurrentValue, g.TargetValue, g.Unit, g.ProgressPercent()),
	}, nil
}

func (s *Server) handleCompleteGoal(ctx context.Context, req *mcp.CallToolRequest, input goalIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	g, err := s.resolveGoal(ctx, input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if err := s.repo.CompleteGoal(ctx, g.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to complete goal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Completed goal: %s", g.Name),
	}, nil
}

func (s *Server) handleScheduleWorkout(ctx context.Context, req *mcp.CallToolRequest, input scheduleWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", input.Date)
	}

	sw := models.NewScheduledWorkout(s.user.ID, input.Title, input.Sport, date)
	if input.TimeOfDay != "" {
		sw.WithTimeOfDay(input.TimeOfDay)
	}

	if err := s.repo.CreateScheduledWorkout(ctx, sw); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to schedule workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Scheduled %q for %s (ID: %s)", sw.Title, input.Date, sw.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListSchedule(ctx context.Context, req *mcp.CallToolRequest, input listScheduleInput) (*mcp.CallToolResult, any, error) {
	from := input.From
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}
	to := input.To
	if to == "" {
		to = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	}

	scheduled, err := s.repo.ListScheduledWorkouts(ctx, s.user.ID, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list schedule: %w", err)
	}

	if len(scheduled) == 0 {
		return nil, map[string]interface{}{"message": "Nothing scheduled."}, nil
	}

	return nil, scheduled, nil
}

func (s *Server) handleGetSportProfile(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	sp, err := s.repo.GetSportProfile(ctx, s.user.ID)
	if err != nil {
		return nil, map[string]interface{}{"message": "No sport profile set up yet."}, nil
	}

	info := models.GetSportInfo(sp.PrimarySport)
	return nil, map[string]interface{}{
		"sport":              sp.PrimarySport,
		"sport_label":        info.Label,
		"experience_level":   sp.ExperienceLevel,
		"training_frequency": sp.TrainingFrequency,
		"session_duration":   sp.SessionDuration,
	}, nil
}

func (s *Server) handleGetHealthSnapshot(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	snap, err := s.repo.GetHealthSnapshot(ctx, s.user.ID)
	if err != nil {
		return nil, map[string]interface{}{"message": "No health data synced yet."}, nil
	}

	return nil, snap, nil
}

// ID resolution

// resolveGoal matches a full UUID or an ID prefix against the user's
// goals.
func (s *Server) resolveGoal(ctx context.Context, id string) (*models.Goal, error) {
	if full, err := uuid.Parse(id); err == nil {
		goals, err := s.repo.ListGoals(ctx, s.user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list goals: %w", err)
		}
		for _, g := range goals {
			if g.ID == full {
				return g, nil
			}
		}
		return nil, fmt.Errorf("goal not found: %s", id)
	}

	goals, err := s.repo.ListGoals(ctx, s.user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	var match *models.Goal
	for _, g := range goals {
		if strings.HasPrefix(g.ID.String(), strings.ToLower(id)) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous goal ID prefix: %s", id)
			}
			match = g
		}
	}
	if match == nil {
		return nil, fmt.Errorf("goal not found: %s", id)
	}
	return match, nil
}

// resolveWorkoutID matches a full UUID or an ID prefix against recent
// workouts.
func (s *Server) resolveWorkoutID(ctx context.Context, id string) (uuid.UUID, error) {
	if full, err := uuid.Parse(id); err == nil {
		return full, nil
	}

	workouts, err := s.repo.ListWorkouts(ctx, s.user.ID, "", 100)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	var match uuid.UUID
	found := false
	for _, w := range workouts {
		if strings.HasPrefix(w.ID.String(), strings.ToLower(id)) {
			if found {
				return uuid.Nil, fmt.Errorf("ambiguous workout ID prefix: %s", id)
			}
			match = w.ID
			found = true
		}
	}
	if !found {
		return uuid.Nil, fmt.Errorf("workout not found: %s", id)
	}
	return match, nil
}
