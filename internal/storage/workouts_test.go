// ABOUTME: Tests for workout and scheduled workout persistence.
// ABOUTME: Exercise lists must survive the JSON round trip.
package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/models"
)

func TestCreateAndGetWorkout(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userID := uuid.New()

	w := models.NewWorkout(userID, "Interval swim", "swimming").
		WithDuration(45).
		WithExercises([]models.Exercise{
			{Name: "warmup 400m"},
			{Name: "8x50m sprint", Sets: 8, Reps: "50m", Rest: "30s"},
		})

	if err := db.CreateWorkout(ctx, w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	got, err := db.GetWorkout(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	if got.Title != "Interval swim" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Duration == nil || *got.Duration != 45 {
		t.Errorf("Duration = %v, want 45", got.Duration)
	}
	if len(got.Exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(got.Exercises))
	}
	if got.Exercises[1].Sets != 8 {
		t.Errorf("Exercises[1].Sets = %d, want 8", got.Exercises[1].Sets)
	}
}

func TestListWorkoutsFilterAndLimit(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userID := uuid.New()

	for i, sport := range []string{"swimming", "running", "swimming"} {
		w := models.NewWorkout(userID, "session", sport)
		w.CreatedAt = time.Now().Add(time.Duration(i) * time.Minute)
		if err := db.CreateWorkout(ctx, w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}
	}

	all, err := db.ListWorkouts(ctx, userID, "", 0)
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 workouts, got %d", len(all))
	}

	swims, err := db.ListWorkouts(ctx, userID, "swimming", 0)
	if err != nil {
		t.Fatalf("ListWorkouts with sport failed: %v", err)
	}
	if len(swims) != 2 {
		t.Errorf("expected 2 swimming workouts, got %d", len(swims))
	}

	limited, err := db.ListWorkouts(ctx, userID, "", 1)
	if err != nil {
		t.Fatalf("ListWorkouts with limit failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 workout with limit, got %d", len(limited))
	}
}

func TestScheduledWorkoutLifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userID := uuid.New()

	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	sw := models.NewScheduledWorkout(userID, "Morning run", "running", date).
		WithTimeOfDay("morning")

	if err := db.CreateScheduledWorkout(ctx, sw); err != nil {
		t.Fatalf("CreateScheduledWorkout failed: %v", err)
	}

	scheduled, err := db.ListScheduledWorkouts(ctx, userID, "2025-03-10", "2025-03-14")
	if err != nil {
		t.Fatalf("ListScheduledWorkouts failed: %v", err)
	}
	if len(scheduled) != 1 {
		t.Fatalf("expected 1 scheduled workout, got %d", len(scheduled))
	}
	if scheduled[0].TimeOfDay != "morning" {
		t.Errorf("TimeOfDay = %q", scheduled[0].TimeOfDay)
	}
	if scheduled[0].Completed {
		t.Error("new scheduled workout should not be completed")
	}

	if err := db.CompleteScheduledWorkout(ctx, sw.ID); err != nil {
		t.Fatalf("CompleteScheduledWorkout failed: %v", err)
	}
	scheduled, _ = db.ListScheduledWorkouts(ctx, userID, "2025-03-10", "2025-03-14")
	if !scheduled[0].Completed {
		t.Error("expected scheduled workout completed")
	}

	// Out-of-range query excludes it
	none, err := db.ListScheduledWorkouts(ctx, userID, "2025-03-13", "2025-03-14")
	if err != nil {
		t.Fatalf("ListScheduledWorkouts failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no scheduled workouts in range, got %d", len(none))
	}
}

func TestGetWorkoutNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetWorkout(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
