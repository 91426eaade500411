// ABOUTME: Tests for token auth and workout question persistence.
// ABOUTME: Unknown tokens resolve to ErrNotFound.
package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/models"
)

func TestRegisterAndResolveToken(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Email: "cyclist@example.com"}
	if err := db.RegisterToken(ctx, "tok-abc123", user); err != nil {
		t.Fatalf("RegisterToken failed: %v", err)
	}

	got, err := db.UserForToken(ctx, "tok-abc123")
	if err != nil {
		t.Fatalf("UserForToken failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID = %v, want %v", got.ID, user.ID)
	}
	if got.Email != user.Email {
		t.Errorf("Email = %q, want %q", got.Email, user.Email)
	}
}

func TestUserForUnknownToken(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.UserForToken(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveWorkoutQuestion(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	q := models.NewWorkoutQuestion(uuid.New(), "How should I pace the intervals?")
	q.Answer = "Start at threshold and hold steady."
	q.Sport = "swimming"

	if err := db.SaveWorkoutQuestion(ctx, q); err != nil {
		t.Fatalf("SaveWorkoutQuestion failed: %v", err)
	}
}
