// ABOUTME: WorkoutQuestion model for coach Q&A history.
// ABOUTME: Saved best-effort; a failed save never blocks the answer.
package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutQuestion records one question asked about a workout and the
// coach's answer.
type WorkoutQuestion struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	WorkoutID *uuid.UUID
	Question  string
	Answer    string
	Sport     string
	CreatedAt time.Time
}

// NewWorkoutQuestion creates a question record with generated UUID.
func NewWorkoutQuestion(userID uuid.UUID, question string) *WorkoutQuestion {
	return &WorkoutQuestion{
		ID:        uuid.New(),
		UserID:    userID,
		Question:  question,
		CreatedAt: time.Now(),
	}
}
