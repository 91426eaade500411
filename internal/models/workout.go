// ABOUTME: Workout and ScheduledWorkout models for training sessions.
// ABOUTME: Workouts carry a structured exercise list serialized as JSON.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is one entry in a workout's exercise list.
type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets,omitempty"`
	Reps string `json:"reps,omitempty"`
	Rest string `json:"rest,omitempty"`
}

// Workout is a training session, either logged by the user or generated.
type Workout struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Sport       string
	WorkoutType string
	Duration    *int // minutes
	Exercises   []Exercise
	Completed   bool
	CreatedAt   time.Time
}

// NewWorkout creates a Workout with generated UUID and current timestamp.
func NewWorkout(userID uuid.UUID, title, sport string) *Workout {
	return &Workout{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Sport:     sport,
		CreatedAt: time.Now(),
	}
}

// WithDuration sets the duration in minutes.
func (w *Workout) WithDuration(minutes int) *Workout {
	w.Duration = &minutes
	return w
}

// WithDescription sets the workout description.
func (w *Workout) WithDescription(desc string) *Workout {
	w.Description = desc
	return w
}

// WithExercises sets the structured exercise list.
func (w *Workout) WithExercises(exercises []Exercise) *Workout {
	w.Exercises = exercises
	return w
}

// ScheduledWorkout binds a workout slot to a calendar date. The link to a
// generated Workout is optional; uniqueness per date/slot is not enforced.
type ScheduledWorkout struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Sport         string
	WorkoutType   string
	ScheduledDate time.Time
	TimeOfDay     string
	WorkoutID     *uuid.UUID
	Completed     bool
	Skipped       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewScheduledWorkout creates a ScheduledWorkout for a date.
func NewScheduledWorkout(userID uuid.UUID, title, sport string, date time.Time) *ScheduledWorkout {
	now := time.Now()
	return &ScheduledWorkout{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         title,
		Sport:         sport,
		ScheduledDate: date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// WithTimeOfDay sets the session slot (morning, afternoon, evening).
func (sw *ScheduledWorkout) WithTimeOfDay(slot string) *ScheduledWorkout {
	sw.TimeOfDay = slot
	return sw
}

// WithWorkout links a generated workout to the slot.
func (sw *ScheduledWorkout) WithWorkout(workoutID uuid.UUID) *ScheduledWorkout {
	sw.WorkoutID = &workoutID
	return sw
}
