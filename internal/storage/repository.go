// ABOUTME: Repository interface for the fitness store.
// ABOUTME: Defines the contract state holders and the function server depend on.
package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/models"
)

// Repository defines the store interface. State holders receive it
// explicitly at construction so tests can substitute fakes.
type Repository interface {
	// Profile operations
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpsertProfile(ctx context.Context, p *models.Profile) error
	// ResetOnboarding clears the onboarding flag and preferences and
	// removes the sport profile in a single transaction.
	ResetOnboarding(ctx context.Context, userID uuid.UUID) error

	// Sport profile operations
	GetSportProfile(ctx context.Context, userID uuid.UUID) (*models.SportProfile, error)
	UpsertSportProfile(ctx context.Context, sp *models.SportProfile) error
	DeleteSportProfile(ctx context.Context, userID uuid.UUID) error

	// Goal operations
	CreateGoal(ctx context.Context, g *models.Goal) error
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*models.Goal, error)
	UpdateGoalProgress(ctx context.Context, id uuid.UUID, currentValue float64) error
	CompleteGoal(ctx context.Context, id uuid.UUID) error
	DeleteGoal(ctx context.Context, id uuid.UUID) error

	// Workout operations
	CreateWorkout(ctx context.Context, w *models.Workout) error
	GetWorkout(ctx context.Context, id uuid.UUID) (*models.Workout, error)
	ListWorkouts(ctx context.Context, userID uuid.UUID, sport string, limit int) ([]*models.Workout, error)

	// Scheduled workout operations
	CreateScheduledWorkout(ctx context.Context, sw *models.ScheduledWorkout) error
	ListScheduledWorkouts(ctx context.Context, userID uuid.UUID, from, to string) ([]*models.ScheduledWorkout, error)
	CompleteScheduledWorkout(ctx context.Context, id uuid.UUID) error

	// Health snapshot operations. Upsert conflict key is the user id, so
	// a later date overwrites the previous snapshot.
	UpsertHealthSnapshot(ctx context.Context, s *models.HealthSnapshot) error
	GetHealthSnapshot(ctx context.Context, userID uuid.UUID) (*models.HealthSnapshot, error)

	// Workout Q&A persistence (best-effort from the ask function)
	SaveWorkoutQuestion(ctx context.Context, q *models.WorkoutQuestion) error

	// Bearer-token auth for the function server
	UserForToken(ctx context.Context, token string) (*models.User, error)

	// Lifecycle
	Close() error
}
