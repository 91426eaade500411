// ABOUTME: Workout question persistence and bearer-token lookup.
// ABOUTME: Tokens map API callers to users for the function server.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/models"
)

// SaveWorkoutQuestion stores a question/answer row.
func (d *DB) SaveWorkoutQuestion(ctx context.Context, q *models.WorkoutQuestion) error {
	var workoutID any
	if q.WorkoutID != nil {
		workoutID = q.WorkoutID.String()
	}

	query := `
		INSERT INTO workout_questions (id, user_id, workout_id, question, answer, sport, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.ExecContext(ctx, query,
		q.ID.String(), q.UserID.String(), workoutID, q.Question, q.Answer, q.Sport,
		q.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save workout question: %w", err)
	}
	return nil
}

// UserForToken resolves a bearer token to its user. Unknown tokens return
// ErrNotFound.
func (d *DB) UserForToken(ctx context.Context, token string) (*models.User, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT user_id, email FROM api_tokens WHERE token = ?`, token)

	var idStr string
	var email sql.NullString
	if err := row.Scan(&idStr, &email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("user for token: %w", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("user for token: %w", err)
	}
	return &models.User{ID: id, Email: email.String}, nil
}

// RegisterToken stores a bearer token for a user so the function server
// can authenticate them.
func (d *DB) RegisterToken(ctx context.Context, token string, user *models.User) error {
	query := `
		INSERT INTO api_tokens (token, user_id, email, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(token) DO UPDATE SET
			user_id = excluded.user_id,
			email = excluded.email
	`
	_, err := d.db.ExecContext(ctx, query,
		token, user.ID.String(), user.Email, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("register token: %w", err)
	}
	return nil
}
