// ABOUTME: SportProfile CRUD keyed by user id.
// ABOUTME: One row per user, created lazily on first save.
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

// GetSportProfile retrieves the sport profile for a user.
func (d *DB) GetSportProfile(ctx context.Context, userID uuid.UUID) (*models.SportProfile, error) {
	query := `
		SELECT user_id, primary_sport, experience_level, competitive_level,
		       training_frequency, session_duration, current_goals, created_at, updated_at
		FROM sport_profiles
		WHERE user_id = ?
	`
	row := d.db.QueryRowContext(ctx, query, userID.String())

	var sp models.SportProfile
	var idStr, createdAt, updatedAt string
	var competitive, goals sql.NullString

	err := row.Scan(&idStr, &sp.PrimarySport, &sp.ExperienceLevel, &competitive,
		&sp.TrainingFrequency, &sp.SessionDuration, &goals, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get sport profile: %w", err)
	}

	sp.UserID, _ = uuid.Parse(idStr)
	sp.CompetitiveLevel = competitive.String
	sp.CurrentGoals = goals.String
	sp.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	sp.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &sp, nil
}

// UpsertSportProfile writes the sport profile keyed by user id.
func (d *DB) UpsertSportProfile(ctx context.Context, sp *models.SportProfile) error {
	now := time.Now().Format(time.RFC3339)
	created := now
	if !sp.CreatedAt.IsZero() {
		created = sp.CreatedAt.Format(time.RFC3339)
	}

	query := `
		INSERT INTO sport_profiles (user_id, primary_sport, experience_level, competitive_level,
		                            training_frequency, session_duration, current_goals, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			primary_sport = excluded.primary_sport,
			experience_level = excluded.experience_level,
			competitive_level = excluded.competitive_level,
			training_frequency = excluded.training_frequency,
			session_duration = excluded.session_duration,
			current_goals = excluded.current_goals,
			updated_at = excluded.updated_at
	`
	_, err := d.db.ExecContext(ctx, query,
		sp.UserID.String(), sp.PrimarySport, sp.ExperienceLevel, sp.CompetitiveLevel,
		sp.TrainingFrequency, sp.SessionDuration, sp.CurrentGoals, created, now,
	)
	if err != nil {
		return fmt.Errorf("upsert sport profile: %w", err)
	}
	return nil
}

// DeleteSportProfile removes the sport profile row for a user. Deleting a
// missing row is not an error.
func (d *DB) DeleteSportProfile(ctx context.Context, userID uuid.UUID) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM sport_profiles WHERE user_id = ?`, userID.String()); err != nil {
		return fmt.Errorf("delete sport profile: %w", err)
	}
	return nil
}
