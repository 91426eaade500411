// ABOUTME: Profile CRUD and the onboarding reset transaction.
// ABOUTME: Absence of a profile row surfaces as ErrNotFound, not failure.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/models"
)

// GetProfile retrieves the profile row for a user.
func (d *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT user_id, full_name, username, avatar_url, email,
		       onboarding_completed, preferences, created_at, updated_at
		FROM profiles
		WHERE user_id = ?
	`
	row := d.db.QueryRowContext(ctx, query, userID.String())

	var p models.Profile
	var idStr, createdAt, updatedAt string
	var fullName, username, avatarURL, email, preferences sql.NullString
	var completed int

	err := row.Scan(&idStr, &fullName, &username, &avatarURL, &email,
		&completed, &preferences, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.UserID, _ = uuid.Parse(idStr)
	p.FullName = fullName.String
	p.Username = username.String
	p.AvatarURL = avatarURL.String
	p.Email = email.String
	p.OnboardingCompleted = completed != 0
	if preferences.Valid && preferences.String != "" {
		p.Preferences = json.RawMessage(preferences.String)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &p, nil
}

// UpsertProfile writes the profile keyed by user id.
func (d *DB) UpsertProfile(ctx context.Context, p *models.Profile) error {
	query := `
		INSERT INTO profiles (user_id, full_name, username, avatar_url, email,
		                      onboarding_completed, preferences, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			full_name = excluded.full_name,
			username = excluded.username,
			avatar_url = excluded.avatar_url,
			email = excluded.email,
			onboarding_completed = excluded.onboarding_completed,
			preferences = excluded.preferences,
			updated_at = excluded.updated_at
	`
	var prefs any
	if len(p.Preferences) > 0 {
		prefs = string(p.Preferences)
	}
	_, err := d.db.ExecContext(ctx, query,
		p.UserID.String(), p.FullName, p.Username, p.AvatarURL, p.Email,
		boolToInt(p.OnboardingCompleted), prefs,
		p.CreatedAt.Format(time.RFC3339), time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// ResetOnboarding clears the onboarding flag and preferences and deletes
// the sport profile row. Both writes commit or roll back together.
func (d *DB) ResetOnboarding(ctx context.Context, userID uuid.UUID) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("reset onboarding: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE profiles
		SET onboarding_completed = 0, preferences = NULL, updated_at = ?
		WHERE user_id = ?`,
		time.Now().Format(time.RFC3339), userID.String(),
	)
	if err != nil {
		return fmt.Errorf("reset onboarding: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reset onboarding: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sport_profiles WHERE user_id = ?`, userID.String()); err != nil {
		return fmt.Errorf("reset onboarding: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("reset onboarding: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
