// ABOUTME: HealthSnapshot persistence with a user-keyed upsert.
// ABOUTME: Conflict target is the user id, so the latest snapshot wins.
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

type snapshotPayload struct {
	Date      string                `json:"date"`
	Steps     int                   `json:"steps"`
	HeartRate models.HeartRateStats `json:"heart_rate"`
	Sleep     models.SleepStats     `json:"sleep"`
	Source    string                `json:"source"`
}

// UpsertHealthSnapshot writes a snapshot keyed by user id. A snapshot for
// a later date replaces the previous one; history is not kept.
func (d *DB) UpsertHealthSnapshot(ctx context.Context, s *models.HealthSnapshot) error {
	payload, err := json.Marshal(snapshotPayload{
		Date:      s.Date,
		Steps:     s.Steps,
		HeartRate: s.HeartRate,
		Sleep:     s.Sleep,
		Source:    s.Source,
	})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	now := time.Now().Format(time.RFC3339)
	query := `
		INSERT INTO health_snapshots (user_id, date, data, source, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			date = excluded.date,
			data = excluded.data,
			source = excluded.source,
			updated_at = excluded.updated_at
	`
	_, err = d.db.ExecContext(ctx, query,
		s.UserID.String(), s.Date, string(payload), s.Source, now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert health snapshot: %w", err)
	}
	return nil
}

// GetHealthSnapshot retrieves the latest snapshot for a user.
func (d *DB) GetHealthSnapshot(ctx context.Context, userID uuid.UUID) (*models.HealthSnapshot, error) {
	query := `
		SELECT user_id, data, created_at, updated_at
		FROM health_snapshots
		WHERE user_id = ?
	`
	row := d.db.QueryRowContext(ctx, query, userID.String())

	var idStr, data, createdAt, updatedAt string
	err := row.Scan(&idStr, &data, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get health snapshot: %w", err)
	}

	var payload snapshotPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	var s models.HealthSnapshot
	s.UserID, _ = uuid.Parse(idStr)
	s.Date = payload.Date
	s.Steps = payload.Steps
	s.HeartRate = payload.HeartRate
	s.Sleep = payload.Sleep
	s.Source = payload.Source
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &s, nil
}
