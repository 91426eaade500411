// ABOUTME: Goal CRUD operations for the fitness store.
// ABOUTME: Progress updates touch current_value only; completion is a flag.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/models"
)

// CreateGoal stores a new goal.
func (d *DB) CreateGoal(ctx context.Context, g *models.Goal) error {
	query := `
		INSERT INTO goals (id, user_id, name, description, category, current_value,
		                   target_value, unit, target_date, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	var targetDate any
	if g.TargetDate != nil {
		targetDate = g.TargetDate.Format("2006-01-02")
	}
	_, err := d.db.ExecContext(ctx, query,
		g.ID.String(), g.UserID.String(), g.Name, g.Description, g.Category,
		g.CurrentValue, g.TargetValue, g.Unit, targetDate, boolToInt(g.Completed),
		g.CreatedAt.Format(time.RFC3339), g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// ListGoals retrieves all goals for a user, most recent first.
func (d *DB) ListGoals(ctx context.Context, userID uuid.UUID) ([]*models.Goal, error) {
	query := `
		SELECT id, user_id, name, description, category, current_value,
		       target_value, unit, target_date, completed, created_at, updated_at
		FROM goals
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := d.db.QueryContext(ctx, query, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		var g models.Goal
		var idStr, userStr, createdAt, updatedAt string
		var description, category, unit, targetDate sql.NullString
		var completed int

		err := rows.Scan(&idStr, &userStr, &g.Name, &description, &category,
			&g.CurrentValue, &g.TargetValue, &unit, &targetDate, &completed,
			&createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}

		g.ID, _ = uuid.Parse(idStr)
		g.UserID, _ = uuid.Parse(userStr)
		g.Description = description.String
		g.Category = category.String
		g.Unit = unit.String
		if targetDate.Valid && targetDate.String != "" {
			if t, err := time.Parse("2006-01-02", targetDate.String); err == nil {
				g.TargetDate = &t
			}
		}
		g.Completed = completed != 0
		g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		g.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

		goals = append(goals, &g)
	}

	return goals, rows.Err()
}

// UpdateGoalProgress sets the current value of a goal.
func (d *DB) UpdateGoalProgress(ctx context.Context, id uuid.UUID, currentValue float64) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE goals SET current_value = ?, updated_at = ? WHERE id = ?`,
		currentValue, time.Now().Format(time.RFC3339), id.String(),
	)
	if err != nil {
		return fmt.Errorf("update goal progress: %w", err)
	}
	return checkAffected(res)
}

// CompleteGoal marks a goal as completed.
func (d *DB) CompleteGoal(ctx context.Context, id uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE goals SET completed = 1, updated_at = ? WHERE id = ?`,
		time.Now().Format(time.RFC3339), id.String(),
	)
	if err != nil {
		return fmt.Errorf("complete goal: %w", err)
	}
	return checkAffected(res)
}

// DeleteGoal removes a goal.
func (d *DB) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
