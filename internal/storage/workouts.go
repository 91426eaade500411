// ABOUTME: Workout and ScheduledWorkout CRUD for the fitness store.
// ABOUTME: Exercise lists are serialized to JSON in a single column.
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

// CreateWorkout stores a new workout.
func (d *DB) CreateWorkout(ctx context.Context, w *models.Workout) error {
	exercises, err := json.Marshal(w.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}
	if w.Exercises == nil {
		exercises = []byte("[]")
	}

	query := `
		INSERT INTO workouts (id, user_id, title, description, sport, workout_type,
		                      duration, exercises, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.ExecContext(ctx, query,
		w.ID.String(), w.UserID.String(), w.Title, w.Description, w.Sport,
		w.WorkoutType, w.Duration, string(exercises), boolToInt(w.Completed),
		w.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a workout by ID.
func (d *DB) GetWorkout(ctx context.Context, id uuid.UUID) (*models.Workout, error) {
	query := `
		SELECT id, user_id, title, description, sport, workout_type,
		       duration, exercises, completed, created_at
		FROM workouts
		WHERE id = ?
	`
	w, err := scanWorkout(d.db.QueryRowContext(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return w, nil
}

// ListWorkouts retrieves workouts for a user, most recent first, with
// optional sport filter and limit.
func (d *DB) ListWorkouts(ctx context.Context, userID uuid.UUID, sport string, limit int) ([]*models.Workout, error) {
	query := `
		SELECT id, user_id, title, description, sport, workout_type,
		       duration, exercises, completed, created_at
		FROM workouts
		WHERE user_id = ?
	`
	args := []any{userID.String()}

	if sport != "" {
		query += " AND sport = ?"
		args = append(args, sport)
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []*models.Workout
	for rows.Next() {
		w, err := scanWorkoutRows(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkoutFrom(s rowScanner) (*models.Workout, error) {
	var w models.Workout
	var idStr, userStr, createdAt, exercises string
	var description, workoutType sql.NullString
	var duration sql.NullInt64
	var completed int

	err := s.Scan(&idStr, &userStr, &w.Title, &description, &w.Sport,
		&workoutType, &duration, &exercises, &completed, &createdAt)
	if err != nil {
		return nil, err
	}

	w.ID, _ = uuid.Parse(idStr)
	w.UserID, _ = uuid.Parse(userStr)
	w.Description = description.String
	w.WorkoutType = workoutType.String
	if duration.Valid {
		v := int(duration.Int64)
		w.Duration = &v
	}
	if err := json.Unmarshal([]byte(exercises), &w.Exercises); err != nil {
		return nil, fmt.Errorf("unmarshal exercises: %w", err)
	}
	w.Completed = completed != 0
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &w, nil
}

func scanWorkout(row *sql.Row) (*models.Workout, error) {
	return scanWorkoutFrom(row)
}

func scanWorkoutRows(rows *sql.Rows) (*models.Workout, error) {
	w, err := scanWorkoutFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("scan workout: %w", err)
	}
	return w, nil
}

// CreateScheduledWorkout stores a workout instance bound to a date.
func (d *DB) CreateScheduledWorkout(ctx context.Context, sw *models.ScheduledWorkout) error {
	var workoutID any
	if sw.WorkoutID != nil {
		workoutID = sw.WorkoutID.String()
	}

	query := `
		INSERT INTO scheduled_workouts (id, user_id, title, sport, workout_type, scheduled_date,
		                                session_time_of_day, workout_id, completed, skipped,
		                                created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.ExecContext(ctx, query,
		sw.ID.String(), sw.UserID.String(), sw.Title, sw.Sport, sw.WorkoutType,
		sw.ScheduledDate.Format("2006-01-02"), sw.TimeOfDay, workoutID,
		boolToInt(sw.Completed), boolToInt(sw.Skipped),
		sw.CreatedAt.Format(time.RFC3339), sw.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create scheduled workout: %w", err)
	}
	return nil
}

// ListScheduledWorkouts retrieves scheduled workouts in a date range
// (inclusive, YYYY-MM-DD), ordered by date.
func (d *DB) ListScheduledWorkouts(ctx context.Context, userID uuid.UUID, from, to string) ([]*models.ScheduledWorkout, error) {
	query := `
		SELECT id, user_id, title, sport, workout_type, scheduled_date,
		       session_time_of_day, workout_id, completed, skipped, created_at, updated_at
		FROM scheduled_workouts
		WHERE user_id = ? AND scheduled_date >= ? AND scheduled_date <= ?
		ORDER BY scheduled_date ASC
	`
	rows, err := d.db.QueryContext(ctx, query, userID.String(), from, to)
	if err != nil {
		return nil, fmt.Errorf("list scheduled workouts: %w", err)
	}
	defer rows.Close()

	var scheduled []*models.ScheduledWorkout
	for rows.Next() {
		var sw models.ScheduledWorkout
		var idStr, userStr, dateStr, createdAt, updatedAt string
		var workoutType, timeOfDay, workoutID sql.NullString
		var completed, skipped int

		err := rows.Scan(&idStr, &userStr, &sw.Title, &sw.Sport, &workoutType,
			&dateStr, &timeOfDay, &workoutID, &completed, &skipped,
			&createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan scheduled workout: %w", err)
		}

		sw.ID, _ = uuid.Parse(idStr)
		sw.UserID, _ = uuid.Parse(userStr)
		sw.WorkoutType = workoutType.String
		sw.TimeOfDay = timeOfDay.String
		if workoutID.Valid && workoutID.String != "" {
			if wid, err := uuid.Parse(workoutID.String); err == nil {
				sw.WorkoutID = &wid
			}
		}
		sw.ScheduledDate, _ = time.Parse("2006-01-02", dateStr)
		sw.Completed = completed != 0
		sw.Skipped = skipped != 0
		sw.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		sw.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

		scheduled = append(scheduled, &sw)
	}

	return scheduled, rows.Err()
}

// CompleteScheduledWorkout marks a scheduled workout as done.
func (d *DB) CompleteScheduledWorkout(ctx context.Context, id uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE scheduled_workouts SET completed = 1, updated_at = ? WHERE id = ?`,
		time.Now().Format(time.RFC3339), id.String(),
	)
	if err != nil {
		return fmt.Errorf("complete scheduled workout: %w", err)
	}
	return checkAffected(res)
}
