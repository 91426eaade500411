// ABOUTME: HealthSnapshot model aggregating smartwatch metrics for one date.
// ABOUTME: Persisted keyed by user, so only the latest snapshot survives.
package models

import (
	"time"

	"github.com/google/uuid"
)

// HeartRateStats holds aggregated heart-rate readings for one day.
type HeartRateStats struct {
	Average int `json:"average"`
	Max     int `json:"max"`
	Min     int `json:"min"`
}

// SleepStats holds sleep-phase minutes for one night.
type SleepStats struct {
	Total int `json:"total"`
	Deep  int `json:"deep"`
	Light int `json:"light"`
	REM   int `json:"rem"`
}

// HealthSnapshot is a point-in-time aggregate of device health metrics.
// Missing or failed categories carry zeroes rather than failing the whole
// snapshot.
type HealthSnapshot struct {
	UserID    uuid.UUID      `json:"-"`
	Date      string         `json:"date"` // YYYY-MM-DD
	Steps     int            `json:"steps"`
	HeartRate HeartRateStats `json:"heart_rate"`
	Sleep     SleepStats     `json:"sleep"`
	Source    string         `json:"source"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
}

// NewHealthSnapshot creates an empty snapshot for a user and date.
func NewHealthSnapshot(userID uuid.UUID, date string, source string) *HealthSnapshot {
	now := time.Now()
	return &HealthSnapshot{
		UserID:    userID,
		Date:      date,
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
