// ABOUTME: Goal model with derived progress calculation.
// ABOUTME: Progress is clamped for display only; the raw ratio is kept.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a user-defined target with numeric progress.
type Goal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Description  string
	Category     string
	CurrentValue float64
	TargetValue  float64
	Unit         string
	TargetDate   *time.Time
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewGoal creates a Goal with generated UUID and current timestamps.
func NewGoal(userID uuid.UUID, name string, target float64, unit string) *Goal {
	now := time.Now()
	return &Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		TargetValue: target,
		Unit:        unit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// WithCategory sets the goal category.
func (g *Goal) WithCategory(category string) *Goal {
	g.Category = category
	return g
}

// WithDescription sets the goal description.
func (g *Goal) WithDescription(desc string) *Goal {
	g.Description = desc
	return g
}

// WithTargetDate sets the target date.
func (g *Goal) WithTargetDate(t time.Time) *Goal {
	g.TargetDate = &t
	return g
}

// Progress returns the raw completion ratio. Values past the target stay
// above 1; a zero target reads as no progress.
func (g *Goal) Progress() float64 {
	if g.TargetValue == 0 {
		return 0
	}
	return g.CurrentValue / g.TargetValue
}

// ProgressPercent returns the display percentage clamped to [0, 100].
func (g *Goal) ProgressPercent() float64 {
	pct := g.Progress() * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
