// ABOUTME: SportProfile model and the sport catalog lookup.
// ABOUTME: Created lazily on first save; deletable to reset onboarding.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Default training cadence used until the user saves a profile.
const (
	DefaultTrainingFrequency = 3
	DefaultSessionDuration   = 60
)

// SportProfile captures the user's sport and training preferences.
type SportProfile struct {
	UserID            uuid.UUID
	PrimarySport      string
	ExperienceLevel   string
	CompetitiveLevel  string
	TrainingFrequency int // sessions per week
	SessionDuration   int // minutes
	CurrentGoals      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DefaultSportProfile returns the empty profile with default cadence.
func DefaultSportProfile(userID uuid.UUID) *SportProfile {
	return &SportProfile{
		UserID:            userID,
		TrainingFrequency: DefaultTrainingFrequency,
		SessionDuration:   DefaultSessionDuration,
	}
}

// HasProfile reports whether the profile is complete enough to drive
// workout generation: both primary sport and experience level are set.
func (sp *SportProfile) HasProfile() bool {
	return sp.PrimarySport != "" && sp.ExperienceLevel != ""
}

// SportInfo is the display label and icon for a sport code.
type SportInfo struct {
	Label string
	Icon  string
}

var sportCatalog = map[string]SportInfo{
	"swimming":   {Label: "Swimming", Icon: "🏊‍♂️"},
	"running":    {Label: "Running", Icon: "🏃‍♂️"},
	"cycling":    {Label: "Cycling", Icon: "🚴‍♂️"},
	"basketball": {Label: "Basketball", Icon: "🏀"},
	"soccer":     {Label: "Soccer", Icon: "⚽"},
	"tennis":     {Label: "Tennis", Icon: "🎾"},
}

// AllSports returns the known sport codes.
var AllSports = []string{"swimming", "running", "cycling", "basketball", "soccer", "tennis"}

// IsValidSport checks if a string is a known sport code.
func IsValidSport(s string) bool {
	_, ok := sportCatalog[s]
	return ok
}

// GetSportInfo looks up display info for a sport code. Unknown codes get
// the code itself as label and a generic icon; it never fails.
func GetSportInfo(code string) SportInfo {
	if info, ok := sportCatalog[code]; ok {
		return info
	}
	return SportInfo{Label: code, Icon: "🏃‍♂️"}
}
