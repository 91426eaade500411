// ABOUTME: Profile model holding display identity and onboarding state.
// ABOUTME: One row per user; updated by edits and the onboarding flow, never deleted.
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Profile is the per-user account profile.
type Profile struct {
	UserID              uuid.UUID
	FullName            string
	Username            string
	AvatarURL           string
	Email               string
	OnboardingCompleted bool
	Preferences         json.RawMessage
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewProfile creates a Profile for a user with current timestamps.
func NewProfile(userID uuid.UUID, email string) *Profile {
	now := time.Now()
	return &Profile{
		UserID:    userID,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithName sets the display name.
func (p *Profile) WithName(name string) *Profile {
	p.FullName = name
	return p
}

// WithUsername sets the handle.
func (p *Profile) WithUsername(username string) *Profile {
	p.Username = username
	return p
}
