// ABOUTME: Onboarding gate derived from the profile's completed flag.
// ABOUTME: Fails open: any missing row or read error means show setup.
package state

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/pulsetrack/pulse/internal/storage"
)

// OnboardingState decides whether the setup flow should be shown.
type OnboardingState struct {
	repo   storage.Repository
	logger *log.Logger
	user   *models.User
	loader loader[bool]
}

// NewOnboardingState creates the gate for a user. user may be nil for
// anonymous sessions.
func NewOnboardingState(repo storage.Repository, logger *log.Logger, user *models.User) *OnboardingState {
	return &OnboardingState{repo: repo, logger: logger, user: user}
}

// Load derives the gate from the persisted profile. No profile row or any
// read error resolves to needing onboarding; the conservative path is to
// show setup rather than skip it.
func (o *OnboardingState) Load(ctx context.Context) {
	gen := o.loader.begin()

	if o.user == nil {
		// Anonymous session: skip the fetch entirely.
		o.loader.finish(gen, false)
		return
	}

	p, err := o.repo.GetProfile(ctx, o.user.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		o.loader.finish(gen, true)
	case err != nil:
		o.logger.Warn("failed to check onboarding status", "err", err)
		o.loader.finish(gen, true)
	default:
		o.loader.finish(gen, !p.OnboardingCompleted)
	}
}

// NeedsOnboarding reports whether the setup flow should run.
func (o *OnboardingState) NeedsOnboarding() bool {
	needs, _ := o.loader.get()
	return needs
}

// Loading reports whether the gate is still resolving.
func (o *OnboardingState) Loading() bool {
	return o.loader.isLoading()
}

// Complete flips the gate locally. The persisted flag is expected to have
// been written by the setup flow before this is called; no request fires.
func (o *OnboardingState) Complete() {
	gen := o.loader.begin()
	o.loader.finish(gen, false)
}

// Reset clears the onboarding flag and preferences and removes the sport
// profile, all in one store transaction. The gate reopens only when the
// transaction commits.
func (o *OnboardingState) Reset(ctx context.Context) error {
	if o.user == nil {
		return errors.New("no signed-in user")
	}

	if err := o.repo.ResetOnboarding(ctx, o.user.ID); err != nil {
		o.logger.Error("failed to reset onboarding", "err", err)
		return err
	}

	gen := o.loader.begin()
	o.loader.finish(gen, true)
	return nil
}
