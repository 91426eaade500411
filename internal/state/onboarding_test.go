// ABOUTME: Tests for the onboarding gate.
// ABOUTME: Missing rows and read errors both resolve to needing setup.
package state

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/models"
)

func testUser() *models.User {
	return &models.User{ID: uuid.New(), Email: "user@example.com"}
}

func TestNeedsOnboardingWithoutProfile(t *testing.T) {
	repo := &fakeRepo{} // no profile row
	o := NewOnboardingState(repo, testLogger(), testUser())

	o.Load(context.Background())

	if !o.NeedsOnboarding() {
		t.Error("expected needsOnboarding=true for missing profile")
	}
	if o.Loading() {
		t.Error("expected loading resolved")
	}
}

func TestNeedsOnboardingCompleted(t *testing.T) {
	user := testUser()
	p := models.NewProfile(user.ID, user.Email)
	p.OnboardingCompleted = true
	o := NewOnboardingState(&fakeRepo{profile: p}, testLogger(), user)

	o.Load(context.Background())

	if o.NeedsOnboarding() {
		t.Error("expected needsOnboarding=false for completed profile")
	}
}

func TestNeedsOnboardingIncomplete(t *testing.T) {
	user := testUser()
	p := models.NewProfile(user.ID, user.Email)
	o := NewOnboardingState(&fakeRepo{profile: p}, testLogger(), user)

	o.Load(context.Background())

	if !o.NeedsOnboarding() {
		t.Error("expected needsOnboarding=true for incomplete profile")
	}
}

func TestNeedsOnboardingFailsOpen(t *testing.T) {
	o := NewOnboardingState(&fakeRepo{profileErr: errRemote}, testLogger(), testUser())

	o.Load(context.Background())

	if !o.NeedsOnboarding() {
		t.Error("expected needsOnboarding=true on read error")
	}
	if o.Loading() {
		t.Error("expected loading resolved after error")
	}
}

func TestAnonymousSkipsFetch(t *testing.T) {
	repo := &fakeRepo{}
	o := NewOnboardingState(repo, testLogger(), nil)

	o.Load(context.Background())

	if repo.getProfileCalls != 0 {
		t.Errorf("expected no fetch for anonymous session, got %d calls", repo.getProfileCalls)
	}
	if o.Loading() {
		t.Error("expected loading resolved immediately")
	}
	if o.NeedsOnboarding() {
		t.Error("anonymous session should not need onboarding")
	}
}

func TestCompleteOnboardingIsLocal(t *testing.T) {
	repo := &fakeRepo{} // would resolve to true if fetched
	o := NewOnboardingState(repo, testLogger(), testUser())
	o.Load(context.Background())

	calls := repo.getProfileCalls
	o.Complete()

	if o.NeedsOnboarding() {
		t.Error("expected gate closed after Complete")
	}
	if repo.getProfileCalls != calls {
		t.Error("Complete must not trigger a fetch")
	}
}

func TestResetOnboarding(t *testing.T) {
	user := testUser()
	p := models.NewProfile(user.ID, user.Email)
	p.OnboardingCompleted = true
	repo := &fakeRepo{profile: p, sportProfile: models.DefaultSportProfile(user.ID)}
	o := NewOnboardingState(repo, testLogger(), user)
	o.Load(context.Background())

	if err := o.Reset(context.Background()); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if !repo.resetCalled {
		t.Error("expected store reset invoked")
	}
	if !o.NeedsOnboarding() {
		t.Error("expected gate reopened after reset")
	}
	if repo.sportProfile != nil {
		t.Error("expected sport profile cleared with the same transaction")
	}
}

func TestResetOnboardingFailure(t *testing.T) {
	user := testUser()
	p := models.NewProfile(user.ID, user.Email)
	p.OnboardingCompleted = true
	repo := &fakeRepo{profile: p, resetErr: errRemote}
	o := NewOnboardingState(repo, testLogger(), user)
	o.Load(context.Background())

	if err := o.Reset(context.Background()); err == nil {
		t.Fatal("expected error from failed reset")
	}
	if o.NeedsOnboarding() {
		t.Error("gate must not reopen when the reset transaction fails")
	}
}
