// ABOUTME: Sport profile state holder backed by the store and local cache.
// ABOUTME: Absence maps to defaults; a successful save becomes the new truth.
package state

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/cache"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/pulsetrack/pulse/internal/storage"
)

// SportProfileState loads and mutates the user's sport profile. All
// dependencies are passed in; nothing is reached through package globals.
type SportProfileState struct {
	repo   storage.Repository
	cache  *cache.Cache
	logger *log.Logger
	user   *models.User
	loader loader[*models.SportProfile]
}

// NewSportProfileState creates the state holder. cache may be nil.
func NewSportProfileState(repo storage.Repository, c *cache.Cache, logger *log.Logger, user *models.User) *SportProfileState {
	return &SportProfileState{repo: repo, cache: c, logger: logger, user: user}
}

// Load fetches the sport profile. A missing row becomes the default
// profile; any other read error is logged and the prior state kept, with
// the cached copy standing in when nothing was loaded yet.
func (s *SportProfileState) Load(ctx context.Context) {
	gen := s.loader.begin()

	if s.user == nil {
		// Anonymous session: no request fired.
		s.loader.fail(gen)
		return
	}

	sp, err := s.repo.GetSportProfile(ctx, s.user.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		sp = models.DefaultSportProfile(s.user.ID)
	case err != nil:
		s.logger.Warn("failed to load sport profile", "err", err)
		if cached := s.cachedProfile(); cached != nil {
			s.loader.finish(gen, cached)
			return
		}
		s.loader.fail(gen)
		return
	}

	if s.loader.finish(gen, sp) && err == nil && s.cache != nil {
		if cacheErr := s.cache.Set(cache.SportProfilePrefix, s.user.ID.String(), sp); cacheErr != nil {
			s.logger.Warn("failed to cache sport profile", "err", cacheErr)
		}
	}
}

// Reload re-runs the load cycle.
func (s *SportProfileState) Reload(ctx context.Context) {
	s.Load(ctx)
}

// Save upserts the profile. On success the in-memory state is replaced
// with the exact input; there is no read back.
func (s *SportProfileState) Save(ctx context.Context, sp *models.SportProfile) error {
	if s.user == nil {
		return errors.New("no signed-in user")
	}
	sp.UserID = s.user.ID

	if err := s.repo.UpsertSportProfile(ctx, sp); err != nil {
		return err
	}

	gen := s.loader.begin()
	s.loader.finish(gen, sp)

	if s.cache != nil {
		if err := s.cache.Set(cache.SportProfilePrefix, s.user.ID.String(), sp); err != nil {
			s.logger.Warn("failed to cache sport profile", "err", err)
		}
	}
	return nil
}

// Profile returns the current sport profile, defaulting when nothing has
// loaded yet.
func (s *SportProfileState) Profile() *models.SportProfile {
	sp, ok := s.loader.get()
	if !ok || sp == nil {
		if s.user != nil {
			return models.DefaultSportProfile(s.user.ID)
		}
		return models.DefaultSportProfile(uuid.Nil)
	}
	return sp
}

// HasProfile reports whether the loaded profile is complete.
func (s *SportProfileState) HasProfile() bool {
	return s.Profile().HasProfile()
}

// Loading reports whether a load cycle is in flight.
func (s *SportProfileState) Loading() bool {
	return s.loader.isLoading()
}

func (s *SportProfileState) cachedProfile() *models.SportProfile {
	if s.cache == nil || s.user == nil {
		return nil
	}
	var sp models.SportProfile
	if err := s.cache.Get(cache.SportProfilePrefix, s.user.ID.String(), &sp); err != nil {
		return nil
	}
	return &sp
}
