// ABOUTME: Shared fakes for state holder tests.
// ABOUTME: fakeRepo and fakeCapability substitute the store and device SDK.
package state

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/healthkit"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/pulsetrack/pulse/internal/storage"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// fakeRepo implements storage.Repository with canned responses.
type fakeRepo struct {
	profile    *models.Profile
	profileErr error

	sportProfile *models.SportProfile
	sportErr     error

	snapshots []*models.HealthSnapshot
	upsertErr error

	resetErr    error
	resetCalled bool

	getProfileCalls      int
	getSportProfileCalls int
	savedSportProfile    *models.SportProfile
}

func (f *fakeRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	f.getProfileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	if f.profile == nil {
		return nil, storage.ErrNotFound
	}
	return f.profile, nil
}

func (f *fakeRepo) UpsertProfile(ctx context.Context, p *models.Profile) error { return nil }

func (f *fakeRepo) ResetOnboarding(ctx context.Context, userID uuid.UUID) error {
	f.resetCalled = true
	if f.resetErr != nil {
		return f.resetErr
	}
	if f.profile != nil {
		f.profile.OnboardingCompleted = false
		f.profile.Preferences = nil
	}
	f.sportProfile = nil
	return nil
}

func (f *fakeRepo) GetSportProfile(ctx context.Context, userID uuid.UUID) (*models.SportProfile, error) {
	f.getSportProfileCalls++
	if f.sportErr != nil {
		return nil, f.sportErr
	}
	if f.sportProfile == nil {
		return nil, storage.ErrNotFound
	}
	return f.sportProfile, nil
}

func (f *fakeRepo) UpsertSportProfile(ctx context.Context, sp *models.SportProfile) error {
	if f.sportErr != nil {
		return f.sportErr
	}
	f.savedSportProfile = sp
	return nil
}

func (f *fakeRepo) DeleteSportProfile(ctx context.Context, userID uuid.UUID) error {
	f.sportProfile = nil
	return nil
}

func (f *fakeRepo) CreateGoal(ctx context.Context, g *models.Goal) error { return nil }
func (f *fakeRepo) ListGoals(ctx context.Context, userID uuid.UUID) ([]*models.Goal, error) {
	return nil, nil
}
func (f *fakeRepo) UpdateGoalProgress(ctx context.Context, id uuid.UUID, v float64) error {
	return nil
}
func (f *fakeRepo) CompleteGoal(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeRepo) DeleteGoal(ctx context.Context, id uuid.UUID) error   { return nil }

func (f *fakeRepo) CreateWorkout(ctx context.Context, w *models.Workout) error { return nil }
func (f *fakeRepo) GetWorkout(ctx context.Context, id uuid.UUID) (*models.Workout, error) {
	return nil, storage.ErrNotFound
}
func (f *fakeRepo) ListWorkouts(ctx context.Context, userID uuid.UUID, sport string, limit int) ([]*models.Workout, error) {
	return nil, nil
}

func (f *fakeRepo) CreateScheduledWorkout(ctx context.Context, sw *models.ScheduledWorkout) error {
	return nil
}
func (f *fakeRepo) ListScheduledWorkouts(ctx context.Context, userID uuid.UUID, from, to string) ([]*models.ScheduledWorkout, error) {
	return nil, nil
}
func (f *fakeRepo) CompleteScheduledWorkout(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeRepo) UpsertHealthSnapshot(ctx context.Context, s *models.HealthSnapshot) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	// Conflict key is the user id: replace any prior snapshot for the user.
	for i, existing := range f.snapshots {
		if existing.UserID == s.UserID {
			f.snapshots[i] = s
			return nil
		}
	}
	f.snapshots = append(f.snapshots, s)
	return nil
}

func (f *fakeRepo) GetHealthSnapshot(ctx context.Context, userID uuid.UUID) (*models.HealthSnapshot, error) {
	for _, s := range f.snapshots {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeRepo) SaveWorkoutQuestion(ctx context.Context, q *models.WorkoutQuestion) error {
	return nil
}

func (f *fakeRepo) UserForToken(ctx context.Context, token string) (*models.User, error) {
	return nil, storage.ErrNotFound
}

func (f *fakeRepo) Close() error { return nil }

// fakeCapability implements healthkit.Capability with canned results.
type fakeCapability struct {
	connection  healthkit.ConnectionStatus
	connErr     error
	permissions healthkit.PermissionResult

	steps     healthkit.StepsResult
	stepsErr  error
	heartRate healthkit.HeartRateResult
	hrErr     error
	sleep     healthkit.SleepResult
	sleepErr  error

	connectionCalls int
}

func (f *fakeCapability) CheckConnection(ctx context.Context) (healthkit.ConnectionStatus, error) {
	f.connectionCalls++
	return f.connection, f.connErr
}

func (f *fakeCapability) RequestPermissions(ctx context.Context) (healthkit.PermissionResult, error) {
	return f.permissions, nil
}

func (f *fakeCapability) GetStepsData(ctx context.Context, date string) (healthkit.StepsResult, error) {
	return f.steps, f.stepsErr
}

func (f *fakeCapability) GetHeartRateData(ctx context.Context, date string) (healthkit.HeartRateResult, error) {
	return f.heartRate, f.hrErr
}

func (f *fakeCapability) GetSleepData(ctx context.Context, date string) (healthkit.SleepResult, error) {
	return f.sleep, f.sleepErr
}

var errRemote = errors.New("remote store unavailable")
