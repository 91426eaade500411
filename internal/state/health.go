// ABOUTME: Health data state: connection tracking and snapshot aggregation.
// ABOUTME: Sub-calls run in parallel; failed categories zero-fill, never abort.
package state

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pulsetrack/pulse/internal/cache"
	"github.com/pulsetrack/pulse/internal/healthkit"
	"github.com/pulsetrack/pulse/internal/models"
	"github.com/pulsetrack/pulse/internal/storage"
)

// HealthState aggregates device health data and tracks the bridge
// connection.
type HealthState struct {
	capability healthkit.Capability
	repo       storage.Repository
	cache      *cache.Cache
	logger     *log.Logger
	user       *models.User

	mu        sync.Mutex
	connected bool
	snapshot  *models.HealthSnapshot
}

// NewHealthState creates the holder and probes the connection once.
func NewHealthState(ctx context.Context, capability healthkit.Capability, repo storage.Repository, c *cache.Cache, logger *log.Logger, user *models.User) *HealthState {
	h := &HealthState{
		capability: capability,
		repo:       repo,
		cache:      c,
		logger:     logger,
		user:       user,
	}
	h.CheckConnection(ctx)
	return h
}

// CheckConnection probes the bridge and records the result. A probe
// failure reads as disconnected, never as an error to the caller.
func (h *HealthState) CheckConnection(ctx context.Context) healthkit.ConnectionStatus {
	status, err := h.capability.CheckConnection(ctx)
	if err != nil {
		h.logger.Warn("failed to check health connection", "err", err)
		status = healthkit.ConnectionStatus{IsConnected: false, Status: "error", Error: "connection failed"}
	}

	h.mu.Lock()
	h.connected = status.IsConnected
	h.mu.Unlock()
	return status
}

// RequestPermissions asks the device for access and re-probes the
// connection after a grant.
func (h *HealthState) RequestPermissions(ctx context.Context) healthkit.PermissionResult {
	result, err := h.capability.RequestPermissions(ctx)
	if err != nil {
		h.logger.Warn("failed to request health permissions", "err", err)
		return healthkit.PermissionResult{Success: false, Error: "permission request failed"}
	}
	if result.Success {
		h.CheckConnection(ctx)
	}
	return result
}

// Connected reports the last probed connection state.
func (h *HealthState) Connected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.connected
}

// Snapshot returns the last aggregated snapshot, if any.
func (h *HealthState) Snapshot() *models.HealthSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshot
}

// FetchHealthData queries steps, heart rate, and sleep for a date in
// parallel and combines them into one snapshot. A failed or missing
// category contributes zeroes; partial failure never fails the whole
// aggregation. The snapshot is persisted keyed by user (latest wins) and
// a persistence failure is logged, not surfaced.
func (h *HealthState) FetchHealthData(ctx context.Context, date string) *models.HealthSnapshot {
	var (
		wg        sync.WaitGroup
		steps     healthkit.StepsResult
		heartRate healthkit.HeartRateResult
		sleep     healthkit.SleepResult
		stepsErr  error
		hrErr     error
		sleepErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		steps, stepsErr = h.capability.GetStepsData(ctx, date)
	}()
	go func() {
		defer wg.Done()
		heartRate, hrErr = h.capability.GetHeartRateData(ctx, date)
	}()
	go func() {
		defer wg.Done()
		sleep, sleepErr = h.capability.GetSleepData(ctx, date)
	}()
	wg.Wait()

	userID := uuid.Nil
	if h.user != nil {
		userID = h.user.ID
	}

	snapshot := models.NewHealthSnapshot(userID, date, "samsung_health")
	if stepsErr == nil && steps.Success {
		snapshot.Steps = steps.TotalSteps
	} else if stepsErr != nil {
		h.logger.Warn("steps query failed", "err", stepsErr)
	}
	if hrErr == nil && heartRate.Success {
		snapshot.HeartRate = models.HeartRateStats{
			Average: heartRate.AverageHeartRate,
			Max:     heartRate.MaxHeartRate,
			Min:     heartRate.MinHeartRate,
		}
	} else if hrErr != nil {
		h.logger.Warn("heart rate query failed", "err", hrErr)
	}
	if sleepErr == nil && sleep.Success {
		snapshot.Sleep = models.SleepStats{
			Total: sleep.TotalSleepMinutes,
			Deep:  sleep.DeepSleepMinutes,
			Light: sleep.LightSleepMinutes,
			REM:   sleep.RemSleepMinutes,
		}
	} else if sleepErr != nil {
		h.logger.Warn("sleep query failed", "err", sleepErr)
	}

	if h.user != nil {
		if err := h.repo.UpsertHealthSnapshot(ctx, snapshot); err != nil {
			h.logger.Error("failed to store health snapshot", "err", err)
		}
		if h.cache != nil {
			if err := h.cache.Set(cache.SnapshotPrefix, h.user.ID.String(), snapshot); err != nil {
				h.logger.Warn("failed to cache health snapshot", "err", err)
			}
		}
	}

	h.mu.Lock()
	h.snapshot = snapshot
	h.mu.Unlock()

	return snapshot
}
