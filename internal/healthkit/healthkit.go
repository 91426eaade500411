// ABOUTME: Capability contract for the external device health SDK.
// ABOUTME: Every call reports success explicitly; fields are optional on failure.
package healthkit

import "context"

// ConnectionStatus is the result of a connection probe.
type ConnectionStatus struct {
	IsConnected bool   `json:"isConnected"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

// PermissionResult is the result of a permission request.
type PermissionResult struct {
	Success     bool     `json:"success"`
	Permissions []string `json:"permissions,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// StepsResult carries the step count for one date.
type StepsResult struct {
	Success    bool   `json:"success"`
	TotalSteps int    `json:"totalSteps,omitempty"`
	Error      string `json:"error,omitempty"`
}

// HeartRateResult carries aggregated heart-rate readings for one date.
type HeartRateResult struct {
	Success          bool   `json:"success"`
	AverageHeartRate int    `json:"averageHeartRate,omitempty"`
	MaxHeartRate     int    `json:"maxHeartRate,omitempty"`
	MinHeartRate     int    `json:"minHeartRate,omitempty"`
	Error            string `json:"error,omitempty"`
}

// SleepResult carries sleep-phase minutes for one date.
type SleepResult struct {
	Success           bool   `json:"success"`
	TotalSleepMinutes int    `json:"totalSleepMinutes,omitempty"`
	DeepSleepMinutes  int    `json:"deepSleepMinutes,omitempty"`
	LightSleepMinutes int    `json:"lightSleepMinutes,omitempty"`
	RemSleepMinutes   int    `json:"remSleepMinutes,omitempty"`
	Error             string `json:"error,omitempty"`
}

// Capability is the device health SDK surface. Implementations talk to a
// native bridge; tests substitute fakes.
type Capability interface {
	CheckConnection(ctx context.Context) (ConnectionStatus, error)
	RequestPermissions(ctx context.Context) (PermissionResult, error)
	GetStepsData(ctx context.Context, date string) (StepsResult, error)
	GetHeartRateData(ctx context.Context, date string) (HeartRateResult, error)
	GetSleepData(ctx context.Context, date string) (SleepResult, error)
}
