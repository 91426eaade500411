// ABOUTME: HTTP client for the device health bridge.
// ABOUTME: Plain JSON over POST; failure is detected only by the call failing.
package healthkit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// BridgeClient talks to a health bridge daemon exposing the device SDK
// over local HTTP.
type BridgeClient struct {
	baseURL string
	client  *http.Client
}

// NewBridgeClient creates a client for the bridge at baseURL.
func NewBridgeClient(baseURL string) *BridgeClient {
	return &BridgeClient{
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

type dateRequest struct {
	Date string `json:"date"`
}

// CheckConnection probes the bridge connection state.
func (b *BridgeClient) CheckConnection(ctx context.Context) (ConnectionStatus, error) {
	var out ConnectionStatus
	err := b.post(ctx, "/connection", nil, &out)
	return out, err
}

// RequestPermissions asks the device for health data permissions.
func (b *BridgeClient) RequestPermissions(ctx context.Context) (PermissionResult, error) {
	var out PermissionResult
	err := b.post(ctx, "/permissions", nil, &out)
	return out, err
}

// GetStepsData fetches the step count for a date (YYYY-MM-DD).
func (b *BridgeClient) GetStepsData(ctx context.Context, date string) (StepsResult, error) {
	var out StepsResult
	err := b.post(ctx, "/steps", dateRequest{Date: date}, &out)
	return out, err
}

// GetHeartRateData fetches heart-rate stats for a date.
func (b *BridgeClient) GetHeartRateData(ctx context.Context, date string) (HeartRateResult, error) {
	var out HeartRateResult
	err := b.post(ctx, "/heart-rate", dateRequest{Date: date}, &out)
	return out, err
}

// GetSleepData fetches sleep stats for a date.
func (b *BridgeClient) GetSleepData(ctx context.Context, date string) (SleepResult, error) {
	var out SleepResult
	err := b.post(ctx, "/sleep", dateRequest{Date: date}, &out)
	return out, err
}

func (b *BridgeClient) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("bridge request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bridge returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
