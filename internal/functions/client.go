// ABOUTME: Client for invoking functions on a remote function server.
// ABOUTME: POSTs JSON with the session bearer token.

package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client invokes named functions over HTTP.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a function client for the given server base URL and
// session token.
func NewClient(baseURL, token string) *Client {
	return &Client{baseURL: baseURL, token: token, client: http.DefaultClient}
}

// Invoke calls the named function with body and decodes the JSON
// response into out. A non-2xx status becomes an error carrying the
// server's error message when one is present.
func (c *Client) Invoke(ctx context.Context, name string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/functions/v1/%s", c.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("invoke %s: %w", name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", name, apiErr.Error)
		}
		return fmt.Errorf("%s returned %d", name, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
