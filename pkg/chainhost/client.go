// Package chainhost provides the HTTP client for the external execution host that
// supplies block height, per-height entropy, and the atomic value-transfer primitive.
// Mock mode runs against an in-process deterministic ledger so the service can be
// exercised without a live host.
package chainhost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client represents an execution host client
type Client struct {
	BaseURL  string
	APIKey   string
	MockHost bool
	client   *http.Client
	mock     *mockLedger
}

// NewClient creates a new execution host client
func NewClient(baseURL, apiKey string, mockHost bool) *Client {
	c := &Client{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		MockHost: mockHost,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	if mockHost {
		c.mock = newMockLedger()
	}
	return c
}

type heightResponse struct {
	Height int64 `json:"height"`
}

type entropyResponse struct {
	Entropy uint64 `json:"entropy"`
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Height returns the host's current block height
func (c *Client) Height(ctx context.Context) (int64, error) {
	if c.MockHost {
		return c.mock.height(), nil
	}

	var res heightResponse
	if err := c.get(ctx, "/v1/height", &res); err != nil {
		return 0, err
	}
	return res.Height, nil
}

// EntropyAt returns the host's entropy value for a past height, nominally that block's
// timestamp
func (c *Client) EntropyAt(ctx context.Context, height int64) (uint64, error) {
	if c.MockHost {
		return c.mock.entropyAt(height)
	}

	var res entropyResponse
	if err := c.get(ctx, fmt.Sprintf("/v1/entropy/%d", height), &res); err != nil {
		return 0, err
	}
	return res.Entropy, nil
}

// Transfer moves amount between two host accounts with all-or-nothing semantics
func (c *Client) Transfer(ctx context.Context, from, to string, amount int64) error {
	if c.MockHost {
		return c.mock.transfer(from, to, amount)
	}

	body, err := json.Marshal(transferRequest{From: from, To: to, Amount: amount})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/transfers", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errRes errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errRes); decodeErr == nil && errRes.Error != "" {
			return fmt.Errorf("host rejected transfer: %s", errRes.Error)
		}
		return fmt.Errorf("host rejected transfer: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	if c.APIKey != "" {
		req.Header.Set("X-API-Key", c.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("host request %s failed: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
