package discord

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Owennied/HimmyGames/internal/domain"
	"github.com/Owennied/HimmyGames/internal/farm"
)

const (
	apiPrefix       = "/api/v1"
	clientTimeout   = 10 * time.Second
	maxRetries      = 3
	retryBaseDelay  = 500 * time.Millisecond
	maxErrorBodyLen = 1024
)

// APIError is a non-2xx answer from the farm API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return "API error: " + e.Message
	}
	return fmt.Sprintf("API returned status: %d", e.Status)
}

// APIClient handles communication with the farm API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: clientTimeout,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx answers
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryBaseDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call sends the request and decodes a 200 answer into out
func (c *APIClient) call(method, path string, body, out interface{}) error {
	resp, err := c.doRequest(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var errResp struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	if err := json.Unmarshal(data, &errResp); err == nil {
		apiErr.Message = errResp.Error
	}
	return apiErr
}

// IsAPIError reports whether err came back from the API with the given status
func IsAPIError(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

func (c *APIClient) action(path string, body interface{}) (*farm.ActionResult, error) {
	var result farm.ActionResult
	if err := c.call(http.MethodPost, apiPrefix+path, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetFarm retrieves the rendered farm
func (c *APIClient) GetFarm() (*farm.View, error) {
	var view farm.View
	if err := c.call(http.MethodGet, apiPrefix+"/farm", nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// GetMarket retrieves the market listing
func (c *APIClient) GetMarket() ([]farm.MarketEntry, error) {
	var entries []farm.MarketEntry
	if err := c.call(http.MethodGet, apiPrefix+"/market", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetCrops retrieves the crop catalog
func (c *APIClient) GetCrops() ([]domain.Crop, error) {
	var crops []domain.Crop
	if err := c.call(http.MethodGet, apiPrefix+"/crops", nil, &crops); err != nil {
		return nil, err
	}
	return crops, nil
}

// Plant plants crop on a 0-based plot
func (c *APIClient) Plant(plot int, crop string) (*farm.ActionResult, error) {
	return c.action("/plots/plant", map[string]interface{}{
		"plot": plot,
		"crop": crop,
	})
}

// Harvest harvests a 0-based plot
func (c *APIClient) Harvest(plot int) (*farm.ActionResult, error) {
	return c.action("/plots/harvest", map[string]interface{}{
		"plot": plot,
	})
}

// BuyPlot buys the next plot
func (c *APIClient) BuyPlot() (*farm.ActionResult, error) {
	return c.action("/plots/buy", nil)
}

// Sell sells one unit, or everything held of crop when all is set.
// A non-empty variant limits an "all" sale to that tier.
func (c *APIClient) Sell(crop, variant string, all bool) (*farm.ActionResult, error) {
	return c.action("/market/sell", map[string]interface{}{
		"crop":    crop,
		"variant": variant,
		"all":     all,
	})
}

// HireFarmer hires a farmer
func (c *APIClient) HireFarmer() (*farm.ActionResult, error) {
	return c.action("/farmers/hire", nil)
}

// FireFarmer fires a farmer by display number
func (c *APIClient) FireFarmer(id int) (*farm.ActionResult, error) {
	return c.action("/farmers/fire", map[string]interface{}{
		"farmer_id": id,
	})
}

// AssignFarmer puts a farmer on a 0-based plot
func (c *APIClient) AssignFarmer(id, plot int) (*farm.ActionResult, error) {
	return c.action("/farmers/assign", map[string]interface{}{
		"farmer_id": id,
		"plot":      plot,
	})
}

// UnassignFarmer takes a farmer off its plot
func (c *APIClient) UnassignFarmer(id int) (*farm.ActionResult, error) {
	return c.action("/farmers/unassign", map[string]interface{}{
		"farmer_id": id,
	})
}

// SetAutoReplant sets the crop a farmer replants. An empty crop clears it.
func (c *APIClient) SetAutoReplant(id int, crop string) (*farm.ActionResult, error) {
	return c.action("/farmers/replant", map[string]interface{}{
		"farmer_id": id,
		"crop":      crop,
	})
}

// Rename renames the farm
func (c *APIClient) Rename(name string) (*farm.ActionResult, error) {
	return c.action("/farm/rename", map[string]interface{}{
		"name": name,
	})
}

// Ping reports whether the API answers its liveness probe
func (c *APIClient) Ping() bool {
	resp, err := c.Client.Get(c.BaseURL + "/healthz")
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
