// Package googlemaps implements ports.PlaceProvider on top of the Google
// Maps Platform web services (Places Text Search, Place Details, Geocoding,
// Directions).
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/localhub/localhub/internal/core/domain"
	"github.com/localhub/localhub/internal/pkg/metrics"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// statusZeroResults is the provider's "nothing matched" outcome; it is not
// an error.
const statusZeroResults = "ZERO_RESULTS"

// Client talks to the Google Maps Platform. Construct it with NewClient so
// a missing credential fails at startup, not on the first request.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Google Maps client.
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, &domain.ConfigError{
			Key:     "googlemaps.api_key",
			Message: "API key is not configured",
		}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// statusResponse is the envelope every Maps web service shares.
type statusResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// doRequest performs a GET against endpoint, decodes the body into out, and
// returns the provider status. Transport and decode failures come back as
// UpstreamError; status interpretation is the caller's.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, out any) (string, error) {
	start := time.Now()
	status, err := c.do(ctx, endpoint, params, out)
	metrics.ObserveUpstream(endpoint, start, err)
	return status, err
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values, out any) (string, error) {
	params.Set("key", c.apiKey)
	fullURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", &domain.UpstreamError{Message: "create request: " + err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.UpstreamError{Status: "REQUEST_FAILED", Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &domain.UpstreamError{
			Status:  "HTTP_ERROR",
			Message: fmt.Sprintf("status %d: %s", resp.StatusCode, body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.UpstreamError{Message: "read response: " + err.Error(), Err: err}
	}

	var env statusResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return "", &domain.UpstreamError{Message: "decode response: " + err.Error(), Err: err}
	}

	if env.Status != "OK" && env.Status != statusZeroResults {
		msg := env.ErrorMessage
		if msg == "" {
			msg = "API returned status " + env.Status
		}
		return env.Status, &domain.UpstreamError{Status: env.Status, Message: msg}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return env.Status, &domain.UpstreamError{Message: "decode response: " + err.Error(), Err: err}
	}
	return env.Status, nil
}
