package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"porter/config"
	"porter/models"
	"porter/utils"

	"go.uber.org/zap"
)

// Client issues single-page requests against the reservation provider. Read
// operations authenticate with the permanent API key; writes exchange the
// refresh token for a short-lived access token first (see auth.go).
type Client struct {
	BaseURL      string
	APIKey       string
	ClientID     string
	ClientSecret string
	RefreshToken string
	HTTPClient   *http.Client
	CallTimeout  time.Duration
	Rate         *RateLimitTracker
	Logger       *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient builds a Client from the application configuration.
func NewClient() *Client {
	return &Client{
		BaseURL:      config.AppConfig.UpstreamBaseURL,
		APIKey:       config.AppConfig.UpstreamAPIKey,
		ClientID:     config.AppConfig.UpstreamClientID,
		ClientSecret: config.AppConfig.UpstreamClientSecret,
		RefreshToken: config.AppConfig.UpstreamRefreshToken,
		HTTPClient:   &http.Client{},
		CallTimeout:  config.UpstreamTimeout(),
		Rate:         NewRateLimitTracker(),
		Logger:       utils.GetLogger(),
	}
}

// queryEnvelope is the provider's wrapped response shape. The records field
// may hold an array, a single object, or be absent entirely (bare-array
// responses); normalizeRecords sorts that out.
type queryEnvelope struct {
	Success    *bool           `json:"success,omitempty"`
	Error      string          `json:"error,omitempty"`
	Message    string          `json:"message,omitempty"`
	Bookings   json.RawMessage `json:"bookings,omitempty"`
	Page       int             `json:"page,omitempty"`
	PageCount  int             `json:"pageCount,omitempty"`
	TotalItems int             `json:"totalItems,omitempty"`
}

// Query issues one request against an upstream resource and returns the
// decoded records plus pagination metadata. Every call carries an explicit
// deadline; a breach surfaces as an unreachable upstream, not an open-ended
// stall of the whole view.
func (c *Client) Query(ctx context.Context, resource string, params map[string]string, method string, body any) ([]models.Booking, models.PageMeta, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout())
	defer cancel()

	req, err := c.buildRequest(ctx, resource, params, method, body)
	if err != nil {
		return nil, models.PageMeta{}, err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, models.PageMeta{}, NewUnreachableError(err.Error())
	}
	defer resp.Body.Close()

	if c.Rate != nil {
		c.Rate.Observe(resp.Header)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.PageMeta{}, NewUnreachableError(fmt.Sprintf("reading response: %v", err))
	}

	return c.decode(resp.StatusCode, payload)
}

// QueryBookings runs a single unpaginated GET against the bookings resource.
func (c *Client) QueryBookings(ctx context.Context, params map[string]string) ([]models.Booking, models.PageMeta, error) {
	return c.Query(ctx, ResourceBookings, params, http.MethodGet, nil)
}

func (c *Client) buildRequest(ctx context.Context, resource string, params map[string]string, method string, body any) (*http.Request, error) {
	endpoint := strings.TrimRight(c.BaseURL, "/") + "/" + resource

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, NewRequestFailedError(fmt.Sprintf("encoding request body: %v", err))
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, NewRequestFailedError(fmt.Sprintf("building request: %v", err))
	}

	if method == http.MethodGet {
		q := url.Values{}
		for key, value := range params {
			if value == "" {
				continue // never send empty parameters
			}
			q.Set(key, value)
		}
		req.URL.RawQuery = q.Encode()
		// Reads use the permanent key; no refresh round-trip needed.
		req.Header.Set("Api-Key", c.APIKey)
	} else {
		token, err := c.writeToken(ctx)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) decode(status int, payload []byte) ([]models.Booking, models.PageMeta, error) {
	trimmed := bytes.TrimSpace(payload)

	// Bare-array responses carry no envelope and no pagination metadata.
	if len(trimmed) > 0 && trimmed[0] == '[' {
		records, err := normalizeRecords(trimmed)
		if err != nil {
			return nil, models.PageMeta{}, err
		}
		return records, models.PageMeta{}, nil
	}

	var env queryEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, models.PageMeta{}, NewRequestFailedError(fmt.Sprintf("malformed response: %v", err))
	}

	if msg := env.failure(status); msg != "" {
		return nil, models.PageMeta{}, NewRequestFailedError(msg)
	}

	meta := models.PageMeta{Page: env.Page, PageCount: env.PageCount, Total: env.TotalItems}

	if len(env.Bookings) > 0 {
		records, err := normalizeRecords(env.Bookings)
		if err != nil {
			return nil, models.PageMeta{}, err
		}
		return records, meta, nil
	}

	// Some endpoints return a single booking object at the top level.
	var single models.Booking
	if err := json.Unmarshal(trimmed, &single); err == nil && single.ID != 0 {
		return []models.Booking{single}, meta, nil
	}
	return nil, meta, nil
}

func (e queryEnvelope) failure(status int) string {
	if e.Success != nil && !*e.Success {
		if e.Error != "" {
			return e.Error
		}
		if e.Message != "" {
			return e.Message
		}
		return "upstream reported failure"
	}
	if e.Error != "" {
		return e.Error
	}
	if status >= http.StatusBadRequest {
		if e.Message != "" {
			return e.Message
		}
		return fmt.Sprintf("upstream returned status %d", status)
	}
	return ""
}

// normalizeRecords treats both an array and a single wrapped object as a
// record list.
func normalizeRecords(raw json.RawMessage) ([]models.Booking, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var records []models.Booking
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, NewRequestFailedError(fmt.Sprintf("malformed records: %v", err))
		}
		return records, nil
	}
	var single models.Booking
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, NewRequestFailedError(fmt.Sprintf("malformed record: %v", err))
	}
	return []models.Booking{single}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) callTimeout() time.Duration {
	if c.CallTimeout > 0 {
		return c.CallTimeout
	}
	return 15 * time.Second
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}
