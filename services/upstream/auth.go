package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// refreshEarlyMargin shortens the stated token lifetime so we never run
	// a request into the exact expiry instant.
	refreshEarlyMargin = time.Minute
	// minTokenValidity is how much remaining lifetime a cached token needs
	// to be reused instead of refreshed.
	minTokenValidity = 5 * time.Minute
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Error       string `json:"error,omitempty"`
}

// writeToken returns a valid short-lived access token for write operations,
// exchanging the refresh token only when the cached one is close to expiry.
func (c *Client) writeToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Until(c.tokenExpiry) > minTokenValidity {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", c.RefreshToken)
	form.Set("client_id", c.ClientID)
	form.Set("client_secret", c.ClientSecret)

	endpoint := strings.TrimRight(c.BaseURL, "/") + "/oauth/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", NewRequestFailedError(fmt.Sprintf("building token request: %v", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", NewUnreachableError(fmt.Sprintf("token exchange: %v", err))
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewUnreachableError(fmt.Sprintf("reading token response: %v", err))
	}

	var tr tokenResponse
	if err := json.Unmarshal(payload, &tr); err != nil {
		return "", NewRequestFailedError(fmt.Sprintf("malformed token response: %v", err))
	}
	if resp.StatusCode >= http.StatusBadRequest || tr.AccessToken == "" {
		msg := tr.Error
		if msg == "" {
			msg = fmt.Sprintf("token exchange returned status %d", resp.StatusCode)
		}
		return "", NewRequestFailedError(msg)
	}

	c.accessToken = tr.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - refreshEarlyMargin)
	c.logger().Debug("Refreshed upstream access token",
		zap.Time("expiry", c.tokenExpiry))
	return c.accessToken, nil
}
