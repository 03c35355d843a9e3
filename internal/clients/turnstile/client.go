package turnstile

import (
	"boatshow-server/internal/observability"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

var (
	ErrMissingToken = errors.New("captcha token is required")
	ErrRejected     = errors.New("captcha verification failed")
)

// siteverifyResponse is the subset of the siteverify reply the portal reads
type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes,omitempty"`
	Hostname   string   `json:"hostname,omitempty"`
}

// Client checks Cloudflare Turnstile tokens sent with the public registration form
type Client struct {
	secretKey  string
	verifyURL  string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient returns a client for secretKey. An empty key disables verification.
func NewClient(secretKey string, logger *observability.Logger) *Client {
	return NewClientWithURL(secretKey, defaultVerifyURL, logger)
}

// NewClientWithURL points the client at another siteverify endpoint
func NewClientWithURL(secretKey, verifyURL string, logger *observability.Logger) *Client {
	return &Client{
		secretKey:  secretKey,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// IsEnabled reports whether a secret key is configured
func (c *Client) IsEnabled() bool {
	return c != nil && c.secretKey != ""
}

// Verify returns nil when token was issued to a real visitor at remoteIP.
// Transport failures are returned wrapped so they map to 5xx, not to a rejection.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) error {
	if !c.IsEnabled() {
		return nil
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrMissingToken
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "captcha", Value: "turnstile"})

	form := url.Values{"secret": {c.secretKey}, "response": {token}}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("turnstile: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call turnstile siteverify", err)
		return fmt.Errorf("turnstile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("turnstile: siteverify returned %d", resp.StatusCode)
		c.logger.Error(ctx, "turnstile siteverify failed", err)
		return err
	}

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("turnstile: failed to decode response: %w", err)
	}

	if !body.Success {
		ctx = observability.WithFields(ctx, observability.Field{Key: "error_codes", Value: strings.Join(body.ErrorCodes, ",")})
		c.logger.Warn(ctx, "turnstile rejected token")
		return ErrRejected
	}
	return nil
}
