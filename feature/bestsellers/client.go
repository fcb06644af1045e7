package bestsellers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// ErrMissingAPIKey is returned when fetching without an API key.
var ErrMissingAPIKey = errors.New("NYT api key is not configured")

// HTTPError is a non-200 response from the source API.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("NYT overview request failed: %s", e.Status)
}

// Retryable reports whether the request may succeed when repeated.
func (e *HTTPError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Client fetches overview snapshots from the NYT Books API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	limiter    *rate.Limiter
	retries    int
	backoff    time.Duration
}

// NewClient creates a client from the source configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 5
	}
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
		retries:    max(cfg.Retries, 0),
		backoff:    time.Second,
	}
}

// FetchOverview returns the raw overview document for publishedDate.
func (c *Client) FetchOverview(ctx context.Context, publishedDate string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid NYT endpoint: %w", err)
	}
	q := u.Query()
	q.Set("api-key", c.apiKey)
	if publishedDate != "" {
		q.Set("published_date", publishedDate)
	}
	u.RawQuery = q.Encode()

	var lastErr error
	for i := 0; i <= c.retries; i++ {
		if i > 0 {
			select {
			case <-time.After(c.backoff * time.Duration(1<<uint(i-1))):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := c.get(ctx, u.String())
		if err == nil {
			return body, nil
		}
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || !httpErr.Retryable() {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("after %d retries: %w", c.retries, lastErr)
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the api key; keep it out of the error.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, fmt.Errorf("NYT overview request failed: %w", urlErr.Err)
		}
		return nil, fmt.Errorf("NYT overview request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return io.ReadAll(resp.Body)
}
