package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// DefaultTimeout is used when NewClient is given a non-positive timeout.
const DefaultTimeout = 60 * time.Second

// Client wraps HTTP GET requests used to load inventory seeds.
//
// Example usage:
//
//	client := NewClient(0)
//	data, err := client.Get(ctx, "https://example.com/inventory.json")
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client with the given timeout.
//
// The client is configured with:
//   - the given timeout, or DefaultTimeout when timeout <= 0
//   - "gilded-rose" User-Agent header
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "gilded-rose",
	}
}

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK (as *StatusError)
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// RetryPolicy controls GetWithRetry.
//
// The wait before retry n (0-indexed) is Cooldown * Exponent^n seconds.
type RetryPolicy struct {
	MaxRetries int
	Cooldown   float64
	Exponent   float64
}

// GetWithRetry performs Get, retrying failed attempts according to policy.
//
// Client errors (4xx) are not retried. The last error is returned when every
// attempt fails, or the context error if ctx is cancelled while waiting.
func (c *Client) GetWithRetry(ctx context.Context, url string, policy RetryPolicy) ([]byte, error) {
	attempts := max(policy.MaxRetries, 1)

	var lastErr error
	for tries := 0; tries < attempts; tries++ {
		data, err := c.Get(ctx, url)
		if err == nil {
			return data, nil
		}
		lastErr = err

		var se *StatusError
		if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 {
			return nil, err
		}
		if tries == attempts-1 {
			break
		}

		cooldown := policy.Cooldown * math.Pow(policy.Exponent, float64(tries))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(cooldown * float64(time.Second))):
		}
	}

	return nil, lastErr
}
