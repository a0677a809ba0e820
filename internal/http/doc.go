// Package http provides the HTTP client used to fetch remote inventory seeds.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Retries with exponential backoff
//
// # Basic Usage
//
//	client := http.NewClient(30 * time.Second)
//
//	// Fetch a seed file
//	data, err := client.Get(ctx, "https://example.com/inventory.json")
//
//	// Same, retrying transient failures
//	data, err = client.GetWithRetry(ctx, url, http.RetryPolicy{MaxRetries: 3, Cooldown: 0.2, Exponent: 4})
package http
