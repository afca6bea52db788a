// Package fetch downloads remote markdown documents for generation and
// export.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

const defaultAttempts = 3

// Client fetches documents over HTTP with retries on transient
// failures.
type Client struct {
	http     *resty.Client
	attempts uint
}

// NewClient creates a fetch client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "text/markdown, text/plain, */*")

	return &Client{
		http:     httpClient,
		attempts: defaultAttempts,
	}
}

// Document downloads the document at url and returns its body. Server
// errors and rate limiting are retried with backoff; client errors are
// not.
func (c *Client) Document(ctx context.Context, url string) (string, error) {
	var body string

	err := retry.Do(
		func() error {
			resp, err := c.http.R().SetContext(ctx).Get(url)
			if err != nil {
				return fmt.Errorf("http.Get(%s) > %w", url, err)
			}
			if resp.IsError() {
				return fmt.Errorf("response error %d for %s", resp.StatusCode(), url)
			}
			body = resp.String()
			return nil
		},
		retry.Attempts(c.attempts),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryableError),
		retry.OnRetry(func(attempt uint, err error) {
			slog.Default().Info("Retrying document fetch",
				"attempt", attempt,
				"url", url,
				"lastError", err)
		}),
	)
	if err != nil {
		return "", fmt.Errorf("fetch document %s > %w", url, err)
	}
	return body, nil
}

// isRetryableError keeps retries to failures that can heal on their
// own: network errors, 5xx responses and rate limiting.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}
	return false
}
