package eventapi

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Nil is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTimeout bounds every single request attempt.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		if ua != "" {
			cl.userAgent = ua
		}
	}
}

// WithRetries enables up to n retries of queries on transient failures.
// Mutations are never retried. A nil strategy selects DefaultBackoff.
func WithRetries(n int, strategy BackoffStrategy) Option {
	return func(cl *Client) {
		if n < 0 {
			n = 0
		}
		if strategy == nil {
			strategy = DefaultBackoff()
		}
		cl.maxRetries = n
		cl.backoff = strategy
	}
}

// WithLogger sets the logger for retry attempts.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}
