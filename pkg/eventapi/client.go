package eventapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eventify-app/eventify/pkg/logger"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "eventify-client/1.0"
	maxResponseSize  = 4 << 20
)

// Client sends GraphQL documents to the Eventify API.
type Client struct {
	endpoint   string
	http       *http.Client
	timeout    time.Duration
	userAgent  string
	maxRetries int
	backoff    BackoffStrategy
	logger     *slog.Logger
}

// New creates a client for the GraphQL endpoint, e.g.
// "http://localhost:4000/graphql". Only http and https URLs are accepted.
func New(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Join(ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}

	c := &Client{
		endpoint:  endpoint,
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
		backoff:   DefaultBackoff(),
		logger:    slog.New(slog.DiscardHandler),
		http: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the configured GraphQL URL.
func (c *Client) Endpoint() string { return c.endpoint }

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ErrorEntry    `json:"errors"`
}

// Do posts query with variables and decodes the "data" member into out.
// out may be nil. A non-2xx status yields ErrUnexpectedStatus, a non-empty
// errors array yields *GraphQLError. The bearer token set with WithToken is
// sent when present.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("eventapi: marshal request: %w", err)
	}

	retries := 0
	if isQuery(query) {
		retries = c.maxRetries
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			delay := c.backoff.NextInterval(attempt)
			c.logger.DebugContext(ctx, "Retrying Eventify API request",
				logger.Component("eventapi"),
				logger.RetryCount(attempt),
				logger.Duration(delay),
				logger.Error(lastErr),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		data, status, err := c.attempt(ctx, payload)
		if err == nil {
			return decode(data, out)
		}
		lastErr = err
		if !isTemporary(status, err) {
			break
		}
	}
	return lastErr
}

func (c *Client) attempt(ctx context.Context, payload []byte) ([]byte, int, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("eventapi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if token, ok := TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, 0, fmt.Errorf("%w: %w", ErrTemporaryFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: %w", ErrTemporaryFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// GraphQL servers may answer 4xx with a regular errors payload.
		var gql response
		if json.Unmarshal(body, &gql) == nil && len(gql.Errors) > 0 {
			return nil, resp.StatusCode, &GraphQLError{Errors: gql.Errors}
		}
		snippet := strings.ReplaceAll(string(body), "\n", " ")
		if len(snippet) > 200 {
			snippet = snippet[:200] + "..."
		}
		return nil, resp.StatusCode, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, snippet)
	}

	return body, resp.StatusCode, nil
}

func decode(body []byte, out any) error {
	var gql response
	if err := json.Unmarshal(body, &gql); err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}
	if len(gql.Errors) > 0 {
		return &GraphQLError{Errors: gql.Errors}
	}
	if out == nil {
		return nil
	}
	if len(gql.Data) == 0 || string(gql.Data) == "null" {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(gql.Data, out); err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}
	return nil
}

func isQuery(doc string) bool {
	doc = strings.TrimSpace(doc)
	return strings.HasPrefix(doc, "query") || strings.HasPrefix(doc, "{")
}

// isTemporary keeps 408, 425, 429, 5xx and network failures retryable.
func isTemporary(status int, err error) bool {
	var gqlErr *GraphQLError
	if errors.As(err, &gqlErr) {
		return false
	}
	switch {
	case status == 0:
		return errors.Is(err, ErrTemporaryFailure) || errors.Is(err, ErrTimeout)
	case status == http.StatusRequestTimeout, status == http.StatusTooEarly, status == http.StatusTooManyRequests:
		return true
	case status >= 500:
		return true
	default:
		return false
	}
}
