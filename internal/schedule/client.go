// Package schedule talks to the external schedule lookup service and turns
// its raw trip records into ordered, filtered ScheduleEntry sequences.
package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/stopbook/backend/internal/domain"
)

// Source returns raw trip records for one origin, destination and date.
// Failures are reported as *domain.QueryError.
type Source interface {
	Lookup(ctx context.Context, req Request) ([]RawTrip, error)
}

// DefaultLookupBudget bounds a whole Lookup, retries and waits included. It
// stays below the API server's write timeout so a failing lookup is still
// reported to the caller.
const DefaultLookupBudget = 20 * time.Second

// Client is the HTTP implementation of Source.
type Client struct {
	url        string
	httpClient *http.Client
	timeout    time.Duration
	budget     time.Duration
	maxRetries uint64
	newBackOff func() backoff.BackOff
	log        *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each individual attempt.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithBudget bounds a whole Lookup including retries.
func WithBudget(d time.Duration) ClientOption {
	return func(c *Client) { c.budget = d }
}

// WithMaxRetries sets how many times a transient failure is retried.
func WithMaxRetries(n uint64) ClientOption {
	return func(c *Client) { c.maxRetries = n }
}

// WithBackOff overrides the retry schedule. Tests use a constant back-off.
func WithBackOff(f func() backoff.BackOff) ClientOption {
	return func(c *Client) { c.newBackOff = f }
}

// WithLogger sets the logger used for retry notices.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// NewClient constructs a Client posting lookups to url.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:        url,
		httpClient: http.DefaultClient,
		timeout:    10 * time.Second,
		budget:     DefaultLookupBudget,
		maxRetries: 2,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorPayload is the structured body of a non-2xx response.
type errorPayload struct {
	Detail string `json:"detail"`
}

// Lookup posts req and decodes the trip records. Network failures, 429 and
// 5xx responses are retried until the lookup budget runs out; other non-2xx
// responses fail immediately with the upstream detail.
func (c *Client) Lookup(ctx context.Context, req Request) ([]RawTrip, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("schedule.Client.Lookup: encode: %w", err)
	}

	if c.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.budget)
		defer cancel()
	}

	var trips []RawTrip
	op := func() error {
		var err error
		trips, err = c.attempt(ctx, body)
		return err
	}
	notify := func(err error, wait time.Duration) {
		c.log.WarnContext(ctx, "schedule lookup retry",
			"start", req.Start, "end", req.End, "date", req.Date,
			"error", err, "wait_ms", wait.Milliseconds())
	}

	b := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.maxRetries), ctx)
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		var qe *domain.QueryError
		if errors.As(err, &qe) {
			return nil, qe
		}
		// Context expiry while waiting between attempts.
		return nil, &domain.QueryError{Detail: transportDetail(err)}
	}
	return trips, nil
}

// transportDetail describes a request that never got an HTTP response.
func transportDetail(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "schedule lookup timed out"
	case errors.Is(err, context.Canceled):
		return "schedule lookup cancelled"
	default:
		return "schedule service unreachable"
	}
}

func (c *Client) attempt(ctx context.Context, body []byte) ([]RawTrip, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(&domain.QueryError{Detail: err.Error()})
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		qe := &domain.QueryError{Detail: transportDetail(err)}
		if errors.Is(err, context.Canceled) {
			return nil, backoff.Permanent(qe)
		}
		return nil, qe
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		qe := &domain.QueryError{Status: resp.StatusCode, Detail: readDetail(resp)}
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, qe
		}
		return nil, backoff.Permanent(qe)
	}

	var trips []RawTrip
	if err := json.NewDecoder(resp.Body).Decode(&trips); err != nil {
		return nil, backoff.Permanent(&domain.QueryError{Status: resp.StatusCode, Detail: "malformed schedule response"})
	}
	return trips, nil
}

// readDetail extracts the human-readable detail from an error response,
// falling back to the status text when the body carries none.
func readDetail(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil {
		var p errorPayload
		if json.Unmarshal(data, &p) == nil && p.Detail != "" {
			return p.Detail
		}
	}
	return http.StatusText(resp.StatusCode)
}
