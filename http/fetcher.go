// Package http provides an HTTP-based implementation of awardscan.Fetcher
// with per-host rate limiting and retry of transient failures.
package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cjubb39/awardscan"
)

// DefaultFetchTimeout is the default timeout for a single HTTP request.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client to the wiki.
const DefaultUserAgent = "awardscan/1.0 (+https://github.com/cjubb39/awardscan)"

// Ensure Fetcher implements awardscan.Fetcher at compile time.
var _ awardscan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup using HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *HostLimiter
	delays    []time.Duration
	logger    *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each HTTP request.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit limits requests to rps per host. Zero or negative rps
// disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = NewHostLimiter(rps)
	}
}

// WithRetryDelays sets the backoff delays between attempts. An empty slice
// disables retries. Defaults to DefaultRetryDelays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// WithLogger sets the logger used to report retries.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		delays:    DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the markup at the given URL. Transient failures are
// retried. Failures are returned as EUNAVAILABLE, or ENOTFOUND when the
// page does not exist.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", awardscan.Errorf(awardscan.EINVALID, "invalid URL %q", rawURL)
	}

	return fetchWithRetry(ctx, rawURL, f.delays, f.logger, func(ctx context.Context) (string, error) {
		if f.limiter != nil {
			if err := f.limiter.Wait(ctx, u.Host); err != nil {
				return "", awardscan.WrapErrorf(awardscan.EUNAVAILABLE, err, "rate limit wait for %s", rawURL)
			}
		}
		return f.get(ctx, rawURL)
	})
}

func (f *Fetcher) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", awardscan.WrapErrorf(awardscan.EINVALID, err, "build request for %s", rawURL)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &transientError{awardscan.WrapErrorf(awardscan.EUNAVAILABLE, err, "fetch %s", rawURL)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return "", awardscan.Errorf(awardscan.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, rawURL)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", &transientError{awardscan.Errorf(awardscan.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)}
	default:
		return "", awardscan.Errorf(awardscan.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &transientError{awardscan.WrapErrorf(awardscan.EUNAVAILABLE, err, "read body of %s", rawURL)}
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// transientError marks a failure worth retrying.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func isTransient(err error) bool {
	var t *transientError
	return errors.As(err, &t)
}
