package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/cjubb39/awardscan"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry calls fetch until it succeeds, fails permanently, or the
// delays are used up. Only transient failures are retried.
func fetchWithRetry(ctx context.Context, url string, delays []time.Duration, logger *slog.Logger, fetch func(ctx context.Context) (string, error)) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := fetch(ctx)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !isTransient(err) || attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Warn("retry", "url", url, "attempt", attempt+2, "error", err)
		}

		select {
		case <-ctx.Done():
			return "", awardscan.WrapErrorf(awardscan.EUNAVAILABLE, ctx.Err(), "fetch %s", url)
		case <-time.After(delays[attempt]):
		}
	}

	if t, ok := lastErr.(*transientError); ok {
		return "", t.err
	}
	return "", lastErr
}
