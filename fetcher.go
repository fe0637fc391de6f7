package awardscan

import "context"

// Fetcher retrieves raw marked-up text from URLs.
// Retries and backoff are the implementation's concern; callers treat a
// returned error as final.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
