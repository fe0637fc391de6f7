// Package cache provides the cache-first awardscan.Fetcher, which sits in
// front of the network fetcher and serves pages from any awardscan.PageCache.
package cache

import (
	"context"
	"time"

	"github.com/cjubb39/awardscan"
)

// Ensure Fetcher implements awardscan.Fetcher at compile time.
var _ awardscan.Fetcher = (*Fetcher)(nil)

// Fetcher serves pages from a PageCache and fetches the rest.
type Fetcher struct {
	fetcher awardscan.Fetcher
	pages   awardscan.PageCache
	maxAge  time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewFetcher wraps fetcher with pages. Cached pages older than maxAge are
// fetched again; a zero maxAge keeps pages forever.
func NewFetcher(fetcher awardscan.Fetcher, pages awardscan.PageCache, maxAge time.Duration) *Fetcher {
	return &Fetcher{
		fetcher: fetcher,
		pages:   pages,
		maxAge:  maxAge,
		Now:     time.Now,
	}
}

// Fetch returns the cached page for url if it is fresh, and otherwise
// fetches and caches it. Failed fetches are not cached.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	page, err := f.pages.FindPage(ctx, url)
	switch {
	case err == nil:
		if f.fresh(page) {
			return page.Content, nil
		}
	case awardscan.ErrorCode(err) != awardscan.ENOTFOUND:
		return "", err
	}

	content, err := f.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := f.pages.SavePage(ctx, &awardscan.Page{URL: url, Content: content, FetchedAt: f.Now()}); err != nil {
		return "", err
	}
	return content, nil
}

func (f *Fetcher) fresh(page *awardscan.Page) bool {
	return f.maxAge <= 0 || f.Now().Sub(page.FetchedAt) < f.maxAge
}

// Close closes the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.fetcher.Close()
}
