package awardscan

import (
	"context"
	"time"
)

// Page is a fetched document kept by a PageCache.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageCache stores fetched page bodies between runs so repeated queries do
// not hit the source site. It never stores extracted records.
type PageCache interface {
	// FindPage returns the cached page for url.
	// Returns ENOTFOUND if the page is not cached.
	FindPage(ctx context.Context, url string) (*Page, error)

	// SavePage inserts or replaces the cached page for page.URL.
	SavePage(ctx context.Context, page *Page) error

	// DeletePagesBefore removes pages fetched before t and returns how many
	// were removed.
	DeletePagesBefore(ctx context.Context, t time.Time) (int, error)
}
