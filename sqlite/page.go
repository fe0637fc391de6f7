package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/cjubb39/awardscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ awardscan.PageCache = (*PageCache)(nil)

// PageCache implements awardscan.PageCache using SQLite.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// FindPage retrieves the cached page for url.
func (s *PageCache) FindPage(ctx context.Context, url string) (*awardscan.Page, error) {
	var page awardscan.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, content, content_hash, fetched_at
		FROM pages
		WHERE url = ?
	`, url).Scan(&page.ID, &page.URL, &page.Content, &page.ContentHash, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, awardscan.Errorf(awardscan.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return nil, err
	}

	page.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// SavePage inserts the page or replaces the cached copy with the same URL.
// The ID and content hash are set on page; FetchedAt defaults to now.
func (s *PageCache) SavePage(ctx context.Context, page *awardscan.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now()
	}
	page.FetchedAt = page.FetchedAt.UTC().Truncate(time.Second)
	page.ContentHash = hashContent(page.Content)

	return s.db.QueryRowContext(ctx, `
		INSERT INTO pages (id, url, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
		RETURNING id
	`, uuid.New().String(), page.URL, page.Content, page.ContentHash, formatTime(page.FetchedAt)).Scan(&page.ID)
}

// DeletePagesBefore removes pages fetched before t.
func (s *PageCache) DeletePagesBefore(ctx context.Context, t time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE fetched_at < ?`, formatTime(t))
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
