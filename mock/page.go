package mock

import (
	"context"
	"time"

	"github.com/cjubb39/awardscan"
)

var _ awardscan.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of awardscan.PageCache.
type PageCache struct {
	FindPageFn          func(ctx context.Context, url string) (*awardscan.Page, error)
	SavePageFn          func(ctx context.Context, page *awardscan.Page) error
	DeletePagesBeforeFn func(ctx context.Context, t time.Time) (int, error)
}

func (c *PageCache) FindPage(ctx context.Context, url string) (*awardscan.Page, error) {
	return c.FindPageFn(ctx, url)
}

func (c *PageCache) SavePage(ctx context.Context, page *awardscan.Page) error {
	return c.SavePageFn(ctx, page)
}

func (c *PageCache) DeletePagesBefore(ctx context.Context, t time.Time) (int, error) {
	return c.DeletePagesBeforeFn(ctx, t)
}
