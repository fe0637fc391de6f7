package slog

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/cjubb39/awardscan"
)

// Ensure LoggingFetcher implements awardscan.Fetcher.
var _ awardscan.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every page fetch: the article fetched, how many lines
// the extraction engine will scan, and the error code of failed fetches.
type LoggingFetcher struct {
	next   awardscan.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next awardscan.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher. Successful fetches are logged at
// Info, failures at Warn.
func (f *LoggingFetcher) Fetch(ctx context.Context, rawURL string) (page string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"article", articleTitle(rawURL),
			"url", rawURL,
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", awardscan.ErrorCode(err), "err", err)
			f.logger.WarnContext(ctx, "fetch page", attrs...)
			return
		}
		attrs = append(attrs, "lines", strings.Count(page, "\n")+1, "bytes", len(page))
		f.logger.InfoContext(ctx, "fetch page", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// articleTitle returns the wiki article name of a page URL, with
// underscores shown as spaces, or the URL path for other pages.
func articleTitle(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	title, ok := strings.CutPrefix(u.Path, "/wiki/")
	if !ok {
		return u.Path
	}
	if t, err := url.PathUnescape(title); err == nil {
		title = t
	}
	return strings.ReplaceAll(title, "_", " ")
}
