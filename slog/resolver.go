package slog

import (
	"log/slog"
	"time"

	"github.com/cjubb39/awardscan"
)

// Ensure LoggingResolver implements awardscan.LinkResolver.
var _ awardscan.LinkResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a LinkResolver with debug logging.
type LoggingResolver struct {
	next   awardscan.LinkResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next awardscan.LinkResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// ResolveLinks delegates to the wrapped resolver and logs the match count.
func (r *LoggingResolver) ResolveLinks(page string, term string) (links []string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("resolve links",
			"term", term,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveLinks(page, term)
}

// ResolveAnchors delegates to the wrapped resolver and logs the match count.
func (r *LoggingResolver) ResolveAnchors(page string, term string) (anchors []awardscan.Link, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("resolve anchors",
			"term", term,
			"count", len(anchors),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveAnchors(page, term)
}
