package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cjubb39/awardscan"
)

// Ensure LoggingAwardService implements awardscan.AwardService.
var _ awardscan.AwardService = (*LoggingAwardService)(nil)

// LoggingAwardService wraps an AwardService and logs every lookup with its
// result count and duration.
type LoggingAwardService struct {
	next   awardscan.AwardService
	logger *slog.Logger
}

// NewLoggingAwardService creates a new LoggingAwardService.
func NewLoggingAwardService(next awardscan.AwardService, logger *slog.Logger) *LoggingAwardService {
	return &LoggingAwardService{next: next, logger: logger}
}

func (s *LoggingAwardService) log(op string, begin time.Time, count int, err error, attrs ...any) {
	args := append([]any{"op", op}, attrs...)
	args = append(args,
		"count", count,
		"duration", time.Since(begin),
		"err", err,
	)
	s.logger.Info("award lookup", args...)
}

func (s *LoggingAwardService) AttributeTables(ctx context.Context, category string, shiftHeader bool) (records []awardscan.Record, err error) {
	defer func(begin time.Time) {
		s.log("attribute-tables", begin, len(records), err, "category", category, "shift", shiftHeader)
	}(time.Now())
	return s.next.AttributeTables(ctx, category, shiftHeader)
}

func (s *LoggingAwardService) WinNominations(ctx context.Context, category string) (records []awardscan.Record, err error) {
	defer func(begin time.Time) {
		s.log("win-nominations", begin, len(records), err, "category", category)
	}(time.Now())
	return s.next.WinNominations(ctx, category)
}

func (s *LoggingAwardService) CategoryYear(ctx context.Context, category string, year int, importance awardscan.Importance) (people []awardscan.Person, err error) {
	defer func(begin time.Time) {
		s.log("category-year", begin, len(people), err, "category", category, "year", year)
	}(time.Now())
	return s.next.CategoryYear(ctx, category, year, importance)
}

func (s *LoggingAwardService) CategoryYears(ctx context.Context, category string, years []int, importance awardscan.Importance) (byYear map[int][]awardscan.Person, err error) {
	defer func(begin time.Time) {
		s.log("category-years", begin, len(byYear), err, "category", category, "years", len(years))
	}(time.Now())
	return s.next.CategoryYears(ctx, category, years, importance)
}

func (s *LoggingAwardService) ListTable(ctx context.Context, term string) (records []awardscan.Record, err error) {
	defer func(begin time.Time) {
		s.log("list-table", begin, len(records), err, "term", term)
	}(time.Now())
	return s.next.ListTable(ctx, term)
}

func (s *LoggingAwardService) WinCount(ctx context.Context, title string, year int) (wins int, err error) {
	defer func(begin time.Time) {
		s.log("win-count", begin, wins, err, "title", title, "year", year)
	}(time.Now())
	return s.next.WinCount(ctx, title, year)
}

func (s *LoggingAwardService) Age(ctx context.Context, personLink string) (age int, err error) {
	defer func(begin time.Time) {
		s.log("age", begin, age, err, "link", personLink)
	}(time.Now())
	return s.next.Age(ctx, personLink)
}

func (s *LoggingAwardService) Starring(ctx context.Context, movieLink string) (cast []string, err error) {
	defer func(begin time.Time) {
		s.log("starring", begin, len(cast), err, "link", movieLink)
	}(time.Now())
	return s.next.Starring(ctx, movieLink)
}
