package mock

import (
	"context"

	"github.com/cjubb39/awardscan"
)

var _ awardscan.AwardService = (*AwardService)(nil)

// AwardService is a mock implementation of awardscan.AwardService.
type AwardService struct {
	AttributeTablesFn func(ctx context.Context, category string, shiftHeader bool) ([]awardscan.Record, error)
	WinNominationsFn  func(ctx context.Context, category string) ([]awardscan.Record, error)
	CategoryYearFn    func(ctx context.Context, category string, year int, importance awardscan.Importance) ([]awardscan.Person, error)
	CategoryYearsFn   func(ctx context.Context, category string, years []int, importance awardscan.Importance) (map[int][]awardscan.Person, error)
	ListTableFn       func(ctx context.Context, term string) ([]awardscan.Record, error)
	WinCountFn        func(ctx context.Context, title string, year int) (int, error)
	AgeFn             func(ctx context.Context, personLink string) (int, error)
	StarringFn        func(ctx context.Context, movieLink string) ([]string, error)
}

func (s *AwardService) AttributeTables(ctx context.Context, category string, shiftHeader bool) ([]awardscan.Record, error) {
	return s.AttributeTablesFn(ctx, category, shiftHeader)
}

func (s *AwardService) WinNominations(ctx context.Context, category string) ([]awardscan.Record, error) {
	return s.WinNominationsFn(ctx, category)
}

func (s *AwardService) CategoryYear(ctx context.Context, category string, year int, importance awardscan.Importance) ([]awardscan.Person, error) {
	return s.CategoryYearFn(ctx, category, year, importance)
}

func (s *AwardService) CategoryYears(ctx context.Context, category string, years []int, importance awardscan.Importance) (map[int][]awardscan.Person, error) {
	return s.CategoryYearsFn(ctx, category, years, importance)
}

func (s *AwardService) ListTable(ctx context.Context, term string) ([]awardscan.Record, error) {
	return s.ListTableFn(ctx, term)
}

func (s *AwardService) WinCount(ctx context.Context, title string, year int) (int, error) {
	return s.WinCountFn(ctx, title, year)
}

func (s *AwardService) Age(ctx context.Context, personLink string) (int, error) {
	return s.AgeFn(ctx, personLink)
}

func (s *AwardService) Starring(ctx context.Context, movieLink string) ([]string, error) {
	return s.StarringFn(ctx, movieLink)
}
