package mock

import "github.com/cjubb39/awardscan"

var (
	_ awardscan.RecordExtractor = (*RecordExtractor)(nil)
	_ awardscan.CellSplitter    = (*CellSplitter)(nil)
)

// RecordExtractor is a mock implementation of awardscan.RecordExtractor.
type RecordExtractor struct {
	AttributeTableFn      func(fragment string, shiftHeader bool) ([]awardscan.Record, error)
	AttributeTablesFn     func(page string, shiftHeader bool) ([]awardscan.Record, error)
	WinNominationTableFn  func(fragment string) ([]awardscan.Record, error)
	WinNominationTablesFn func(page string) ([]awardscan.Record, error)
	CategoryYearFn        func(page string, category string, importance awardscan.Importance) ([]awardscan.Person, error)
	ListTableFn           func(page string) ([]awardscan.Record, error)
	CountWinsFn           func(page string, title string) (int, error)
	AgeFn                 func(page string) (int, error)
	StarringFn            func(page string) ([]string, error)
}

func (e *RecordExtractor) AttributeTable(fragment string, shiftHeader bool) ([]awardscan.Record, error) {
	return e.AttributeTableFn(fragment, shiftHeader)
}

func (e *RecordExtractor) AttributeTables(page string, shiftHeader bool) ([]awardscan.Record, error) {
	return e.AttributeTablesFn(page, shiftHeader)
}

func (e *RecordExtractor) WinNominationTable(fragment string) ([]awardscan.Record, error) {
	return e.WinNominationTableFn(fragment)
}

func (e *RecordExtractor) WinNominationTables(page string) ([]awardscan.Record, error) {
	return e.WinNominationTablesFn(page)
}

func (e *RecordExtractor) CategoryYear(page string, category string, importance awardscan.Importance) ([]awardscan.Person, error) {
	return e.CategoryYearFn(page, category, importance)
}

func (e *RecordExtractor) ListTable(page string) ([]awardscan.Record, error) {
	return e.ListTableFn(page)
}

func (e *RecordExtractor) CountWins(page string, title string) (int, error) {
	return e.CountWinsFn(page, title)
}

func (e *RecordExtractor) Age(page string) (int, error) {
	return e.AgeFn(page)
}

func (e *RecordExtractor) Starring(page string) ([]string, error) {
	return e.StarringFn(page)
}

// CellSplitter is a mock implementation of awardscan.CellSplitter.
type CellSplitter struct {
	SplitFn func(raw string) awardscan.CellValue
	LinkFn  func(fragment string, pos awardscan.LinkPosition) (awardscan.Link, bool)
	TextFn  func(fragment string) string
}

func (s *CellSplitter) Split(raw string) awardscan.CellValue {
	return s.SplitFn(raw)
}

func (s *CellSplitter) Link(fragment string, pos awardscan.LinkPosition) (awardscan.Link, bool) {
	return s.LinkFn(fragment, pos)
}

func (s *CellSplitter) Text(fragment string) string {
	return s.TextFn(fragment)
}
