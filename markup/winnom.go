package markup

import (
	"strings"

	"github.com/cjubb39/awardscan"
)

// winNomState names the states of the year-winner-nominees scanner.
type winNomState int

const (
	winNomHeaderScan winNomState = iota
	winNomRowScan
	winNomYearCell
	winNomWinnerCell
	winNomNominees
	winNomDone
)

// winNomScan is the state of one year-winner-nominees extraction.
type winNomScan struct {
	e    *Engine
	c    *Cursor
	cand candidate
	asm  assembler
}

// WinNominationTable extracts a decade table whose rows hold a year cell,
// the winner cell and the nominees, either separated by line breaks in one
// cell or as list items. Each row is a row-group stamped with its award
// year and link.
func (e *Engine) WinNominationTable(fragment string) ([]awardscan.Record, error) {
	s := &winNomScan{e: e, c: NewCursor(fragment)}
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.asm.result("win/nomination")
}

// WinNominationTables extracts every wikitable on page as a decade table.
func (e *Engine) WinNominationTables(page string) ([]awardscan.Record, error) {
	return extractAll(page, "win/nomination", e.WinNominationTable)
}

func (s *winNomScan) run() error {
	state := winNomHeaderScan
	var err error
	for state != winNomDone {
		switch state {
		case winNomHeaderScan:
			state, err = s.scanHeader()
		case winNomRowScan:
			state = s.scanRows()
		case winNomYearCell:
			state, err = s.yearCell()
		case winNomWinnerCell:
			state, err = s.winnerCell()
		case winNomNominees:
			state, err = s.nominees()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// scanHeader consumes the header row. The row ends at its row end or, when
// that closes the last header cell's line, at the next row.
func (s *winNomScan) scanHeader() (winNomState, error) {
	var headers int
	for {
		line, ok := s.c.Peek()
		if !ok {
			return winNomDone, awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input waiting for header row end")
		}

		switch Classify(line) {
		case ClassHeaderCell:
			headers++
		case ClassRowStart:
			if headers > 0 {
				return winNomRowScan, nil
			}
		case ClassDataCell:
			if headers > 0 {
				s.asm.startGroup()
				return winNomYearCell, nil
			}
		case ClassRowEnd:
			s.c.Next()
			return winNomRowScan, nil
		case ClassTableEnd:
			return winNomDone, awardscan.Errorf(awardscan.EMALFORMED, "table has no header row")
		}
		s.c.Next()
	}
}

func (s *winNomScan) scanRows() winNomState {
	for {
		line, ok := s.c.Next()
		if !ok {
			return winNomDone
		}
		switch Classify(line) {
		case ClassRowStart:
			s.asm.startGroup()
			return winNomYearCell
		case ClassTableEnd:
			return winNomDone
		}
	}
}

// nextCell consumes blank lines and returns the next cell's markup.
// The bool result is false if the row ended first.
func (s *winNomScan) nextCell() (string, bool, error) {
	for {
		line, ok := s.c.Peek()
		if !ok {
			return "", false, awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input inside row")
		}
		switch Classify(line) {
		case ClassHeaderCell, ClassDataCell:
			s.c.Next()
			content, err := s.c.Cell(line)
			return content, err == nil, err
		case ClassRowEnd:
			s.c.Next()
			return "", false, nil
		case ClassRowStart, ClassTableEnd:
			return "", false, nil
		}
		s.c.Next()
	}
}

func (s *winNomScan) yearCell() (winNomState, error) {
	content, ok, err := s.nextCell()
	if err != nil || !ok {
		return winNomRowScan, err
	}
	if link, ok := yearCell(content); ok {
		s.asm.stamp(awardscan.AttrAwardYear, link.Text)
		s.asm.stamp(awardscan.AttrAwardLink, link.Href)
	}
	return winNomWinnerCell, nil
}

// winnerCell reads the sole winner. Person and film are separated by a
// dash, or else by a line break.
func (s *winNomScan) winnerCell() (winNomState, error) {
	content, ok, err := s.nextCell()
	if err != nil || !ok {
		return winNomRowScan, err
	}

	parts := splitDash(content)
	if len(parts) < 2 {
		parts = nonBlank(splitBreaks(content))
	}
	if len(parts) > 0 {
		s.e.fillSegment(&s.cand, parts[0], awardscan.AttrPerson, awardscan.AttrPersonLink)
	}
	if len(parts) > 1 {
		s.e.fillSegment(&s.cand, parts[1], awardscan.AttrMovie, awardscan.AttrMovieLink)
	}
	s.asm.emit(&s.cand, awardscan.WinnerYes)
	return winNomNominees, nil
}

// nominees reads the remaining nominees up to the end of the row. A
// nominee cell holds either list items or break-separated nominees; list
// items following the cell outside it are nominees too.
func (s *winNomScan) nominees() (winNomState, error) {
	s.c.SkipBlank()
	line, ok := s.c.Peek()
	if !ok {
		return winNomDone, awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input inside row")
	}

	var fragments []string
	switch cl := Classify(line); {
	case cl == ClassRowStart || cl == ClassTableEnd:
		return winNomRowScan, nil
	case isCell(cl):
		s.c.Next()
		content, err := s.c.Cell(line)
		if err != nil {
			return winNomDone, err
		}
		fragments = ballotFragments(content)
	}

scan:
	for {
		line, ok := s.c.Peek()
		if !ok {
			return winNomDone, awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input inside row")
		}
		switch Classify(line) {
		case ClassRowStart, ClassTableEnd:
			break scan
		case ClassRowEnd:
			s.c.Next()
			break scan
		case ClassListItem:
			fragments = append(fragments, listItemContent(line))
		}
		s.c.Next()
	}

	for _, f := range nonBlank(fragments) {
		s.e.fillBallot(&s.cand, f)
		s.asm.emit(&s.cand, awardscan.WinnerNo)
	}
	return winNomRowScan, nil
}

// ballotFragments splits a nominee cell into one fragment per nominee.
func ballotFragments(content string) []string {
	if hasListItems(content) {
		return listItems(content)
	}
	return splitBreaks(content)
}

func nonBlank(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
