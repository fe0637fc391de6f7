package markup

import "github.com/cjubb39/awardscan"

// tableState names the states of the attribute-table scanner.
type tableState int

const (
	stateHeaderScan tableState = iota
	stateRowScan
	stateCellScan
	stateDone
)

// tableOptions selects the attribute-table variant.
type tableOptions struct {
	// shift maps data cell i to header i+1 and lets a leading year cell
	// open a new row-group.
	shift bool
	// stamps enables year stamps and winner flags.
	stamps bool
}

// tableScan is the state of one attribute-table extraction.
type tableScan struct {
	e       *Engine
	c       *Cursor
	opts    tableOptions
	headers []string
	cand    candidate
	asm     assembler

	col      int // mapped data cells in the current row
	rowCells int // cells of any kind in the current row
}

// AttributeTable extracts one table fragment laid out one attribute per
// column. Year stamps come from the lines before the header row and, with
// shiftHeader, from the leading year cell of each row-group. The first
// record of each row-group is the winner.
func (e *Engine) AttributeTable(fragment string, shiftHeader bool) ([]awardscan.Record, error) {
	return e.attributeTable(fragment, tableOptions{shift: shiftHeader, stamps: true})
}

// AttributeTables extracts every wikitable on page as an attribute table.
func (e *Engine) AttributeTables(page string, shiftHeader bool) ([]awardscan.Record, error) {
	return extractAll(page, "attribute table", func(table string) ([]awardscan.Record, error) {
		return e.AttributeTable(table, shiftHeader)
	})
}

// ListTable extracts the first sortable wikitable on page without year
// stamps or winner flags.
func (e *Engine) ListTable(page string) ([]awardscan.Record, error) {
	tables, err := wikitables(page, IsSortableWikitable)
	if err != nil {
		return nil, err
	}
	return e.attributeTable(tables[0], tableOptions{})
}

func (e *Engine) attributeTable(fragment string, opts tableOptions) ([]awardscan.Record, error) {
	s := &tableScan{e: e, c: NewCursor(fragment), opts: opts}
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.asm.result("attribute table")
}

func (s *tableScan) run() error {
	state := stateHeaderScan
	var err error
	for state != stateDone {
		switch state {
		case stateHeaderScan:
			state, err = s.scanHeader()
		case stateRowScan:
			state, err = s.scanRows()
		case stateCellScan:
			state, err = s.scanCells()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// scanHeader collects the attribute names of the header row. Year lines
// met on the way are taken as stamps.
func (s *tableScan) scanHeader() (tableState, error) {
	for {
		line, ok := s.c.Peek()
		if !ok {
			return stateDone, awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input before header row")
		}

		cl := Classify(line)
		if len(s.headers) > 0 && (cl == ClassRowStart || cl == ClassDataCell) {
			// header row closed on its last cell's line
			return stateRowScan, nil
		}
		s.c.Next()

		switch cl {
		case ClassHeaderCell:
			content, err := s.c.Cell(line)
			if err != nil {
				return stateDone, err
			}
			if s.opts.stamps && isStampCell(content) {
				s.captureYears(content)
				continue
			}
			s.headers = append(s.headers, s.e.splitter.Text(content))
		case ClassDataCell:
			return stateDone, awardscan.Errorf(awardscan.EMALFORMED, "data cell before header row")
		case ClassRowEnd:
			if len(s.headers) > 0 {
				return stateRowScan, nil
			}
		case ClassTableEnd:
			return stateDone, awardscan.Errorf(awardscan.EMALFORMED, "table has no header row")
		case ClassNone:
			if s.opts.stamps && isYearLine(line) {
				s.captureYears(line)
			}
		}
	}
}

// scanRows waits for the next row.
func (s *tableScan) scanRows() (tableState, error) {
	for {
		line, ok := s.c.Peek()
		if !ok {
			return stateDone, nil
		}

		switch Classify(line) {
		case ClassTableEnd:
			s.c.Next()
			return stateDone, nil
		case ClassRowStart:
			s.c.Next()
			return stateCellScan, nil
		case ClassHeaderCell, ClassDataCell:
			return stateCellScan, nil
		}
		s.c.Next()
	}
}

// scanCells reads the cells of one row and emits it.
func (s *tableScan) scanCells() (tableState, error) {
	for {
		line, ok := s.c.Peek()
		if !ok {
			return stateDone, awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input inside row")
		}

		switch Classify(line) {
		case ClassRowEnd:
			s.c.Next()
			s.endRow()
			return stateRowScan, nil
		case ClassRowStart, ClassTableEnd:
			s.endRow()
			return stateRowScan, nil
		case ClassHeaderCell, ClassDataCell:
			s.c.Next()
			content, err := s.c.Cell(line)
			if err != nil {
				return stateDone, err
			}
			s.cell(content)
		default:
			s.c.Next()
		}
	}
}

func (s *tableScan) cell(content string) {
	first := s.rowCells == 0
	s.rowCells++

	if first && s.opts.shift && s.opts.stamps {
		if _, ok := yearCell(content); ok {
			s.asm.startGroup()
			s.captureYears(content)
			return
		}
	}

	col := s.col
	if s.opts.shift {
		col++
	}
	s.col++
	if col >= len(s.headers) {
		return
	}
	s.cand.set(s.headers[col], s.e.splitter.Split(content).String())
}

func (s *tableScan) endRow() {
	var winner string
	if s.opts.stamps {
		winner = winnerFlag(s.asm.firstInGroup())
	}
	s.asm.emit(&s.cand, winner)
	s.col, s.rowCells = 0, 0
}

// captureYears stamps the calendar year from the first year hyperlink of
// line and the award link and year from the ceremony hyperlink. Without a
// ceremony hyperlink the last of several year hyperlinks is used; a lone
// one only sets the calendar year and leaves the award to the next year
// line.
func (s *tableScan) captureYears(line string) {
	anchors := yearAnchors(line)
	if len(anchors) == 0 {
		return
	}

	calendarSet := s.asm.stamped(awardscan.AttrCalendarYear)
	if !calendarSet {
		s.asm.stamp(awardscan.AttrCalendarYear, calendarYear(anchors[0].Text))
	}
	if s.asm.stamped(awardscan.AttrAwardLink) {
		return
	}

	ceremony, ok := ceremonyAnchor(anchors)
	if !ok {
		if len(anchors) < 2 && !calendarSet {
			return
		}
		ceremony = anchors[len(anchors)-1]
	}
	s.asm.stamp(awardscan.AttrAwardLink, ceremony.Href)
	s.asm.stamp(awardscan.AttrAwardYear, firstDigits(ceremony.Text))
}

func ceremonyAnchor(anchors []awardscan.Link) (awardscan.Link, bool) {
	for i := len(anchors) - 1; i >= 0; i-- {
		if ceremonyRe.MatchString(anchors[i].Href) {
			return anchors[i], true
		}
	}
	return awardscan.Link{}, false
}
