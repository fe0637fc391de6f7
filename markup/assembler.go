package markup

import "github.com/cjubb39/awardscan"

// candidate accumulates the attributes of one row or list item before it
// is assembled into a record. One candidate is reused for every row.
type candidate struct {
	attrs  map[string]string
	filled int
}

// set stores an attribute. Present-but-empty values are kept.
func (c *candidate) set(key, value string) {
	if c.attrs == nil {
		c.attrs = make(map[string]string)
	}
	if old, ok := c.attrs[key]; ok && old != "" {
		c.filled--
	}
	c.attrs[key] = value
	if value != "" {
		c.filled++
	}
}

// empty reports whether no attribute holds a value.
func (c *candidate) empty() bool {
	return c.filled == 0
}

func (c *candidate) reset() {
	clear(c.attrs)
	c.filled = 0
}

// assembler merges candidates with the stamps of the current row-group
// into records.
type assembler struct {
	records []awardscan.Record
	stamps  map[string]string
	emitted int
}

// startGroup drops the stamps of the previous row-group.
func (a *assembler) startGroup() {
	clear(a.stamps)
	a.emitted = 0
}

// stamp records a group-level attribute. Empty values are not stamped.
func (a *assembler) stamp(key, value string) {
	if value == "" {
		return
	}
	if a.stamps == nil {
		a.stamps = make(map[string]string)
	}
	a.stamps[key] = value
}

func (a *assembler) stamped(key string) bool {
	_, ok := a.stamps[key]
	return ok
}

// firstInGroup reports whether nothing was emitted for the current group.
func (a *assembler) firstInGroup() bool {
	return a.emitted == 0
}

// emit assembles c into a record and resets it. An empty winner leaves the
// winner attribute out. Empty candidates are dropped and false returned.
func (a *assembler) emit(c *candidate, winner string) bool {
	if c.empty() {
		c.reset()
		return false
	}

	r := make(awardscan.Record, len(c.attrs)+len(a.stamps)+1)
	for k, v := range c.attrs {
		r[k] = v
	}
	for k, v := range a.stamps {
		r[k] = v
	}
	if winner != "" {
		r[awardscan.AttrWinner] = winner
	}

	a.records = append(a.records, r)
	a.emitted++
	c.reset()
	return true
}

// result returns the assembled records, or EEMPTY if there are none.
func (a *assembler) result(what string) ([]awardscan.Record, error) {
	if len(a.records) == 0 {
		return nil, awardscan.Errorf(awardscan.EEMPTY, "no %s records found", what)
	}
	return a.records, nil
}

func winnerFlag(first bool) string {
	if first {
		return awardscan.WinnerYes
	}
	return awardscan.WinnerNo
}
