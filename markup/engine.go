package markup

import (
	"strings"

	"github.com/cjubb39/awardscan"
)

// Ensure Engine implements awardscan.RecordExtractor at compile time.
var _ awardscan.RecordExtractor = (*Engine)(nil)

// Engine extracts records from award pages. Each call owns its cursor and
// scratch state, so one Engine may serve concurrent extractions.
type Engine struct {
	splitter awardscan.CellSplitter
}

// NewEngine creates an Engine that normalizes cells with splitter.
func NewEngine(splitter awardscan.CellSplitter) *Engine {
	return &Engine{splitter: splitter}
}

// wikitables returns the text of each top-level table on the page accepted
// by open, from its start line through its end line.
func wikitables(page string, open func(line string) bool) ([]string, error) {
	c := NewCursor(page)
	var tables []string

	for {
		line, ok := c.Next()
		if !ok {
			break
		}
		if Classify(line) != ClassTableStart || !open(line) {
			continue
		}

		chunk := []string{line}
		depth := 1
		for depth > 0 {
			l, ok := c.Next()
			if !ok {
				return nil, awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input inside table %d", len(tables)+1)
			}
			switch Classify(l) {
			case ClassTableStart:
				depth++
			case ClassTableEnd:
				depth--
			}
			chunk = append(chunk, l)
		}
		tables = append(tables, strings.Join(chunk, "\n"))
	}

	if len(tables) == 0 {
		return nil, awardscan.Errorf(awardscan.EMALFORMED, "no wikitable found")
	}
	return tables, nil
}

// extractAll runs extract over every wikitable on the page. Tables yielding
// nothing are skipped; any other failure fails the page.
func extractAll(page string, what string, extract func(table string) ([]awardscan.Record, error)) ([]awardscan.Record, error) {
	tables, err := wikitables(page, IsWikitable)
	if err != nil {
		return nil, err
	}

	var all []awardscan.Record
	for _, t := range tables {
		records, err := extract(t)
		if awardscan.ErrorCode(err) == awardscan.EEMPTY {
			continue
		}
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}

	if len(all) == 0 {
		return nil, awardscan.Errorf(awardscan.EEMPTY, "no %s records found", what)
	}
	return all, nil
}

// fillSegment stores the first hyperlink of seg under textKey and linkKey.
// Without a hyperlink only the plain text is stored.
func (e *Engine) fillSegment(c *candidate, seg, textKey, linkKey string) {
	if link, ok := e.splitter.Link(seg, awardscan.LinkFirst); ok {
		c.set(textKey, link.Text)
		c.set(linkKey, link.Href)
		return
	}
	if text := e.splitter.Text(seg); text != "" {
		c.set(textKey, text)
	}
}

// fillBallot stores a "person – film" fragment. A fragment without a dash
// is person only.
func (e *Engine) fillBallot(c *candidate, fragment string) {
	parts := splitDash(fragment)
	e.fillSegment(c, parts[0], awardscan.AttrPerson, awardscan.AttrPersonLink)
	if len(parts) > 1 {
		e.fillSegment(c, parts[1], awardscan.AttrMovie, awardscan.AttrMovieLink)
	}
}
