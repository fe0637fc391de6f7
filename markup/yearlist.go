package markup

import "github.com/cjubb39/awardscan"

// listPosition is the side of its row a category header sits on.
type listPosition int

const (
	positionLeft listPosition = iota
	positionRight
)

// CategoryYear extracts the ballot listed under the header labelled
// category on a ceremony-year page. Categories are laid out two to a row,
// so the header's position decides whether its list is the first or the
// second one after the header row. importance picks the first or last
// hyperlink of each segment.
func (e *Engine) CategoryYear(page string, category string, importance awardscan.Importance) ([]awardscan.Person, error) {
	c := NewCursor(page)

	if _, _, err := c.SkipUntilFunc("wikitable", IsWikitable); err != nil {
		return nil, err
	}

	pos, err := e.findCategory(c, category)
	if err != nil {
		return nil, err
	}

	if _, _, err := c.SkipUntil(ClassListStart); err != nil {
		return nil, err
	}
	if pos == positionRight {
		if err := skipList(c); err != nil {
			return nil, err
		}
		if _, _, err := c.SkipUntil(ClassListStart); err != nil {
			return nil, err
		}
	}

	var people []awardscan.Person
	depth := 1
	for depth > 0 {
		line, ok := c.Next()
		if !ok {
			return nil, awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input inside %q list", category)
		}
		switch Classify(line) {
		case ClassListStart:
			depth++
		case ClassListEnd:
			depth--
		case ClassListItem:
			if p, ok := e.person(listItemContent(line), importance); ok {
				people = append(people, p)
			}
		}
	}

	if len(people) == 0 {
		return nil, awardscan.Errorf(awardscan.EEMPTY, "no nominees listed under %q", category)
	}
	return people, nil
}

// findCategory consumes lines through the header cell whose text is
// category and reports which side of the row it sits on.
func (e *Engine) findCategory(c *Cursor, category string) (listPosition, error) {
	for {
		line, ok := c.Next()
		if !ok {
			return positionLeft, awardscan.Errorf(awardscan.ENOTFOUND, "category %q not found", category)
		}
		if Classify(line) != ClassHeaderCell {
			continue
		}
		content, err := c.Cell(line)
		if err != nil {
			return positionLeft, err
		}
		if e.splitter.Text(content) != category {
			continue
		}

		c.SkipBlank()
		if cl, ok := c.PeekClass(); ok && cl == ClassHeaderCell {
			return positionLeft, nil
		}
		return positionRight, nil
	}
}

// skipList consumes the rest of a list whose start line is consumed.
func skipList(c *Cursor) error {
	depth := 1
	for depth > 0 {
		line, ok := c.Next()
		if !ok {
			return awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input inside list")
		}
		switch Classify(line) {
		case ClassListStart:
			depth++
		case ClassListEnd:
			depth--
		}
	}
	return nil
}

func (e *Engine) person(item string, importance awardscan.Importance) (awardscan.Person, bool) {
	parts := splitDash(item)
	pos := importance.LinkPosition()

	var p awardscan.Person
	p.Name, p.Link = e.segment(parts[0], pos)
	if len(parts) > 1 {
		p.Movie, p.MovieLink = e.segment(parts[1], pos)
	}
	return p, p.Name != ""
}

func (e *Engine) segment(seg string, pos awardscan.LinkPosition) (string, string) {
	if link, ok := e.splitter.Link(seg, pos); ok {
		return link.Text, link.Href
	}
	return e.splitter.Text(seg), ""
}
