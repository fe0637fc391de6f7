package markup

import (
	"slices"
	"strings"

	"github.com/cjubb39/awardscan"
)

// Cursor is a one-line-lookahead reader over the lines of a page.
// Every scan is bounded by the number of lines and fails with EMALFORMED
// when the input runs out before the awaited sentinel.
type Cursor struct {
	lines []string
	pos   int
}

// NewCursor splits text into lines. Carriage returns are dropped.
func NewCursor(text string) *Cursor {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return &Cursor{lines: lines}
}

// Done reports whether every line has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.lines)
}

// Peek returns the next line without consuming it.
func (c *Cursor) Peek() (string, bool) {
	if c.Done() {
		return "", false
	}
	return c.lines[c.pos], true
}

// Next consumes and returns the next line.
func (c *Cursor) Next() (string, bool) {
	line, ok := c.Peek()
	if ok {
		c.pos++
	}
	return line, ok
}

// PeekClass returns the class of the next line, and false at end of input.
func (c *Cursor) PeekClass() (Class, bool) {
	line, ok := c.Peek()
	if !ok {
		return ClassNone, false
	}
	return Classify(line), true
}

// SkipBlank consumes lines holding only whitespace.
func (c *Cursor) SkipBlank() {
	for {
		line, ok := c.Peek()
		if !ok || strings.TrimSpace(line) != "" {
			return
		}
		c.pos++
	}
}

// SkipUntil consumes lines up to and including the first line of one of the
// given classes, and returns that line and its class.
func (c *Cursor) SkipUntil(classes ...Class) (string, Class, error) {
	return c.SkipUntilFunc(describe(classes), func(line string) bool {
		cl := Classify(line)
		for _, want := range classes {
			if cl == want {
				return true
			}
		}
		return false
	})
}

// SkipUntilFunc consumes lines up to and including the first line for which
// match returns true. what names the awaited line in errors.
func (c *Cursor) SkipUntilFunc(what string, match func(line string) bool) (string, Class, error) {
	for {
		line, ok := c.Next()
		if !ok {
			return "", ClassNone, awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input waiting for %s", what)
		}
		if match(line) {
			return line, Classify(line), nil
		}
	}
}

// unread pushes line back so that it is the next line returned.
func (c *Cursor) unread(line string) {
	c.lines = slices.Insert(c.lines, c.pos, line)
}

// Cell returns the markup inside the cell opened on first, which must
// already be consumed. A cell left open continues over the following lines
// until its closing tag, or until the next cell, row or table sentinel.
// Sibling cells sharing a line are left on the cursor as the next line.
func (c *Cursor) Cell(first string) (string, error) {
	loc := cellOpenRe.FindStringIndex(first)
	if loc == nil {
		return "", awardscan.Errorf(awardscan.EMALFORMED, "expected cell, got %q", first)
	}
	rest := first[loc[1]:]
	if content, ok := c.cutSibling(rest); ok {
		return content, nil
	}
	if m := cellCloseRe.FindStringIndex(rest); m != nil {
		return rest[:m[0]], nil
	}

	parts := []string{rest}
	for {
		line, ok := c.Peek()
		if !ok {
			return "", awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input inside cell")
		}
		switch Classify(line) {
		case ClassHeaderCell, ClassDataCell, ClassRowStart, ClassRowEnd, ClassTableStart, ClassTableEnd:
			return strings.Join(parts, "\n"), nil
		}
		c.pos++
		if content, ok := c.cutSibling(line); ok {
			parts = append(parts, content)
			return strings.Join(parts, "\n"), nil
		}
		if m := cellCloseRe.FindStringIndex(line); m != nil {
			parts = append(parts, line[:m[0]])
			return strings.Join(parts, "\n"), nil
		}
		parts = append(parts, line)
	}
}

// cutSibling returns the markup of line before a cell close that is
// followed by another cell on the same line, and unreads that cell.
func (c *Cursor) cutSibling(line string) (string, bool) {
	m := siblingCellRe.FindStringSubmatchIndex(line)
	if m == nil {
		return "", false
	}
	c.unread(line[m[2]:])
	return line[:m[0]], true
}

func describe(classes []Class) string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return strings.Join(names, " or ")
}
