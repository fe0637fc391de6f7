package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cjubb39/awardscan"
)

var (
	ageRe = regexp.MustCompile(`age(?:&nbsp;|&#160;|\s|\x{00a0})+(\d+)`)

	// starSplitRe separates the names of an infobox cell.
	starSplitRe = regexp.MustCompile(`(?i)<br\s*/?>|<li\b[^>]*>`)
)

// CountWins counts the list items after the first wikitable whose bold
// text mentions title. Winners are set in bold on ceremony pages.
func (e *Engine) CountWins(page string, title string) (int, error) {
	if strings.TrimSpace(title) == "" {
		return 0, awardscan.Errorf(awardscan.EINVALID, "title required")
	}

	c := NewCursor(page)
	if _, _, err := c.SkipUntilFunc("wikitable", IsWikitable); err != nil {
		return 0, err
	}

	winRe := regexp.MustCompile(`<b>.*` + regexp.QuoteMeta(title) + `.*</b>`)
	var n int
	for {
		line, ok := c.Next()
		if !ok {
			return n, nil
		}
		if Classify(line) == ClassListItem && winRe.MatchString(line) {
			n++
		}
	}
}

// Age returns the age given in the "Born" cell of a biography infobox.
func (e *Engine) Age(page string) (int, error) {
	content, err := infoboxCell(page, "Born")
	if err != nil {
		return 0, err
	}

	m := ageRe.FindStringSubmatch(content)
	if m == nil {
		return 0, awardscan.Errorf(awardscan.EMALFORMED, "no age in born cell")
	}
	age, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, awardscan.WrapErrorf(awardscan.EMALFORMED, err, "invalid age %q", m[1])
	}
	return age, nil
}

// Starring returns the names in the "Starring" cell of a film infobox.
func (e *Engine) Starring(page string) ([]string, error) {
	content, err := infoboxCell(page, "Starring")
	if err != nil {
		return nil, err
	}

	var names awardscan.CellValue
	for _, part := range starSplitRe.Split(content, -1) {
		if link, ok := e.splitter.Link(part, awardscan.LinkFirst); ok {
			names.Add(link.Text)
			continue
		}
		names.Add(e.splitter.Text(part))
	}

	if names.Len() == 0 {
		return nil, awardscan.Errorf(awardscan.EEMPTY, "starring cell is empty")
	}
	return names.Values(), nil
}

// infoboxCell returns the markup of the data cell following the infobox
// header labelled label, on the same line or the next one.
func infoboxCell(page, label string) (string, error) {
	headerRe := regexp.MustCompile(`(?i)<th\b[^>]*>\s*` + regexp.QuoteMeta(label) + `\s*</th>`)

	c := NewCursor(page)
	line, _, err := c.SkipUntilFunc(strconv.Quote(label)+" header", headerRe.MatchString)
	if err != nil {
		return "", err
	}

	rest := line[headerRe.FindStringIndex(line)[1]:]
	if strings.TrimSpace(rest) == "" {
		c.SkipBlank()
		next, ok := c.Next()
		if !ok {
			return "", awardscan.Errorf(awardscan.EMALFORMED, "unexpected end of input after %q header", label)
		}
		rest = next
	}

	if !cellOpenRe.MatchString(rest) {
		return rest, nil
	}
	return c.Cell(rest)
}
