// Package markup implements the awardscan extraction engine. Pages are read
// line by line and each line is classified against a small sentinel grammar;
// the extractors are one-line-lookahead state machines over that grammar.
// Pages are never parsed as whole documents. Only single cells and line
// fragments are handed to an awardscan.CellSplitter.
package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cjubb39/awardscan"
	"golang.org/x/net/html"
)

// Class is the structural role of a single line.
type Class int

// Line classes of the sentinel grammar.
const (
	ClassNone Class = iota
	ClassTableStart
	ClassTableEnd
	ClassRowStart
	ClassRowEnd
	ClassHeaderCell
	ClassDataCell
	ClassListStart
	ClassListItem
	ClassListEnd
)

var classNames = [...]string{
	ClassNone:       "none",
	ClassTableStart: "table-start",
	ClassTableEnd:   "table-end",
	ClassRowStart:   "row-start",
	ClassRowEnd:     "row-end",
	ClassHeaderCell: "header-cell",
	ClassDataCell:   "data-cell",
	ClassListStart:  "list-start",
	ClassListItem:   "list-item",
	ClassListEnd:    "list-end",
}

// String returns the sentinel name of the class.
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "class(" + strconv.Itoa(int(c)) + ")"
	}
	return classNames[c]
}

// Sentinels are matched at the start of a line. End tags are checked first.
var sentinels = []struct {
	class Class
	re    *regexp.Regexp
}{
	{ClassTableEnd, regexp.MustCompile(`(?i)^\s*</table>`)},
	{ClassRowEnd, regexp.MustCompile(`(?i)^\s*</tr>`)},
	{ClassListEnd, regexp.MustCompile(`(?i)^\s*</ul>`)},
	{ClassTableStart, regexp.MustCompile(`(?i)^\s*<table\b`)},
	{ClassRowStart, regexp.MustCompile(`(?i)^\s*<tr\b`)},
	{ClassHeaderCell, regexp.MustCompile(`(?i)^\s*<th\b`)},
	{ClassDataCell, regexp.MustCompile(`(?i)^\s*<td\b`)},
	{ClassListStart, regexp.MustCompile(`(?i)^\s*<ul\b`)},
	{ClassListItem, regexp.MustCompile(`(?i)^\s*<li\b`)},
}

var (
	tableClassRe = regexp.MustCompile(`(?i)^\s*<table\b[^>]*\bclass="([^"]*)"`)

	// cellOpenRe matches the opening tag of a header or data cell.
	cellOpenRe = regexp.MustCompile(`(?i)^\s*<t[dh]\b[^>]*>`)

	// cellCloseRe matches a closing cell tag ending a line, optionally
	// followed by the row end.
	cellCloseRe = regexp.MustCompile(`(?i)</t[dh]>(?:\s*</tr>)?\s*$`)

	// siblingCellRe matches a cell close followed on the same line by the
	// next cell, which is captured.
	siblingCellRe = regexp.MustCompile(`(?i)</t[dh]>\s*(<t[dh]\b.*)$`)

	// listItemOpenRe matches the opening tag of a list item.
	listItemOpenRe = regexp.MustCompile(`(?i)<li\b[^>]*>`)

	// listItemEndRe matches the end of a list item's markup.
	listItemEndRe = regexp.MustCompile(`(?i)</li>|</?ul\b[^>]*>`)

	listItemRe = regexp.MustCompile(`(?i)^\s*<li\b[^>]*>(.*?)(?:</li>.*)?$`)

	// referenceRe matches footnote superscripts such as
	// <sup class="reference"><a href="#cite_note-1">[1]</a></sup>.
	referenceRe = regexp.MustCompile(`(?is)<sup\b[^>]*class="[^"]*\breference\b[^"]*"[^>]*>.*?</sup>`)

	// yearAnchorRe matches hyperlinks whose text carries digits.
	yearAnchorRe = regexp.MustCompile(`(?i)<a\s[^>]*?href="([^"]*)"[^>]*>([^<]*\d[^<]*)</a>`)

	// yearCellRe matches the first four-digit year hyperlink of a cell.
	yearCellRe = regexp.MustCompile(`(?i)<a\s[^>]*?href="([^"]*)"[^>]*>\s*(\d{4})\b[^<]*</a>`)

	// ceremonyRe matches the target of an award ceremony page.
	ceremonyRe = regexp.MustCompile(`(?i)academy_awards?\b`)

	// dashRe matches a dash surrounded by whitespace.
	dashRe = regexp.MustCompile(`\s(?:[\x{2013}\x{2014}-]|&ndash;|&mdash;|&#8211;|&#8212;)\s`)

	breakRe = regexp.MustCompile(`(?i)<br\s*/?>`)

	digitsRe = regexp.MustCompile(`\d+`)
)

// Classify returns the class of a single line.
func Classify(line string) Class {
	for _, s := range sentinels {
		if s.re.MatchString(line) {
			return s.class
		}
	}
	return ClassNone
}

// IsWikitable reports whether line opens a table whose class includes
// "wikitable".
func IsWikitable(line string) bool {
	return hasTableClass(line, "wikitable")
}

// IsSortableWikitable reports whether line opens a sortable wikitable.
func IsSortableWikitable(line string) bool {
	return hasTableClass(line, "wikitable") && hasTableClass(line, "sortable")
}

func hasTableClass(line, class string) bool {
	m := tableClassRe.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	for _, c := range strings.Fields(m[1]) {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}

// isCell reports whether the class opens a cell.
func isCell(c Class) bool {
	return c == ClassHeaderCell || c == ClassDataCell
}

// listItemContent returns the markup of a list item line without its tags.
func listItemContent(line string) string {
	m := listItemRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

// stripReferences removes footnote superscripts from markup.
func stripReferences(s string) string {
	return referenceRe.ReplaceAllString(s, "")
}

// listItems returns the markup of each list item in content, which may
// span lines.
func listItems(content string) []string {
	pieces := listItemOpenRe.Split(content, -1)
	items := make([]string, 0, len(pieces))
	for _, p := range pieces[1:] {
		if loc := listItemEndRe.FindStringIndex(p); loc != nil {
			p = p[:loc[0]]
		}
		items = append(items, strings.TrimSpace(p))
	}
	return items
}

// hasListItems reports whether content holds list items.
func hasListItems(content string) bool {
	return listItemOpenRe.MatchString(content)
}

// yearAnchors returns the digit-bearing hyperlinks of a line in order.
// Footnotes and in-page anchors are not year links.
func yearAnchors(line string) []awardscan.Link {
	var links []awardscan.Link
	for _, m := range yearAnchorRe.FindAllStringSubmatch(stripReferences(line), -1) {
		href := html.UnescapeString(m[1])
		if strings.HasPrefix(href, "#") {
			continue
		}
		links = append(links, awardscan.Link{
			Text: strings.TrimSpace(html.UnescapeString(m[2])),
			Href: href,
		})
	}
	return links
}

// isYearLine reports whether line carries a digit-bearing hyperlink.
func isYearLine(line string) bool {
	return len(yearAnchors(line)) > 0
}

// isStampCell reports whether a header cell holds year stamps rather than
// an attribute name: a four-digit year link or a ceremony link.
func isStampCell(content string) bool {
	if _, ok := yearCell(content); ok {
		return true
	}
	_, ok := ceremonyAnchor(yearAnchors(content))
	return ok
}

// yearCell returns the award link and four-digit year of a year cell.
func yearCell(content string) (awardscan.Link, bool) {
	m := yearCellRe.FindStringSubmatch(stripReferences(content))
	if m == nil {
		return awardscan.Link{}, false
	}
	return awardscan.Link{Text: m[2], Href: html.UnescapeString(m[1])}, true
}

// splitDash splits a ballot entry into its leading segment and, when a
// dash separator is present, the trailing segment.
func splitDash(fragment string) []string {
	return dashRe.Split(fragment, 2)
}

// splitBreaks splits markup on line-break tags.
func splitBreaks(fragment string) []string {
	return breakRe.Split(fragment, -1)
}

// firstDigits returns the first run of digits in s.
func firstDigits(s string) string {
	return digitsRe.FindString(s)
}

// calendarYear returns the first year written in s. Two-digit years are
// taken to be in the 1900s.
func calendarYear(s string) string {
	d := firstDigits(s)
	if len(d) == 2 {
		n, _ := strconv.Atoi(d)
		return strconv.Itoa(1900 + n)
	}
	return d
}
