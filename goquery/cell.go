// Package goquery implements the fragment-level HTML helpers of awardscan on
// top of github.com/PuerkitoBio/goquery: the hyperlink cell splitter and the
// portal link resolver.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cjubb39/awardscan"
	"golang.org/x/net/html"
)

var (
	// breakRe matches line-break tags, which separate values like ", ".
	breakRe = regexp.MustCompile(`(?i)<br\s*/?>`)

	// referenceRe matches footnote superscripts such as
	// <sup class="reference"><a href="#cite_note-1">[1]</a></sup>.
	referenceRe = regexp.MustCompile(`(?is)<sup\b[^>]*class="[^"]*\breference\b[^"]*"[^>]*>.*?</sup>`)

	// footnoteRe matches bracketed footnote markers left in plain text.
	footnoteRe = regexp.MustCompile(`\[(?:\d+|[a-zA-Z]|note \d+|nb \d+|citation needed)\]`)

	// anchorMarkupRe matches leftover anchor markup in a comma fragment.
	anchorMarkupRe = regexp.MustCompile(`(?i)<a\b|</a>`)

	spaceRe = regexp.MustCompile(`[\s\x{00a0}]+`)

	markupSpaceRe = regexp.MustCompile(`\s+`)
)

// Ensure CellSplitter implements awardscan.CellSplitter at compile time.
var _ awardscan.CellSplitter = (*CellSplitter)(nil)

// CellSplitter normalizes single cells and line fragments.
// It holds no state and is safe for concurrent use.
type CellSplitter struct{}

// NewCellSplitter creates a new CellSplitter.
func NewCellSplitter() *CellSplitter {
	return &CellSplitter{}
}

// Split returns the cell's hyperlink texts in document order followed by the
// comma-separated plain-text fragments that are not anchor markup and not
// already present.
func (s *CellSplitter) Split(raw string) awardscan.CellValue {
	var v awardscan.CellValue

	raw = markupSpaceRe.ReplaceAllString(stripReferences(raw), " ")
	raw = breakRe.ReplaceAllString(raw, ", ")

	if body, ok := parseFragment(raw); ok {
		body.Find("a").Each(func(_ int, a *goquery.Selection) {
			v.Add(cleanText(flatten(a.Nodes)))
		})
	}

	for _, frag := range strings.Split(raw, ", ") {
		if anchorMarkupRe.MatchString(frag) {
			continue
		}
		v.Add(s.Text(frag))
	}

	return v
}

// Link returns the first or last hyperlink with non-empty text.
func (s *CellSplitter) Link(fragment string, pos awardscan.LinkPosition) (awardscan.Link, bool) {
	body, ok := parseFragment(stripReferences(fragment))
	if !ok {
		return awardscan.Link{}, false
	}

	var links []awardscan.Link
	body.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		text := cleanText(flatten(a.Nodes))
		if href == "" || text == "" {
			return
		}
		links = append(links, awardscan.Link{Text: text, Href: strings.TrimSpace(href)})
	})

	if len(links) == 0 {
		return awardscan.Link{}, false
	}
	if pos == awardscan.LinkLast {
		return links[len(links)-1], true
	}
	return links[0], true
}

// Text returns the fragment's text with tags, footnote markers and
// redundant whitespace removed.
func (s *CellSplitter) Text(fragment string) string {
	body, ok := parseFragment(stripReferences(fragment))
	if !ok {
		return ""
	}
	return cleanText(flatten(body.Nodes))
}

// parseFragment parses a markup fragment and returns its body selection.
// Table and list tags outside their parents are dropped by the HTML parser
// while their text is kept.
func parseFragment(fragment string) (*goquery.Selection, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, false
	}
	return doc.Find("body"), true
}

func stripReferences(s string) string {
	return referenceRe.ReplaceAllString(s, "")
}

// flatten concatenates the text nodes below nodes.
func flatten(nodes []*html.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		writeText(n, &b)
	}
	return b.String()
}

func writeText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "br" {
			b.WriteByte(' ')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, b)
	}
}

func cleanText(s string) string {
	s = footnoteRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
