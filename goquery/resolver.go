package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cjubb39/awardscan"
)

// DefaultAnchorPattern matches the targets of award ceremony pages.
const DefaultAnchorPattern = `(?i)academy.*awards`

// Ensure LinkResolver implements awardscan.LinkResolver at compile time.
var _ awardscan.LinkResolver = (*LinkResolver)(nil)

// LinkResolver searches the anchors of a page for candidate award pages.
type LinkResolver struct {
	root          *url.URL
	anchorPattern *regexp.Regexp
}

// ResolverOption configures a LinkResolver.
type ResolverOption func(*LinkResolver)

// WithAnchorPattern restricts ResolveAnchors to targets matching pattern.
func WithAnchorPattern(pattern *regexp.Regexp) ResolverOption {
	return func(r *LinkResolver) {
		r.anchorPattern = pattern
	}
}

// NewLinkResolver creates a LinkResolver. Links are made absolute against
// rootURL; links on the same host are returned site-relative.
func NewLinkResolver(rootURL string, opts ...ResolverOption) (*LinkResolver, error) {
	root, err := url.Parse(rootURL)
	if err != nil || root.Scheme == "" || root.Host == "" {
		return nil, awardscan.Errorf(awardscan.EINVALID, "invalid root URL %q", rootURL)
	}

	r := &LinkResolver{
		root:          root,
		anchorPattern: regexp.MustCompile(DefaultAnchorPattern),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// ResolveLinks returns the distinct addresses whose absolute form contains
// term, in document order.
func (r *LinkResolver) ResolveLinks(page string, term string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, awardscan.Errorf(awardscan.EMALFORMED, "failed to parse page: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		abs := r.absolute(href)
		if abs == nil || !strings.Contains(abs.String(), term) {
			return
		}

		link := r.relative(abs)
		if seen[link] {
			return
		}
		seen[link] = true
		links = append(links, link)
	})

	return links, nil
}

// ResolveAnchors returns the links whose display text contains term and
// whose target matches the anchor pattern, in document order.
func (r *LinkResolver) ResolveAnchors(page string, term string) ([]awardscan.Link, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, awardscan.Errorf(awardscan.EMALFORMED, "failed to parse page: %v", err)
	}

	var links []awardscan.Link
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := cleanText(sel.Text())
		if text == "" || !strings.Contains(text, term) || isNonHTTPLink(href) {
			return
		}

		abs := r.absolute(href)
		if abs == nil {
			return
		}
		link := r.relative(abs)
		if !r.anchorPattern.MatchString(link) {
			return
		}
		links = append(links, awardscan.Link{Text: text, Href: link})
	})

	return links, nil
}

// absolute resolves href against the root URL with the fragment stripped.
func (r *LinkResolver) absolute(href string) *url.URL {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return nil
	}
	resolved := r.root.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved
}

// relative returns the request URI for links on the root host and the
// absolute URL otherwise.
func (r *LinkResolver) relative(u *url.URL) string {
	if u.Host == r.root.Host {
		return u.RequestURI()
	}
	return u.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
