package awardscan

// LinkResolver locates candidate pages from the links on an index page.
// It is a plain search over anchors, not part of the extraction grammar.
type LinkResolver interface {
	// ResolveLinks returns the distinct site-relative addresses of links
	// whose target contains term, in document order.
	ResolveLinks(page string, term string) ([]string, error)

	// ResolveAnchors returns the award-page links whose display text
	// contains term, in document order.
	ResolveAnchors(page string, term string) ([]Link, error)
}
