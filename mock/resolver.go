package mock

import "github.com/cjubb39/awardscan"

var _ awardscan.LinkResolver = (*LinkResolver)(nil)

// LinkResolver is a mock implementation of awardscan.LinkResolver.
type LinkResolver struct {
	ResolveLinksFn   func(page string, term string) ([]string, error)
	ResolveAnchorsFn func(page string, term string) ([]awardscan.Link, error)
}

func (r *LinkResolver) ResolveLinks(page string, term string) ([]string, error) {
	return r.ResolveLinksFn(page, term)
}

func (r *LinkResolver) ResolveAnchors(page string, term string) ([]awardscan.Link, error) {
	return r.ResolveAnchorsFn(page, term)
}
