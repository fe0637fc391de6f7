// Package portal locates award pages from the Academy Awards portal and
// runs the extraction engine over them.
package portal

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/cjubb39/awardscan"
	"golang.org/x/sync/errgroup"
)

// Default locations of the portal and the site root its links resolve against.
const (
	DefaultPortalURL = "https://en.wikipedia.org/wiki/Portal:Academy_Award"
	DefaultRootURL   = "https://en.wikipedia.org"
)

// DefaultConcurrency bounds the concurrent page fetches of CategoryYears.
const DefaultConcurrency = 4

var listLinkRe = regexp.MustCompile(`[Ll]ist`)

// Ensure Service implements awardscan.AwardService at compile time.
var _ awardscan.AwardService = (*Service)(nil)

// Service implements awardscan.AwardService on top of the portal page.
type Service struct {
	Fetcher     awardscan.Fetcher
	Resolver    awardscan.LinkResolver
	Extractor   awardscan.RecordExtractor
	PortalURL   string
	RootURL     string
	Concurrency int

	mu     sync.Mutex
	portal string
}

// NewService creates a Service reading the default portal.
func NewService(fetcher awardscan.Fetcher, resolver awardscan.LinkResolver, extractor awardscan.RecordExtractor) *Service {
	return &Service{
		Fetcher:     fetcher,
		Resolver:    resolver,
		Extractor:   extractor,
		PortalURL:   DefaultPortalURL,
		RootURL:     DefaultRootURL,
		Concurrency: DefaultConcurrency,
	}
}

// AttributeTables extracts the attribute tables of the category page whose
// portal link contains category.
func (s *Service) AttributeTables(ctx context.Context, category string, shiftHeader bool) ([]awardscan.Record, error) {
	page, err := s.categoryPage(ctx, category)
	if err != nil {
		return nil, err
	}
	return s.Extractor.AttributeTables(page, shiftHeader)
}

// WinNominations extracts the year-winner-nominees tables of the category page.
func (s *Service) WinNominations(ctx context.Context, category string) ([]awardscan.Record, error) {
	page, err := s.categoryPage(ctx, category)
	if err != nil {
		return nil, err
	}
	return s.Extractor.WinNominationTables(page)
}

// CategoryYear extracts the nominees of category from the ceremony page of year.
func (s *Service) CategoryYear(ctx context.Context, category string, year int, importance awardscan.Importance) ([]awardscan.Person, error) {
	page, err := s.yearPage(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.Extractor.CategoryYear(page, category, importance)
}

// CategoryYears runs CategoryYear for every distinct year with at most
// Concurrency fetches in flight. The first failure cancels the rest.
func (s *Service) CategoryYears(ctx context.Context, category string, years []int, importance awardscan.Importance) (map[int][]awardscan.Person, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var mu sync.Mutex
	result := make(map[int][]awardscan.Person, len(years))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	seen := make(map[int]bool, len(years))
	for _, year := range years {
		if seen[year] {
			continue
		}
		seen[year] = true

		g.Go(func() error {
			people, err := s.CategoryYear(ctx, category, year, importance)
			if err != nil {
				return err
			}
			mu.Lock()
			result[year] = people
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListTable extracts the sortable table of the list page matching term.
// A link naming a list is preferred over the other matches.
func (s *Service) ListTable(ctx context.Context, term string) ([]awardscan.Record, error) {
	links, err := s.portalLinks(ctx, term)
	if err != nil {
		return nil, err
	}

	link := links[0]
	for _, l := range links {
		if listLinkRe.MatchString(l) {
			link = l
			break
		}
	}

	page, err := s.fetch(ctx, link)
	if err != nil {
		return nil, err
	}
	return s.Extractor.ListTable(page)
}

// WinCount counts the awards title won at the ceremony of year.
func (s *Service) WinCount(ctx context.Context, title string, year int) (int, error) {
	page, err := s.yearPage(ctx, year)
	if err != nil {
		return 0, err
	}
	return s.Extractor.CountWins(page, title)
}

// Age returns the current age from the biography page at personLink.
func (s *Service) Age(ctx context.Context, personLink string) (int, error) {
	page, err := s.fetch(ctx, personLink)
	if err != nil {
		return 0, err
	}
	return s.Extractor.Age(page)
}

// Starring returns the cast from the film page at movieLink.
func (s *Service) Starring(ctx context.Context, movieLink string) ([]string, error) {
	page, err := s.fetch(ctx, movieLink)
	if err != nil {
		return nil, err
	}
	return s.Extractor.Starring(page)
}

// categoryPage fetches the first portal link containing category.
func (s *Service) categoryPage(ctx context.Context, category string) (string, error) {
	links, err := s.portalLinks(ctx, category)
	if err != nil {
		return "", err
	}
	return s.fetch(ctx, links[0])
}

// yearPage fetches the ceremony page whose portal anchor reads year.
func (s *Service) yearPage(ctx context.Context, year int) (string, error) {
	portal, err := s.portalPage(ctx)
	if err != nil {
		return "", err
	}

	term := strconv.Itoa(year)
	anchors, err := s.Resolver.ResolveAnchors(portal, term)
	if err != nil {
		return "", err
	}
	for _, a := range anchors {
		if strings.TrimSpace(a.Text) == term {
			return s.fetch(ctx, a.Href)
		}
	}
	return "", awardscan.Errorf(awardscan.ENOTFOUND, "no ceremony page for %d", year)
}

func (s *Service) portalLinks(ctx context.Context, term string) ([]string, error) {
	portal, err := s.portalPage(ctx)
	if err != nil {
		return nil, err
	}

	links, err := s.Resolver.ResolveLinks(portal, term)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, awardscan.Errorf(awardscan.ENOTFOUND, "no portal link matching %q", term)
	}
	return links, nil
}

// portalPage returns the portal content, fetching it on first use.
func (s *Service) portalPage(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.portal != "" {
		return s.portal, nil
	}

	portalURL := s.PortalURL
	if portalURL == "" {
		portalURL = DefaultPortalURL
	}
	page, err := s.fetch(ctx, portalURL)
	if err != nil {
		return "", err
	}
	s.portal = page
	return page, nil
}

// fetch retrieves link, resolving site-relative links against RootURL.
func (s *Service) fetch(ctx context.Context, link string) (string, error) {
	target, err := s.absolute(link)
	if err != nil {
		return "", err
	}

	page, err := s.Fetcher.Fetch(ctx, target)
	if err != nil {
		return "", awardscan.WrapErrorf(awardscan.EUNAVAILABLE, err, "fetch %s", target)
	}
	return page, nil
}

func (s *Service) absolute(link string) (string, error) {
	if strings.TrimSpace(link) == "" {
		return "", awardscan.Errorf(awardscan.EINVALID, "empty page link")
	}

	rootURL := s.RootURL
	if rootURL == "" {
		rootURL = DefaultRootURL
	}
	root, err := url.Parse(rootURL)
	if err != nil {
		return "", awardscan.WrapErrorf(awardscan.EINVALID, err, "invalid root URL %q", rootURL)
	}
	ref, err := url.Parse(link)
	if err != nil {
		return "", awardscan.WrapErrorf(awardscan.EINVALID, err, "invalid page link %q", link)
	}
	return root.ResolveReference(ref).String(), nil
}
