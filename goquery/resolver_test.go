package goquery_test

import (
	"regexp"
	"testing"

	"github.com/cjubb39/awardscan"
	"github.com/cjubb39/awardscan/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portalPage = `<!DOCTYPE html>
<html>
<body>
<ul>
	<li><a href="/wiki/Academy_Award_for_Best_Picture">Best Picture</a></li>
	<li><a href="/wiki/Academy_Award_for_Best_Picture#Winners">Winners</a></li>
	<li><a href="https://en.wikipedia.org/wiki/Academy_Award_for_Best_Director">Best Director</a></li>
	<li><a href="/wiki/List_of_Academy_Award_winners_and_nominees_for_Best_Foreign_Language_Film">Foreign</a></li>
	<li><a href="javascript:void(0)">Best Picture menu</a></li>
	<li><a href="https://example.org/Best_Picture">Elsewhere</a></li>
</ul>
<table>
	<tr><td><a href="/wiki/85th_Academy_Awards">2012</a></td><td><a href="/wiki/86th_Academy_Awards">2013</a></td></tr>
	<tr><td><a href="/wiki/2013_in_film">2013</a></td></tr>
</table>
</body>
</html>`

func TestNewLinkResolver(t *testing.T) {
	t.Parallel()

	_, err := goquery.NewLinkResolver("not a url")

	require.Error(t, err)
	assert.Equal(t, awardscan.EINVALID, awardscan.ErrorCode(err))
}

func TestLinkResolver_ResolveLinks(t *testing.T) {
	t.Parallel()

	t.Run("returns matching links once in document order", func(t *testing.T) {
		t.Parallel()

		r, err := goquery.NewLinkResolver("https://en.wikipedia.org")
		require.NoError(t, err)

		links, err := r.ResolveLinks(portalPage, "Best_")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"/wiki/Academy_Award_for_Best_Picture",
			"/wiki/Academy_Award_for_Best_Director",
			"/wiki/List_of_Academy_Award_winners_and_nominees_for_Best_Foreign_Language_Film",
			"https://example.org/Best_Picture",
		}, links)
	})

	t.Run("matches against the absolute address", func(t *testing.T) {
		t.Parallel()

		r, err := goquery.NewLinkResolver("https://en.wikipedia.org")
		require.NoError(t, err)

		links, err := r.ResolveLinks(portalPage, "en.wikipedia.org/wiki/List")

		require.NoError(t, err)
		assert.Equal(t, []string{"/wiki/List_of_Academy_Award_winners_and_nominees_for_Best_Foreign_Language_Film"}, links)
	})

	t.Run("returns nothing when no link matches", func(t *testing.T) {
		t.Parallel()

		r, err := goquery.NewLinkResolver("https://en.wikipedia.org")
		require.NoError(t, err)

		links, err := r.ResolveLinks(portalPage, "Best_Sound")

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestLinkResolver_ResolveAnchors(t *testing.T) {
	t.Parallel()

	t.Run("matches display text and ceremony targets", func(t *testing.T) {
		t.Parallel()

		r, err := goquery.NewLinkResolver("https://en.wikipedia.org")
		require.NoError(t, err)

		links, err := r.ResolveAnchors(portalPage, "2013")

		require.NoError(t, err)
		assert.Equal(t, []awardscan.Link{{Text: "2013", Href: "/wiki/86th_Academy_Awards"}}, links)
	})

	t.Run("uses a custom anchor pattern", func(t *testing.T) {
		t.Parallel()

		r, err := goquery.NewLinkResolver("https://en.wikipedia.org", goquery.WithAnchorPattern(regexp.MustCompile(`_in_film$`)))
		require.NoError(t, err)

		links, err := r.ResolveAnchors(portalPage, "2013")

		require.NoError(t, err)
		assert.Equal(t, []awardscan.Link{{Text: "2013", Href: "/wiki/2013_in_film"}}, links)
	})
}
