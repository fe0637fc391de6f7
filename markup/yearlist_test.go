package markup_test

import (
	"testing"

	"github.com/cjubb39/awardscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ceremonyPage = `<html>
<body>
<p>The <b>85th Academy Awards</b> ceremony honored the best films of 2012.</p>
<table class="wikitable">
<tr>
<th style="width:50%"><a href="/wiki/Academy_Award_for_Best_Picture" title="Academy Award for Best Picture">Best Picture</a></th>
<th style="width:50%"><a href="/wiki/Academy_Award_for_Best_Director" title="Academy Award for Best Director">Best Director</a></th>
</tr>
<tr>
<td valign="top">
<ul>
<li><b><i><a href="/wiki/Argo_(2012_film)" title="Argo (2012 film)">Argo</a></i></b> – <a href="/wiki/Grant_Heslov" title="Grant Heslov">Grant Heslov</a>, <a href="/wiki/Ben_Affleck" title="Ben Affleck">Ben Affleck</a> and <a href="/wiki/George_Clooney" title="George Clooney">George Clooney</a>
<ul>
<li><i><a href="/wiki/Amour_(2012_film)" title="Amour (2012 film)">Amour</a></i> – <a href="/wiki/Margaret_M%C3%A9n%C3%A9goz" title="Margaret Ménégoz">Margaret Ménégoz</a></li>
</ul>
</li>
</ul>
</td>
<td valign="top">
<ul>
<li><b><a href="/wiki/Ang_Lee" title="Ang Lee">Ang Lee</a> – <i><a href="/wiki/Life_of_Pi_(film)" title="Life of Pi (film)">Life of Pi</a></i></b></li>
<li><a href="/wiki/Michael_Haneke" title="Michael Haneke">Michael Haneke</a> – <i><a href="/wiki/Amour_(2012_film)" title="Amour (2012 film)">Amour</a></i></li>
<li>Uncredited director</li>
</ul>
</td>
</tr>
<tr>
<th style="width:50%"><a href="/wiki/Academy_Award_for_Best_Sound_Editing" title="Academy Award for Best Sound Editing">Best Sound Editing</a></th>
<th style="width:50%"><a href="/wiki/Academy_Award_for_Best_Makeup" title="Academy Award for Best Makeup">Best Makeup</a></th>
</tr>
<tr>
<td valign="top">
<ul>
</ul>
</td>
<td valign="top">
<ul>
<li><b><i><a href="/wiki/Les_Mis%C3%A9rables_(2012_film)" title="Les Misérables (2012 film)">Les Misérables</a></i></b></li>
</ul>
</td>
</tr>
</table>
</body>
</html>`

func TestEngine_CategoryYear(t *testing.T) {
	t.Parallel()

	t.Run("skips the left list for a right-hand category", func(t *testing.T) {
		t.Parallel()

		people, err := newEngine().CategoryYear(ceremonyPage, "Best Director", awardscan.PersonFirst)

		require.NoError(t, err)
		assert.Equal(t, []awardscan.Person{
			{Name: "Ang Lee", Link: "/wiki/Ang_Lee", Movie: "Life of Pi", MovieLink: "/wiki/Life_of_Pi_(film)"},
			{Name: "Michael Haneke", Link: "/wiki/Michael_Haneke", Movie: "Amour", MovieLink: "/wiki/Amour_(2012_film)"},
			{Name: "Uncredited director"},
		}, people)
	})

	t.Run("reads the first list for a left-hand category", func(t *testing.T) {
		t.Parallel()

		people, err := newEngine().CategoryYear(ceremonyPage, "Best Picture", awardscan.FilmFirst)

		require.NoError(t, err)
		assert.Equal(t, []awardscan.Person{
			{Name: "Argo", Link: "/wiki/Argo_(2012_film)", Movie: "George Clooney", MovieLink: "/wiki/George_Clooney"},
			{Name: "Amour", Link: "/wiki/Amour_(2012_film)", Movie: "Margaret Ménégoz", MovieLink: "/wiki/Margaret_M%C3%A9n%C3%A9goz"},
		}, people)
	})

	t.Run("importance picks the first link of a segment", func(t *testing.T) {
		t.Parallel()

		people, err := newEngine().CategoryYear(ceremonyPage, "Best Picture", awardscan.PersonFirst)

		require.NoError(t, err)
		require.NotEmpty(t, people)
		assert.Equal(t, "Grant Heslov", people[0].Movie)
	})

	t.Run("entry without a dash has no film", func(t *testing.T) {
		t.Parallel()

		people, err := newEngine().CategoryYear(ceremonyPage, "Best Makeup", awardscan.FilmFirst)

		require.NoError(t, err)
		assert.Equal(t, []awardscan.Person{
			{Name: "Les Misérables", Link: "/wiki/Les_Mis%C3%A9rables_(2012_film)"},
		}, people)
	})

	t.Run("missing category is not found", func(t *testing.T) {
		t.Parallel()

		people, err := newEngine().CategoryYear(ceremonyPage, "Best Sound", awardscan.PersonFirst)

		require.Error(t, err)
		assert.Equal(t, awardscan.ENOTFOUND, awardscan.ErrorCode(err))
		assert.Nil(t, people)
	})

	t.Run("empty ballot is reported as empty", func(t *testing.T) {
		t.Parallel()

		_, err := newEngine().CategoryYear(ceremonyPage, "Best Sound Editing", awardscan.PersonFirst)

		assert.Equal(t, awardscan.EEMPTY, awardscan.ErrorCode(err))
	})

	t.Run("page without a wikitable is malformed", func(t *testing.T) {
		t.Parallel()

		_, err := newEngine().CategoryYear("<html><body><p>No tables</p></body></html>", "Best Director", awardscan.PersonFirst)

		assert.Equal(t, awardscan.EMALFORMED, awardscan.ErrorCode(err))
	})

	t.Run("unterminated list is malformed", func(t *testing.T) {
		t.Parallel()

		page := `<table class="wikitable">
<tr>
<th><a href="/wiki/Academy_Award_for_Best_Director" title="Academy Award for Best Director">Best Director</a></th>
</tr>
<tr>
<td>
<ul>
<li><a href="/wiki/Ang_Lee">Ang Lee</a></li>`

		_, err := newEngine().CategoryYear(page, "Best Director", awardscan.PersonFirst)

		assert.Equal(t, awardscan.EMALFORMED, awardscan.ErrorCode(err))
	})
}
