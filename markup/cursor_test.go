package markup_test

import (
	"testing"

	"github.com/cjubb39/awardscan"
	"github.com/cjubb39/awardscan/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	t.Run("peeks without consuming", func(t *testing.T) {
		t.Parallel()

		c := markup.NewCursor("a\r\nb")

		line, ok := c.Peek()
		require.True(t, ok)
		assert.Equal(t, "a", line)

		line, ok = c.Next()
		require.True(t, ok)
		assert.Equal(t, "a", line)

		line, ok = c.Next()
		require.True(t, ok)
		assert.Equal(t, "b", line)

		assert.True(t, c.Done())
		_, ok = c.Next()
		assert.False(t, ok)
	})

	t.Run("skips to the awaited sentinel", func(t *testing.T) {
		t.Parallel()

		c := markup.NewCursor("<p>intro</p>\n<tr>\n<td>x</td>")

		line, class, err := c.SkipUntil(markup.ClassRowStart)

		require.NoError(t, err)
		assert.Equal(t, "<tr>", line)
		assert.Equal(t, markup.ClassRowStart, class)

		cl, ok := c.PeekClass()
		require.True(t, ok)
		assert.Equal(t, markup.ClassDataCell, cl)
	})

	t.Run("fails as malformed when input runs out", func(t *testing.T) {
		t.Parallel()

		c := markup.NewCursor("<p>intro</p>\n<tr>")

		_, _, err := c.SkipUntil(markup.ClassRowEnd, markup.ClassTableEnd)

		require.Error(t, err)
		assert.Equal(t, awardscan.EMALFORMED, awardscan.ErrorCode(err))
		assert.Contains(t, awardscan.ErrorMessage(err), "row-end or table-end")
		assert.True(t, c.Done())
	})

	t.Run("skips blank lines", func(t *testing.T) {
		t.Parallel()

		c := markup.NewCursor("\n   \n<ul>")
		c.SkipBlank()

		cl, ok := c.PeekClass()
		require.True(t, ok)
		assert.Equal(t, markup.ClassListStart, cl)
	})
}

func TestCursor_Cell(t *testing.T) {
	t.Parallel()

	t.Run("reads a cell closed on its line", func(t *testing.T) {
		t.Parallel()

		c := markup.NewCursor("")
		content, err := c.Cell(`<td style="x"><a href="/wiki/Wings">Wings</a></td>`)

		require.NoError(t, err)
		assert.Equal(t, `<a href="/wiki/Wings">Wings</a>`, content)
	})

	t.Run("continues to the closing tag", func(t *testing.T) {
		t.Parallel()

		c := markup.NewCursor("second line\n</td>\n</tr>")
		content, err := c.Cell(`<td>Bridge of Spies`)

		require.NoError(t, err)
		assert.Equal(t, "Bridge of Spies\nsecond line\n", content)

		cl, ok := c.PeekClass()
		require.True(t, ok)
		assert.Equal(t, markup.ClassRowEnd, cl)
	})

	t.Run("stops at the next cell", func(t *testing.T) {
		t.Parallel()

		c := markup.NewCursor("more\n<td>next</td>")
		content, err := c.Cell(`<td>first`)

		require.NoError(t, err)
		assert.Equal(t, "first\nmore", content)

		line, _ := c.Peek()
		assert.Equal(t, "<td>next</td>", line)
	})

	t.Run("leaves sibling cells on the same line for the next read", func(t *testing.T) {
		t.Parallel()

		c := markup.NewCursor("</tr>")
		content, err := c.Cell(`<td>A</td><td class="x">B</td>`)

		require.NoError(t, err)
		assert.Equal(t, "A", content)

		line, ok := c.Next()
		require.True(t, ok)
		assert.Equal(t, `<td class="x">B</td>`, line)

		content, err = c.Cell(line)
		require.NoError(t, err)
		assert.Equal(t, "B", content)

		cl, ok := c.PeekClass()
		require.True(t, ok)
		assert.Equal(t, markup.ClassRowEnd, cl)
	})

	t.Run("fails when the cell never closes", func(t *testing.T) {
		t.Parallel()

		c := markup.NewCursor("more")
		_, err := c.Cell(`<td>first`)

		assert.Equal(t, awardscan.EMALFORMED, awardscan.ErrorCode(err))
	})

	t.Run("rejects lines without a cell", func(t *testing.T) {
		t.Parallel()

		c := markup.NewCursor("")
		_, err := c.Cell(`<tr>`)

		assert.Equal(t, awardscan.EMALFORMED, awardscan.ErrorCode(err))
	})
}
