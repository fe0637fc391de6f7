package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cjubb39/awardscan"
	"github.com/cjubb39/awardscan/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "article path",
			url:  "https://en.wikipedia.org/wiki/Ang_Lee",
			want: "en.wikipedia.org/wiki/Ang_Lee.html",
		},
		{
			name: "portal path with colon",
			url:  "https://en.wikipedia.org/wiki/Portal:Academy_Award",
			want: "en.wikipedia.org/wiki/Portal:Academy_Award.html",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://example.com/wiki/",
			want: "example.com/wiki/index.html",
		},
		{
			name: "root without trailing slash",
			url:  "https://example.com",
			want: "example.com/index.html",
		},
		{
			name: "ignores query and fragment",
			url:  "https://example.com/wiki/Argo?oldid=1#Cast",
			want: "example.com/wiki/Argo.html",
		},
		{
			name: "dot segments stay under host",
			url:  "https://example.com/../../etc/passwd",
			want: "example.com/etc/passwd.html",
		},
		{
			name:    "relative URL",
			url:     "/wiki/Ang_Lee",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)
			if tt.wantErr {
				assert.Equal(t, awardscan.EINVALID, awardscan.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestPageCache_SaveAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	cache := fs.NewPageCache(dir)

	fetchedAt := time.Date(2024, 2, 3, 4, 5, 6, 700, time.UTC)
	page := &awardscan.Page{
		URL:       "https://en.wikipedia.org/wiki/Argo_(2012_film)",
		Content:   "<th>Starring</th>",
		FetchedAt: fetchedAt,
	}
	require.NoError(t, cache.SavePage(ctx, page))

	assert.Equal(t, "en.wikipedia.org/wiki/Argo_(2012_film).html", page.ID)
	assert.NotEmpty(t, page.ContentHash)

	raw, err := os.ReadFile(filepath.Join(dir, "en.wikipedia.org", "wiki", "Argo_(2012_film).html"))
	require.NoError(t, err)
	assert.Equal(t, "<th>Starring</th>", string(raw))

	got, err := cache.FindPage(ctx, page.URL)
	require.NoError(t, err)
	assert.Equal(t, page.Content, got.Content)
	assert.Equal(t, page.ContentHash, got.ContentHash)
	assert.Equal(t, fetchedAt.Truncate(time.Second), got.FetchedAt)

	entries, err := os.ReadDir(filepath.Join(dir, "en.wikipedia.org", "wiki"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should be gone")
}

func TestPageCache_FindPage_Missing(t *testing.T) {
	t.Parallel()

	cache := fs.NewPageCache(t.TempDir())
	_, err := cache.FindPage(context.Background(), "https://en.wikipedia.org/wiki/Nobody")

	assert.Equal(t, awardscan.ENOTFOUND, awardscan.ErrorCode(err))
}

func TestPageCache_SavePage_RequiresURL(t *testing.T) {
	t.Parallel()

	cache := fs.NewPageCache(t.TempDir())
	err := cache.SavePage(context.Background(), &awardscan.Page{Content: "x"})

	assert.Equal(t, awardscan.EINVALID, awardscan.ErrorCode(err))
}

func TestPageCache_DeletePagesBefore(t *testing.T) {
	t.Parallel()

	t.Run("removes old pages only", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		cache := fs.NewPageCache(t.TempDir())
		cutoff := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		for _, p := range []*awardscan.Page{
			{URL: "https://example.com/wiki/Old", Content: "a", FetchedAt: cutoff.Add(-time.Hour)},
			{URL: "https://example.com/wiki/Older", Content: "b", FetchedAt: cutoff.Add(-72 * time.Hour)},
			{URL: "https://example.com/wiki/New", Content: "c", FetchedAt: cutoff.Add(time.Hour)},
		} {
			require.NoError(t, cache.SavePage(ctx, p))
		}

		n, err := cache.DeletePagesBefore(ctx, cutoff)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		_, err = cache.FindPage(ctx, "https://example.com/wiki/Old")
		assert.Equal(t, awardscan.ENOTFOUND, awardscan.ErrorCode(err))
		_, err = cache.FindPage(ctx, "https://example.com/wiki/New")
		require.NoError(t, err)
	})

	t.Run("missing directory deletes nothing", func(t *testing.T) {
		t.Parallel()

		cache := fs.NewPageCache(filepath.Join(t.TempDir(), "absent"))
		n, err := cache.DeletePagesBefore(context.Background(), time.Now())

		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
