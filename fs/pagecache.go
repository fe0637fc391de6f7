// Package fs provides a file-based page cache that keeps each fetched page
// as an HTML file, so cached markup can be inspected or replayed offline.
package fs

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/cjubb39/awardscan"
)

// Ensure PageCache implements awardscan.PageCache at compile time.
var _ awardscan.PageCache = (*PageCache)(nil)

// PageCache implements awardscan.PageCache with one file per page under a
// base directory. A file's modification time is its page's fetch time.
type PageCache struct {
	baseDir string
}

// NewPageCache creates a PageCache rooted at baseDir.
func NewPageCache(baseDir string) *PageCache {
	return &PageCache{baseDir: baseDir}
}

// URLToPath converts a page URL to a relative file path.
// Example: https://en.wikipedia.org/wiki/Ang_Lee → en.wikipedia.org/wiki/Ang_Lee.html
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", awardscan.WrapErrorf(awardscan.EINVALID, err, "invalid page URL %q", rawURL)
	}
	if u.Host == "" {
		return "", awardscan.Errorf(awardscan.EINVALID, "page URL %q has no host", rawURL)
	}

	p := u.Path
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index"
	}

	// Clean against a rooted path so ".." cannot leave the host directory.
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	return filepath.Join(u.Host, filepath.FromSlash(p)) + ".html", nil
}

// FindPage reads the cached file for url.
func (c *PageCache) FindPage(ctx context.Context, url string) (*awardscan.Page, error) {
	rel, err := URLToPath(url)
	if err != nil {
		return nil, err
	}

	full := filepath.Join(c.baseDir, rel)
	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, awardscan.Errorf(awardscan.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}

	return &awardscan.Page{
		ID:          filepath.ToSlash(rel),
		URL:         url,
		Content:     string(content),
		ContentHash: hashContent(string(content)),
		FetchedAt:   info.ModTime().UTC().Truncate(time.Second),
	}, nil
}

// SavePage writes the page to a temporary file and renames it into place,
// so readers never see a partial page.
func (c *PageCache) SavePage(ctx context.Context, page *awardscan.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	rel, err := URLToPath(page.URL)
	if err != nil {
		return err
	}
	full := filepath.Join(c.baseDir, rel)

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), filepath.Base(full)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(page.Content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return err
	}

	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now()
	}
	page.FetchedAt = page.FetchedAt.UTC().Truncate(time.Second)
	if err := os.Chtimes(full, page.FetchedAt, page.FetchedAt); err != nil {
		return err
	}

	page.ID = filepath.ToSlash(rel)
	page.ContentHash = hashContent(page.Content)
	return nil
}

// DeletePagesBefore removes cached files last written before t.
func (c *PageCache) DeletePagesBefore(ctx context.Context, t time.Time) (int, error) {
	var n int
	err := filepath.WalkDir(c.baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == c.baseDir {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".html") {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().Before(t) {
			if err := os.Remove(p); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	return n, err
}

func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}
