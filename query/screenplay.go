package query

import (
	"context"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/cjubb39/awardscan"
)

// minTitleSimilarity is the Jaro-Winkler score a film title must reach to
// match when no title contains the query.
const minTitleSimilarity = 0.9

// ScreenplayWriters returns the writers of the Original Screenplay nominee
// whose title contains title. When no title contains it, the most similar
// title is used if it is close enough.
func (q *Interpreter) ScreenplayWriters(ctx context.Context, title string) ([]string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, awardscan.Errorf(awardscan.EINVALID, "title required")
	}

	records, err := q.Awards.AttributeTables(ctx, termScreenplay, true)
	if err != nil {
		return nil, err
	}

	match := -1
	var best float64
	for i, r := range records {
		film, ok := r.Get(colFilm)
		if !ok {
			continue
		}
		if strings.Contains(film, title) {
			match = i
			break
		}
		if sim := matchr.JaroWinkler(strings.ToLower(film), strings.ToLower(title), false); sim > best {
			best = sim
			if sim >= minTitleSimilarity {
				match = i
			}
		}
	}
	if match < 0 {
		return nil, awardscan.Errorf(awardscan.ENOTFOUND, "film %q not found", title)
	}

	writers, _ := records[match].Get(colWriters)
	if writers == "" {
		return nil, awardscan.Errorf(awardscan.EEMPTY, "no writers listed for %q", title)
	}
	return strings.Split(writers, ", "), nil
}
