package query

import (
	"context"

	"github.com/cjubb39/awardscan"
	"golang.org/x/sync/errgroup"
)

// ageConcurrency bounds the biography pages fetched at once.
const ageConcurrency = 4

// NomineeAge is a nominee's age in the year of a ceremony.
type NomineeAge struct {
	Name  string `json:"name"`
	Movie string `json:"movie"`
	Age   int    `json:"age"`
}

// NomineeAges returns the age of each nominee of category in year. Ages
// are derived from the current age on each nominee's biography page.
// Nominees without a page link are skipped.
func (q *Interpreter) NomineeAges(ctx context.Context, category string, year int) ([]NomineeAge, error) {
	people, err := q.Awards.CategoryYear(ctx, category, year, awardscan.PersonFirst)
	if err != nil {
		return nil, err
	}

	var linked []awardscan.Person
	for _, p := range people {
		if p.Link != "" {
			linked = append(linked, p)
		}
	}

	delta := year - q.now().Year()
	ages := make([]NomineeAge, len(linked))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ageConcurrency)
	for i, p := range linked {
		g.Go(func() error {
			age, err := q.Awards.Age(ctx, p.Link)
			if err != nil {
				return err
			}
			ages[i] = NomineeAge{Name: p.Name, Movie: p.Movie, Age: age + delta}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ages, nil
}
