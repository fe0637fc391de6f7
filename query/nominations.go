package query

import (
	"context"
	"strings"

	"github.com/cjubb39/awardscan"
)

// CountryNominations is the country with the most foreign-language film
// submissions and the films it submitted.
type CountryNominations struct {
	Country string   `json:"country"`
	Count   int      `json:"count"`
	Films   []string `json:"films"`
}

// MostForeignNominations returns the country with the most entries on the
// foreign-language film submissions list. Ties go to the country listed
// first.
func (q *Interpreter) MostForeignNominations(ctx context.Context) (*CountryNominations, error) {
	records, err := q.Awards.ListTable(ctx, termForeignFilm)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		country := strings.TrimSpace(r[colCountry])
		if country == "" {
			continue
		}
		if counts[country] == 0 {
			order = append(order, country)
		}
		counts[country]++
	}
	if len(order) == 0 {
		return nil, awardscan.Errorf(awardscan.EEMPTY, "no submitting countries listed")
	}

	top := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[top] {
			top = c
		}
	}

	result := &CountryNominations{Country: top, Count: counts[top]}
	for _, r := range records {
		if strings.TrimSpace(r[colCountry]) == top {
			result.Films = append(result.Films, r[colForeignFilm])
		}
	}
	return result, nil
}

// DirectorNominations is a director and the films they were nominated for.
type DirectorNominations struct {
	Director string   `json:"director"`
	Films    []string `json:"films"`
}

// DirectorsWithAtLeast returns the Best Director nominees with at least n
// nominations, in order of first nomination.
func (q *Interpreter) DirectorsWithAtLeast(ctx context.Context, n int) ([]DirectorNominations, error) {
	if n < 1 {
		return nil, awardscan.Errorf(awardscan.EINVALID, "nomination threshold must be positive")
	}

	records, err := q.Awards.WinNominations(ctx, termBestDirector)
	if err != nil {
		return nil, err
	}

	films := make(map[string][]string)
	var order []string
	for _, r := range records {
		director := strings.TrimSpace(r[awardscan.AttrPerson])
		if director == "" {
			continue
		}
		if _, ok := films[director]; !ok {
			order = append(order, director)
		}
		films[director] = append(films[director], r[awardscan.AttrMovie])
	}

	var result []DirectorNominations
	for _, d := range order {
		if len(films[d]) >= n {
			result = append(result, DirectorNominations{Director: d, Films: films[d]})
		}
	}
	return result, nil
}

// CategoryStarring returns the nominated films of category whose cast
// includes actor. Best Picture and Best Animated Feature pages list the
// film before the dash, so their first segment is read as the film.
func (q *Interpreter) CategoryStarring(ctx context.Context, category, actor string) ([]string, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return nil, awardscan.Errorf(awardscan.EINVALID, "actor required")
	}

	records, err := q.Awards.WinNominations(ctx, category)
	if err != nil {
		return nil, err
	}

	titleKey, linkKey := awardscan.AttrMovie, awardscan.AttrMovieLink
	if strings.Contains(category, termBestPicture) || strings.Contains(category, termAnimatedFilm) {
		titleKey, linkKey = awardscan.AttrPerson, awardscan.AttrPersonLink
	}

	var films awardscan.CellValue
	for _, r := range records {
		link := r[linkKey]
		if link == "" {
			continue
		}

		cast, err := q.Awards.Starring(ctx, link)
		switch awardscan.ErrorCode(err) {
		case "":
		case awardscan.EEMPTY, awardscan.EMALFORMED:
			// film page without a starring cell
			continue
		default:
			return nil, err
		}

		for _, name := range cast {
			if name == actor {
				films.Add(r[titleKey])
				break
			}
		}
	}
	return films.Values(), nil
}
