package query

import (
	"context"
	"sort"

	"github.com/cjubb39/awardscan"
)

// quadCategories are the categories a Best Picture nominee must also be
// nominated in to be a quad threat.
var quadCategories = []string{"Best Actor", "Best Actress", "Best Director"}

// QuadThreatFilm is a film nominated for Best Picture, Best Actor, Best
// Actress and Best Director at one ceremony.
type QuadThreatFilm struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	Wins  int    `json:"wins"`
}

// QuadThreat returns the quad-threat films of the ceremonies from through
// to, ordered by year and title, with the number of awards each won.
func (q *Interpreter) QuadThreat(ctx context.Context, from, to int) ([]QuadThreatFilm, error) {
	if from > to {
		return nil, awardscan.Errorf(awardscan.EINVALID, "invalid year range %d-%d", from, to)
	}

	// Best Picture went by several names; group years by label.
	byLabel := make(map[string][]int)
	var years []int
	for y := from; y <= to; y++ {
		label, err := BestPictureLabel(y)
		if err != nil {
			return nil, err
		}
		byLabel[label] = append(byLabel[label], y)
		years = append(years, y)
	}

	pictures := make(map[int][]awardscan.Person, len(years))
	for label, ys := range byLabel {
		got, err := q.Awards.CategoryYears(ctx, label, ys, awardscan.FilmFirst)
		if err != nil {
			return nil, err
		}
		for y, people := range got {
			pictures[y] = people
		}
	}

	others := make([]map[int][]awardscan.Person, 0, len(quadCategories))
	for _, category := range quadCategories {
		got, err := q.Awards.CategoryYears(ctx, category, years, awardscan.FilmFirst)
		if err != nil {
			return nil, err
		}
		others = append(others, got)
	}

	var result []QuadThreatFilm
	for _, y := range years {
		for _, picture := range pictures[y] {
			if !nominatedInAll(picture.Name, y, others) {
				continue
			}
			wins, err := q.Awards.WinCount(ctx, picture.Name, y)
			if err != nil {
				return nil, err
			}
			result = append(result, QuadThreatFilm{Title: picture.Name, Year: y, Wins: wins})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Title < result[j].Title
	})
	return result, nil
}

// nominatedInAll reports whether title appears as a film in year of every
// category. Entries without a film are taken to name the film itself.
func nominatedInAll(title string, year int, categories []map[int][]awardscan.Person) bool {
	for _, byYear := range categories {
		found := false
		for _, p := range byYear[year] {
			film := p.Movie
			if film == "" {
				film = p.Name
			}
			if film == title {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
