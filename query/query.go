// Package query answers questions about the Academy Awards by combining
// the records of one or more award pages.
package query

import (
	"context"
	"strings"
	"time"

	"github.com/cjubb39/awardscan"
)

// Attribute names used by the category pages the queries read.
const (
	colFilm        = "Film"
	colWriters     = "Screenwriter(s)"
	colActor       = "Actor"
	colRole        = "Role"
	colRoles       = "Role(s)"
	colCountry     = "Submitting country"
	colForeignFilm = "Film title used in nomination"
)

// Category page terms searched on the portal.
const (
	termBestPicture    = "Best_Picture"
	termScreenplay     = "Original_Screenplay"
	termBestActor      = "Best_Actor"
	termBestDirector   = "Best_Director"
	termForeignFilm    = "Best_Foreign_Language_Film"
	termAnimatedFilm   = "Best_Animated_Feature"
	earliestCeremonyAt = 1928
)

// Interpreter runs queries against an AwardService.
type Interpreter struct {
	Awards awardscan.AwardService

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewInterpreter creates an Interpreter reading from awards.
func NewInterpreter(awards awardscan.AwardService) *Interpreter {
	return &Interpreter{Awards: awards, Now: time.Now}
}

func (q *Interpreter) now() time.Time {
	if q.Now == nil {
		return time.Now()
	}
	return q.Now()
}

// BestPictureLabel returns the name the Best Picture award was presented
// under at the ceremony of year.
func BestPictureLabel(year int) (string, error) {
	switch {
	case year >= 1962:
		return "Best Picture", nil
	case year >= 1944:
		return "Best Motion Picture", nil
	case year >= 1941:
		return "Outstanding Motion Picture", nil
	case year >= 1930:
		return "Outstanding Production", nil
	case year >= earliestCeremonyAt:
		return "Outstanding Picture", nil
	}
	return "", awardscan.Errorf(awardscan.EINVALID, "no Academy Awards ceremony before %d", earliestCeremonyAt)
}

// BestPictureSearch returns the Best Picture nominees whose key column
// contains value, e.g. key "Production company(s)".
func (q *Interpreter) BestPictureSearch(ctx context.Context, key, value string) ([]awardscan.Record, error) {
	if key == "" {
		return nil, awardscan.Errorf(awardscan.EINVALID, "search column required")
	}

	records, err := q.Awards.AttributeTables(ctx, termBestPicture, false)
	if err != nil {
		return nil, err
	}

	var matches []awardscan.Record
	for _, r := range records {
		if v, ok := r.Get(key); ok && strings.Contains(v, value) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// LeadingActorsPlaying returns the Best Actor nominees whose role contains
// role, in page order and without repeats.
func (q *Interpreter) LeadingActorsPlaying(ctx context.Context, role string) ([]string, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return nil, awardscan.Errorf(awardscan.EINVALID, "role required")
	}

	records, err := q.Awards.AttributeTables(ctx, termBestActor, true)
	if err != nil {
		return nil, err
	}

	var actors awardscan.CellValue
	for _, r := range records {
		actor, ok := r.Get(colActor)
		if !ok || actor == "" {
			continue
		}
		for _, col := range []string{colRole, colRoles} {
			if v, ok := r.Get(col); ok && strings.Contains(v, role) {
				actors.Add(actor)
			}
		}
	}
	return actors.Values(), nil
}
