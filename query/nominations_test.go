package query_test

import (
	"context"
	"testing"
	"time"

	"github.com/cjubb39/awardscan"
	"github.com/cjubb39/awardscan/mock"
	"github.com/cjubb39/awardscan/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpreter_MostForeignNominations(t *testing.T) {
	t.Parallel()

	t.Run("counts submissions per country", func(t *testing.T) {
		t.Parallel()

		q := query.NewInterpreter(&mock.AwardService{
			ListTableFn: func(_ context.Context, term string) ([]awardscan.Record, error) {
				assert.Equal(t, "Best_Foreign_Language_Film", term)
				return []awardscan.Record{
					{"Submitting country": "Italy", "Film title used in nomination": "La Strada"},
					{"Submitting country": "France ", "Film title used in nomination": "Mon Oncle"},
					{"Submitting country": "France", "Film title used in nomination": "Amour"},
					{"Submitting country": "Italy", "Film title used in nomination": "Nights of Cabiria"},
					{"Submitting country": "France", "Film title used in nomination": "Indochine"},
					{"Film title used in nomination": "Unknown"},
				}, nil
			},
		})

		got, err := q.MostForeignNominations(context.Background())
		require.NoError(t, err)
		assert.Equal(t, &query.CountryNominations{
			Country: "France",
			Count:   3,
			Films:   []string{"Mon Oncle", "Amour", "Indochine"},
		}, got)
	})

	t.Run("breaks ties by first listed", func(t *testing.T) {
		t.Parallel()

		q := query.NewInterpreter(&mock.AwardService{
			ListTableFn: func(_ context.Context, _ string) ([]awardscan.Record, error) {
				return []awardscan.Record{
					{"Submitting country": "Japan", "Film title used in nomination": "Departures"},
					{"Submitting country": "Spain", "Film title used in nomination": "Volver"},
				}, nil
			},
		})

		got, err := q.MostForeignNominations(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Japan", got.Country)
	})

	t.Run("returns EEMPTY without countries", func(t *testing.T) {
		t.Parallel()

		q := query.NewInterpreter(&mock.AwardService{
			ListTableFn: func(_ context.Context, _ string) ([]awardscan.Record, error) {
				return []awardscan.Record{{"Year": "1956"}}, nil
			},
		})

		_, err := q.MostForeignNominations(context.Background())
		assert.Equal(t, awardscan.EEMPTY, awardscan.ErrorCode(err))
	})
}

func directorRecords() []awardscan.Record {
	return []awardscan.Record{
		{"person": "Ang Lee", "movie": "Brokeback Mountain", "winner": "1"},
		{"person": "Steven Spielberg", "movie": "Munich", "winner": "0"},
		{"person": "Steven Spielberg", "movie": "Lincoln", "winner": "0"},
		{"person": "Ang Lee", "movie": "Life of Pi", "winner": "1"},
		{"person": "Michael Haneke", "movie": "Amour", "winner": "0"},
		{"person": "Steven Spielberg", "movie": "Saving Private Ryan", "winner": "1"},
	}
}

func TestInterpreter_DirectorsWithAtLeast(t *testing.T) {
	t.Parallel()

	q := query.NewInterpreter(&mock.AwardService{
		WinNominationsFn: func(_ context.Context, category string) ([]awardscan.Record, error) {
			assert.Equal(t, "Best_Director", category)
			return directorRecords(), nil
		},
	})

	t.Run("returns directors over threshold", func(t *testing.T) {
		t.Parallel()

		got, err := q.DirectorsWithAtLeast(context.Background(), 2)
		require.NoError(t, err)
		assert.Equal(t, []query.DirectorNominations{
			{Director: "Ang Lee", Films: []string{"Brokeback Mountain", "Life of Pi"}},
			{Director: "Steven Spielberg", Films: []string{"Munich", "Lincoln", "Saving Private Ryan"}},
		}, got)
	})

	t.Run("returns nothing above every count", func(t *testing.T) {
		t.Parallel()

		got, err := q.DirectorsWithAtLeast(context.Background(), 4)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rejects non-positive threshold", func(t *testing.T) {
		t.Parallel()

		_, err := q.DirectorsWithAtLeast(context.Background(), 0)
		assert.Equal(t, awardscan.EINVALID, awardscan.ErrorCode(err))
	})
}

func TestInterpreter_CategoryStarring(t *testing.T) {
	t.Parallel()

	casts := map[string][]string{
		"/wiki/Argo_(2012_film)": {"Ben Affleck", "Bryan Cranston", "Alan Arkin"},
		"/wiki/Lincoln_(film)":   {"Daniel Day-Lewis", "Sally Field"},
		"/wiki/Amour_(film)":     {"Jean-Louis Trintignant"},
	}
	starring := func(_ context.Context, link string) ([]string, error) {
		cast, ok := casts[link]
		if !ok {
			return nil, awardscan.Errorf(awardscan.EMALFORMED, "no starring cell")
		}
		return cast, nil
	}

	t.Run("reads the film after the dash", func(t *testing.T) {
		t.Parallel()

		q := query.NewInterpreter(&mock.AwardService{
			WinNominationsFn: func(_ context.Context, _ string) ([]awardscan.Record, error) {
				return []awardscan.Record{
					{"person": "Alan Arkin", "movie": "Argo", "movieLink": "/wiki/Argo_(2012_film)"},
					{"person": "Tommy Lee Jones", "movie": "Lincoln", "movieLink": "/wiki/Lincoln_(film)"},
					{"person": "Someone", "movie": "Lost Film", "movieLink": "/wiki/Lost_Film"},
					{"person": "Nobody"},
				}, nil
			},
			StarringFn: starring,
		})

		got, err := q.CategoryStarring(context.Background(), "Best_Supporting_Actor", "Sally Field")
		require.NoError(t, err)
		assert.Equal(t, []string{"Lincoln"}, got)
	})

	t.Run("reads the film before the dash for best picture", func(t *testing.T) {
		t.Parallel()

		q := query.NewInterpreter(&mock.AwardService{
			WinNominationsFn: func(_ context.Context, _ string) ([]awardscan.Record, error) {
				return []awardscan.Record{
					{"person": "Argo", "personLink": "/wiki/Argo_(2012_film)", "movie": "Grant Heslov"},
					{"person": "Amour", "personLink": "/wiki/Amour_(film)", "movie": "Margaret Ménégoz"},
				}, nil
			},
			StarringFn: starring,
		})

		got, err := q.CategoryStarring(context.Background(), "Best_Picture", "Ben Affleck")
		require.NoError(t, err)
		assert.Equal(t, []string{"Argo"}, got)
	})

	t.Run("fails when a film page is unavailable", func(t *testing.T) {
		t.Parallel()

		q := query.NewInterpreter(&mock.AwardService{
			WinNominationsFn: func(_ context.Context, _ string) ([]awardscan.Record, error) {
				return []awardscan.Record{{"movie": "Argo", "movieLink": "/wiki/Argo"}}, nil
			},
			StarringFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, awardscan.Errorf(awardscan.EUNAVAILABLE, "fetch failed")
			},
		})

		_, err := q.CategoryStarring(context.Background(), "Best_Actor", "Ben Affleck")
		assert.Equal(t, awardscan.EUNAVAILABLE, awardscan.ErrorCode(err))
	})
}

func TestInterpreter_NomineeAges(t *testing.T) {
	t.Parallel()

	ages := map[string]int{"/wiki/Ang_Lee": 71, "/wiki/Michael_Haneke": 83}
	q := query.NewInterpreter(&mock.AwardService{
		CategoryYearFn: func(_ context.Context, category string, year int, importance awardscan.Importance) ([]awardscan.Person, error) {
			assert.Equal(t, "Best Director", category)
			assert.Equal(t, 2013, year)
			assert.Equal(t, awardscan.PersonFirst, importance)
			return []awardscan.Person{
				{Name: "Ang Lee", Link: "/wiki/Ang_Lee", Movie: "Life of Pi"},
				{Name: "Uncredited director"},
				{Name: "Michael Haneke", Link: "/wiki/Michael_Haneke", Movie: "Amour"},
			}, nil
		},
		AgeFn: func(_ context.Context, link string) (int, error) {
			return ages[link], nil
		},
	})
	q.Now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	got, err := q.NomineeAges(context.Background(), "Best Director", 2013)
	require.NoError(t, err)
	assert.Equal(t, []query.NomineeAge{
		{Name: "Ang Lee", Movie: "Life of Pi", Age: 59},
		{Name: "Michael Haneke", Movie: "Amour", Age: 71},
	}, got)
}
