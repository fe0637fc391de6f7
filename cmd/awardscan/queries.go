package main

import (
	"fmt"
	"strings"

	"github.com/cjubb39/awardscan"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	records, err := deps.Query.BestPictureSearch(deps.Ctx, c.Key, c.Value)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}
	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "No Best Picture nominees have %s containing %q.\n", c.Key, c.Value)
		return nil
	}
	renderRecords(deps.Stdout, records)
	return nil
}

// Run executes the writers command.
func (c *WritersCmd) Run(deps *Dependencies) error {
	writers, err := deps.Query.ScreenplayWriters(deps.Ctx, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}
	renderList(deps.Stdout, writers)
	return nil
}

// Run executes the actors command.
func (c *ActorsCmd) Run(deps *Dependencies) error {
	actors, err := deps.Query.LeadingActorsPlaying(deps.Ctx, c.Role)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}
	if len(actors) == 0 {
		fmt.Fprintf(deps.Stdout, "No Best Actor nominees played %q.\n", c.Role)
		return nil
	}
	renderList(deps.Stdout, actors)
	return nil
}

// Run executes the ages command.
func (c *AgesCmd) Run(deps *Dependencies) error {
	ages, err := deps.Query.NomineeAges(deps.Ctx, c.Category, c.Year)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}

	t := newTable(deps.Stdout)
	t.AppendHeader(table.Row{"Name", "Movie", "Age"})
	for _, a := range ages {
		t.AppendRow(table.Row{a.Name, a.Movie, a.Age})
	}
	t.Render()
	return nil
}

// Run executes the foreign command.
func (c *ForeignCmd) Run(deps *Dependencies) error {
	top, err := deps.Query.MostForeignNominations(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s: %d submissions\n", top.Country, top.Count)
	renderList(deps.Stdout, top.Films)
	return nil
}

// Run executes the directors command.
func (c *DirectorsCmd) Run(deps *Dependencies) error {
	directors, err := deps.Query.DirectorsWithAtLeast(deps.Ctx, c.Min)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}

	t := newTable(deps.Stdout)
	t.AppendHeader(table.Row{"Director", "Nominations", "Films"})
	for _, d := range directors {
		t.AppendRow(table.Row{d.Director, len(d.Films), strings.Join(d.Films, ", ")})
	}
	t.Render()
	return nil
}

// Run executes the starring command.
func (c *StarringCmd) Run(deps *Dependencies) error {
	films, err := deps.Query.CategoryStarring(deps.Ctx, c.Category, c.Actor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}
	if len(films) == 0 {
		fmt.Fprintf(deps.Stdout, "No %s nominees starred %s.\n", c.Category, c.Actor)
		return nil
	}
	renderList(deps.Stdout, films)
	return nil
}

// Run executes the quad command.
func (c *QuadCmd) Run(deps *Dependencies) error {
	films, err := deps.Query.QuadThreat(deps.Ctx, c.From, c.To)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}

	t := newTable(deps.Stdout)
	t.AppendHeader(table.Row{"Year", "Film", "Wins"})
	for _, f := range films {
		t.AppendRow(table.Row{f.Year, f.Title, f.Wins})
	}
	t.Render()
	return nil
}
