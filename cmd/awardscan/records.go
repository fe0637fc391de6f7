package main

import (
	"fmt"
	"time"

	"github.com/cjubb39/awardscan"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	records, err := deps.Awards.AttributeTables(deps.Ctx, c.Category, c.Shift)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}
	renderRecords(deps.Stdout, records)
	return nil
}

// Run executes the winnom command.
func (c *WinnomCmd) Run(deps *Dependencies) error {
	records, err := deps.Awards.WinNominations(deps.Ctx, c.Category)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}
	renderRecords(deps.Stdout, records)
	return nil
}

// Run executes the year command.
func (c *YearCmd) Run(deps *Dependencies) error {
	importance := awardscan.PersonFirst
	if c.Film {
		importance = awardscan.FilmFirst
	}

	people, err := deps.Awards.CategoryYear(deps.Ctx, c.Category, c.Year, importance)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}
	renderPeople(deps.Stdout, people)
	return nil
}

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	page, err := deps.Fetcher.Fetch(deps.Ctx, deps.PortalURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}

	links, err := deps.Resolver.ResolveLinks(page, c.Term)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}

	if len(links) == 0 {
		fmt.Fprintf(deps.Stdout, "No portal links contain %q.\n", c.Term)
		return nil
	}
	renderList(deps.Stdout, links)
	return nil
}

// Run executes the prune command.
func (c *PruneCmd) Run(deps *Dependencies) error {
	if deps.Pages == nil {
		err := awardscan.Errorf(awardscan.EINVALID, "no page cache configured; set --cache or --cache-dir")
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}

	n, err := deps.Pages.DeletePagesBefore(deps.Ctx, time.Now().Add(-c.OlderThan))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", awardscan.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Deleted %d cached pages.\n", n)
	return nil
}
