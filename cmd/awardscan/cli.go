package main

import (
	"context"
	"io"
	"time"

	"github.com/cjubb39/awardscan"
	"github.com/cjubb39/awardscan/query"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Awards    awardscan.AwardService
	Query     *query.Interpreter
	Fetcher   awardscan.Fetcher
	Resolver  awardscan.LinkResolver
	Pages     awardscan.PageCache
	PortalURL string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	PortalURL   string        `name:"portal-url" env:"AWARDSCAN_PORTAL_URL" default:"${portal_url}" help:"Academy Awards portal page"`
	RootURL     string        `name:"root-url" default:"${root_url}" help:"Site root that portal links resolve against"`
	Timeout     time.Duration `default:"10s" help:"Per-request timeout"`
	RPS         float64       `name:"rps" default:"1" help:"Requests per second per host"`
	Cache       string        `env:"AWARDSCAN_CACHE" help:"SQLite page cache path (empty disables caching)"`
	CacheDir    string        `name:"cache-dir" env:"AWARDSCAN_CACHE_DIR" help:"Directory caching one HTML file per page (used when --cache is empty)"`
	CacheMaxAge time.Duration `name:"cache-max-age" default:"168h" help:"Refetch cached pages older than this (0 keeps forever)"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent page fetch limit"`
	Verbose     bool          `short:"v" help:"Log fetches and lookups"`

	Records   RecordsCmd   `cmd:"" help:"Extract the attribute tables of a category page"`
	Winnom    WinnomCmd    `cmd:"" help:"Extract the year-winner-nominees tables of a category page"`
	Year      YearCmd      `cmd:"" help:"List the nominees of a category at one ceremony"`
	Links     LinksCmd     `cmd:"" help:"List portal links matching a term"`
	Search    SearchCmd    `cmd:"" help:"Search Best Picture nominees by column value"`
	Writers   WritersCmd   `cmd:"" help:"Show the writers of an Original Screenplay nominee"`
	Actors    ActorsCmd    `cmd:"" help:"List Best Actor nominees playing a role"`
	Ages      AgesCmd      `cmd:"" help:"Show nominee ages at a ceremony"`
	Foreign   ForeignCmd   `cmd:"" help:"Show the country with the most foreign-language film submissions"`
	Directors DirectorsCmd `cmd:"" help:"List directors with at least N Best Director nominations"`
	Starring  StarringCmd  `cmd:"" help:"List nominated films of a category starring an actor"`
	Quad      QuadCmd      `cmd:"" help:"List films nominated for Picture, Actor, Actress and Director"`
	Prune     PruneCmd     `cmd:"" help:"Delete cached pages older than a given age"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	Category string `arg:"" help:"Portal term of the category page, e.g. Best_Picture"`
	Shift    bool   `short:"s" help:"Data cells map to the header one column to the right"`
}

// WinnomCmd is the "winnom" subcommand.
type WinnomCmd struct {
	Category string `arg:"" help:"Portal term of the category page, e.g. Best_Director"`
}

// YearCmd is the "year" subcommand.
type YearCmd struct {
	Category string `arg:"" help:"Category header on the ceremony page, e.g. \"Best Director\""`
	Year     int    `arg:"" help:"Ceremony year"`
	Film     bool   `help:"Entries lead with the film rather than the person"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	Term string `arg:"" help:"Text the link target must contain"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Key   string `arg:"" help:"Column name, e.g. \"Production company(s)\""`
	Value string `arg:"" help:"Text the column must contain"`
}

// WritersCmd is the "writers" subcommand.
type WritersCmd struct {
	Title string `arg:"" help:"Film title"`
}

// ActorsCmd is the "actors" subcommand.
type ActorsCmd struct {
	Role string `arg:"" help:"Text the role must contain"`
}

// AgesCmd is the "ages" subcommand.
type AgesCmd struct {
	Category string `arg:"" help:"Category header on the ceremony page"`
	Year     int    `arg:"" help:"Ceremony year"`
}

// ForeignCmd is the "foreign" subcommand.
type ForeignCmd struct{}

// DirectorsCmd is the "directors" subcommand.
type DirectorsCmd struct {
	Min int `arg:"" help:"Minimum number of nominations"`
}

// StarringCmd is the "starring" subcommand.
type StarringCmd struct {
	Category string `arg:"" help:"Portal term of the category page, e.g. Best_Picture"`
	Actor    string `arg:"" help:"Actor name as listed on film pages"`
}

// QuadCmd is the "quad" subcommand.
type QuadCmd struct {
	From int `default:"1934" help:"First ceremony year"`
	To   int `default:"2012" help:"Last ceremony year"`
}

// PruneCmd is the "prune" subcommand.
type PruneCmd struct {
	OlderThan time.Duration `name:"older-than" default:"720h" help:"Delete pages fetched longer ago than this"`
}
