package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cjubb39/awardscan"
	"github.com/cjubb39/awardscan/cache"
	"github.com/cjubb39/awardscan/fs"
	"github.com/cjubb39/awardscan/goquery"
	awardhttp "github.com/cjubb39/awardscan/http"
	"github.com/cjubb39/awardscan/markup"
	"github.com/cjubb39/awardscan/portal"
	"github.com/cjubb39/awardscan/query"
	awardslog "github.com/cjubb39/awardscan/slog"
	"github.com/cjubb39/awardscan/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher replaces the HTTP fetcher when set. Used by end-to-end tests.
	Fetcher awardscan.Fetcher

	// SQLite database backing the page cache, if enabled.
	DB *sqlite.DB

	fetcher awardscan.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.fetcher != nil {
		err = m.fetcher.Close()
	}
	if m.DB != nil {
		if dbErr := m.DB.Close(); err == nil {
			err = dbErr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("awardscan"),
		kong.Description("Extract Academy Awards records from Wikipedia."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"portal_url": portal.DefaultPortalURL,
			"root_url":   portal.DefaultRootURL,
		},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'awardscan --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := m.wire(cli, deps); err != nil {
		return err
	}
	defer m.Close()

	return kongCtx.Run(deps)
}

// wire builds the fetch, cache and extraction stack from the global flags.
func (m *Main) wire(cli *CLI, deps *Dependencies) error {
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = awardhttp.NewFetcher(
			awardhttp.WithTimeout(cli.Timeout),
			awardhttp.WithRateLimit(cli.RPS),
			awardhttp.WithLogger(logger),
		)
	}

	switch {
	case cli.Cache != "":
		m.DB = sqlite.NewDB(cli.Cache)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(deps.Stderr, "Hint: Set AWARDSCAN_CACHE to use a different cache path\n")
			return err
		}
		deps.Pages = sqlite.NewPageCache(m.DB)
	case cli.CacheDir != "":
		deps.Pages = fs.NewPageCache(cli.CacheDir)
	}
	if deps.Pages != nil {
		fetcher = cache.NewFetcher(fetcher, deps.Pages, cli.CacheMaxAge)
	}
	fetcher = awardslog.NewLoggingFetcher(fetcher, logger)
	m.fetcher = fetcher

	links, err := goquery.NewLinkResolver(cli.RootURL)
	if err != nil {
		return err
	}
	resolver := awardslog.NewLoggingResolver(links, logger)

	svc := portal.NewService(fetcher, resolver, markup.NewEngine(goquery.NewCellSplitter()))
	svc.PortalURL = cli.PortalURL
	svc.RootURL = cli.RootURL
	svc.Concurrency = cli.Concurrency

	awards := awardslog.NewLoggingAwardService(svc, logger)
	deps.Awards = awards
	deps.Query = query.NewInterpreter(awards)
	deps.Fetcher = fetcher
	deps.Resolver = resolver
	deps.PortalURL = cli.PortalURL
	return nil
}
