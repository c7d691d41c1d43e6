package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/pagesift/pagesift"
	pqgoquery "github.com/pagesift/pagesift/goquery"
	pagesifthttp "github.com/pagesift/pagesift/http"
	pagerod "github.com/pagesift/pagesift/rod"
	pagesiftslog "github.com/pagesift/pagesift/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// ScraperFactory builds a Scraper bound to one document. The returned
// closer releases the underlying page.
type ScraperFactory func(url string) (pagesift.Scraper, func() error, error)

// Main represents the program.
type Main struct {
	// Browser manager, created lazily on the first browser-backed scrape.
	manager *pagerod.Manager

	// NewScraper overrides scraper construction. Used by tests to avoid
	// launching a browser.
	NewScraper ScraperFactory
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.manager != nil {
		return m.manager.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesift"),
		kong.Description("Discover and extract repeating structured data from web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesift --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Logger:     logger,
		NewScraper: m.NewScraper,
	}
	if deps.NewScraper == nil {
		if cli.Static {
			deps.NewScraper = staticScraperFactory(cli, logger)
		} else {
			deps.NewScraper = m.browserScraperFactory(cli, logger)
		}
	}

	return kongCtx.Run(deps)
}

// browserScraperFactory wires the production stack: a managed Chrome page
// behind logging decorators, feeding the goquery engine.
func (m *Main) browserScraperFactory(cli *CLI, logger *slog.Logger) ScraperFactory {
	return func(url string) (pagesift.Scraper, func() error, error) {
		if m.manager == nil {
			manager, err := pagerod.NewManager()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to start browser (is Chrome or Chromium installed?): %w", err)
			}
			m.manager = manager
		}

		view, err := m.manager.Open(url)
		if err != nil {
			return nil, nil, err
		}

		engine := pqgoquery.NewEngine(
			pagesiftslog.NewLoggingView(view, logger),
			pqgoquery.WithScrollLimit(cli.ScrollLimit),
			pqgoquery.WithScrollSettle(cli.ScrollSettle),
		)
		return pagesiftslog.NewLoggingScraper(engine, logger), view.Close, nil
	}
}

// staticScraperFactory wires a plain HTTP fetch behind the same decorators.
// Static views never grow, so the scroll knobs are irrelevant here.
func staticScraperFactory(cli *CLI, logger *slog.Logger) ScraperFactory {
	return func(url string) (pagesift.Scraper, func() error, error) {
		view := pagesifthttp.NewView(url)
		engine := pqgoquery.NewEngine(
			pagesiftslog.NewLoggingView(view, logger),
			pqgoquery.WithScrollLimit(0),
		)
		return pagesiftslog.NewLoggingScraper(engine, logger), view.Close, nil
	}
}
