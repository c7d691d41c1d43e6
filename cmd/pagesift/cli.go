package main

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dependencies holds services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	NewScraper ScraperFactory
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Extract structured data from one or more pages"`
	Serve  ServeCmd  `cmd:"" help:"Serve the extraction boundary for one page over HTTP"`

	Verbose      bool          `short:"v" help:"Enable debug logging"`
	Static       bool          `help:"Fetch pages over plain HTTP instead of a browser (no JavaScript, no auto-scroll)"`
	ScrollLimit  int           `default:"3" help:"Maximum auto-scroll attempts per page"`
	ScrollSettle time.Duration `default:"700ms" help:"Wait between a scroll and the growth check"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" name:"url" help:"Pages to scrape"`
	Concurrency int      `short:"c" default:"2" help:"Concurrent page limit"`
	RPS         float64  `default:"1" help:"Page-open rate limit per second"`
	Pretty      bool     `short:"p" help:"Indent the JSON output"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	URL  string `arg:"" help:"Page to bind the extraction boundary to"`
	Addr string `default:":8089" help:"Listen address"`
}
