// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagesift/pagesift"
)

// Ensure LoggingScraper implements pagesift.Scraper.
var _ pagesift.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with summary logging per extraction pass.
type LoggingScraper struct {
	next   pagesift.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next pagesift.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape logs the outcome of the pass and delegates to the wrapped scraper.
func (s *LoggingScraper) Scrape(ctx context.Context) (result *pagesift.ExtractionResult, err error) {
	defer func(begin time.Time) {
		datasets, rows := 0, 0
		autoScrolled := false
		if result != nil {
			datasets = len(result.Datasets)
			rows = len(result.Rows)
			autoScrolled = result.Meta.AutoScrolled
		}
		s.logger.Info("scrape",
			"datasets", datasets,
			"best_rows", rows,
			"auto_scrolled", autoScrolled,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx)
}
