package mock

import (
	"context"

	"github.com/pagesift/pagesift"
)

var _ pagesift.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of pagesift.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context) (*pagesift.ExtractionResult, error)
}

func (s *Scraper) Scrape(ctx context.Context) (*pagesift.ExtractionResult, error) {
	return s.ScrapeFn(ctx)
}
