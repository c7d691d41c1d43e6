package main

import (
	"encoding/json"

	"github.com/pagesift/pagesift"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// scrapeOutcome is one URL's result in the batch output.
type scrapeOutcome struct {
	URL      string             `json:"url"`
	Success  bool               `json:"success"`
	Error    string             `json:"error,omitempty"`
	Rows     []pagesift.Record  `json:"rows,omitempty"`
	Meta     *pagesift.Meta     `json:"meta,omitempty"`
	Datasets []pagesift.Dataset `json:"datasets,omitempty"`
}

// Run scrapes each URL with a bounded worker pool under a shared page-open
// rate limit, printing results in input order. A single URL prints the bare
// response object; several print an array of per-URL outcomes.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	limiter := rate.NewLimiter(rate.Limit(c.RPS), 1)
	outcomes := make([]scrapeOutcome, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, url := range c.URLs {
		i, url := i, url
		g.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			outcomes[i] = c.scrapeOne(deps, url)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	if len(outcomes) == 1 {
		return enc.Encode(outcomes[0].response())
	}
	return enc.Encode(outcomes)
}

func (c *ScrapeCmd) scrapeOne(deps *Dependencies, url string) scrapeOutcome {
	scraper, closer, err := deps.NewScraper(url)
	if err != nil {
		return scrapeOutcome{URL: url, Error: err.Error()}
	}
	defer func() { _ = closer() }()

	result, err := scraper.Scrape(deps.Ctx)
	if err != nil {
		return scrapeOutcome{URL: url, Error: pagesift.ErrorMessage(err)}
	}
	return scrapeOutcome{
		URL:      url,
		Success:  true,
		Rows:     result.Rows,
		Meta:     &result.Meta,
		Datasets: result.Datasets,
	}
}

// response strips the URL envelope for single-page output, matching the
// boundary contract shape.
func (o scrapeOutcome) response() map[string]any {
	if !o.Success {
		return map[string]any{"success": false, "error": o.Error}
	}
	return map[string]any{
		"success":  true,
		"rows":     o.Rows,
		"meta":     o.Meta,
		"datasets": o.Datasets,
	}
}
