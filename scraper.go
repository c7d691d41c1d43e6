package pagesift

import (
	"context"
	"time"
)

// Scraper runs one extraction pass over a document and returns every
// detected dataset. Implementations hold no state between calls; each pass
// produces fresh entities that are discarded once the result is returned.
//
// Per-strategy failures are absorbed internally; a returned error signals
// whole-pass failure and is the only failure mode visible to callers.
type Scraper interface {
	Scrape(ctx context.Context) (*ExtractionResult, error)
}

// DocumentView is the minimal capability surface the engine needs from a
// live document: markup snapshots plus scroll control for triggering
// lazy-loaded content. Implementations may be backed by a real browser or by
// a static document for tests. The document is never mutated through this
// interface except for its scroll position.
type DocumentView interface {
	// HTML returns the current serialized markup of the document.
	HTML(ctx context.Context) (string, error)

	// ScrollHeight returns the current document height in pixels.
	ScrollHeight(ctx context.Context) (float64, error)

	// ScrollToBottom scrolls the viewport to the bottom of the document.
	ScrollToBottom(ctx context.Context) error
}

// Auto-scroll defaults. The trigger is a best-effort nudge for lazy-loaded
// content with a hard iteration cap to bound added latency.
const (
	DefaultScrollLimit  = 3
	DefaultScrollSettle = 700 * time.Millisecond
)
