package goquery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// Ensure Engine implements pagesift.Scraper at compile time.
var _ pagesift.Scraper = (*Engine)(nil)

// Engine runs one extraction pass over a DocumentView: tables first, then an
// auto-scroll nudge for lazy content, then the card, grid, social and list
// strategies over a fresh snapshot, with structured-data and link scraping
// as fallbacks when nothing else matched. Strategy failures are absorbed;
// only whole-pass failures (no snapshot, unparseable markup) surface as
// errors.
//
// The engine holds no state between calls.
type Engine struct {
	view        pagesift.DocumentView
	scrollLimit int
	settle      time.Duration
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithScrollLimit sets the maximum number of scroll attempts.
func WithScrollLimit(n int) EngineOption {
	return func(e *Engine) { e.scrollLimit = n }
}

// WithScrollSettle sets the wait between a scroll and the height check.
func WithScrollSettle(d time.Duration) EngineOption {
	return func(e *Engine) { e.settle = d }
}

// NewEngine creates an Engine over the given document view.
func NewEngine(view pagesift.DocumentView, opts ...EngineOption) *Engine {
	e := &Engine{
		view:        view,
		scrollLimit: pagesift.DefaultScrollLimit,
		settle:      pagesift.DefaultScrollSettle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scrape runs the full extraction pass and returns every detected dataset.
func (e *Engine) Scrape(ctx context.Context) (*pagesift.ExtractionResult, error) {
	doc, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	a := newAssembly()
	claims := NewClaimSet()

	// Tables reflect the document as loaded, before any scrolling. Each
	// extracted table claims its container so the list strategy never
	// re-reports the rows through the tbody.
	runStrategy(func() {
		doc.Find("table").Each(func(_ int, table *goquery.Selection) {
			if !isVisible(table) {
				return
			}
			if rows := ExtractTable(table); len(rows) > 0 {
				a.add(pagesift.DatasetTable, headingNear(table), rows)
				claims.Claim(table.Nodes[0])
			}
		})
	})

	scrolled := e.autoScroll(ctx)
	if scrolled {
		// Lazy content may have landed; later strategies see it.
		if fresh, err := e.snapshot(ctx); err == nil {
			doc = fresh
		}
	}

	runStrategy(func() {
		for _, layout := range DetectCards(doc) {
			if rows := ExtractCards(layout); len(rows) > 0 {
				a.add(pagesift.DatasetCards, headingNear(layout.Container), rows)
				claims.Claim(layout.Container.Nodes[0])
			}
		}
	})

	runStrategy(func() {
		for _, cand := range DetectGrids(doc) {
			if rows := ExtractItems(cand.Selection); len(rows) > 0 {
				a.add(pagesift.DatasetGrid, headingNear(cand.Selection), rows)
				claims.Claim(cand.Selection.Nodes[0])
			}
		}
	})

	runStrategy(func() {
		if items := DetectSocial(doc); len(items) > 0 {
			if rows := ExtractSocial(items); len(rows) >= minSocialItems {
				a.addNamed("social", pagesift.DatasetSocial, "Social Media Posts", rows)
			}
		}
	})

	// The generic list strategy is skipped entirely once any card or grid
	// dataset exists; it would re-report the same regions under a new type.
	if !a.has(pagesift.DatasetCards) && !a.has(pagesift.DatasetGrid) {
		runStrategy(func() {
			for _, cand := range SelectCandidates(doc) {
				if claims.ClaimedWithin(cand.Selection.Nodes[0]) {
					continue
				}
				if rows := ExtractItems(cand.Selection); len(rows) > 0 {
					a.add(pagesift.DatasetList, headingNear(cand.Selection), rows)
					claims.Claim(cand.Selection.Nodes[0])
				}
			}
		})
	}

	if len(a.datasets) == 0 {
		runStrategy(func() {
			if rows := ExtractStructuredData(doc); len(rows) > 0 {
				a.addNamed("structured", pagesift.DatasetStructured, "Structured Data", rows)
				return
			}
			if rows := ExtractLinks(doc); len(rows) > 0 {
				a.addNamed("links", pagesift.DatasetLinks, "Links", rows)
			}
		})
	}

	for i := range a.datasets {
		a.datasets[i].Cap(pagesift.MaxDatasetRows)
	}

	return &pagesift.ExtractionResult{
		Rows:     a.best,
		Meta:     pagesift.Meta{AutoScrolled: scrolled},
		Datasets: a.datasets,
	}, nil
}

// snapshot serializes and parses the current document.
func (e *Engine) snapshot(ctx context.Context) (*goquery.Document, error) {
	markup, err := e.view.HTML(ctx)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EUNAVAILABLE, "document snapshot: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "parse document: %v", err)
	}
	return doc, nil
}

// autoScroll incrementally scrolls to provoke lazy-loaded content, up to the
// configured limit, stopping early on the first attempt with no growth.
// Reports whether any growth was observed. Scroll errors end the loop; they
// never fail the pass.
//
// The settle wait is deliberately not tied to ctx: abandoning mid-scroll
// would leave the page scroll position inconsistent.
func (e *Engine) autoScroll(ctx context.Context) bool {
	scrolled := false
	for i := 0; i < e.scrollLimit; i++ {
		before, err := e.view.ScrollHeight(ctx)
		if err != nil {
			break
		}
		if err := e.view.ScrollToBottom(ctx); err != nil {
			break
		}
		time.Sleep(e.settle)
		after, err := e.view.ScrollHeight(ctx)
		if err != nil {
			break
		}
		if after <= before {
			break
		}
		scrolled = true
	}
	return scrolled
}

// runStrategy runs one strategy, absorbing panics from unexpected markup.
// A failed strategy simply produced nothing.
func runStrategy(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

// assembly accumulates datasets and the greedy best-rows pointer across
// strategies within one pass.
type assembly struct {
	datasets []pagesift.Dataset
	best     []pagesift.Record
	ordinals map[pagesift.DatasetType]int
}

func newAssembly() *assembly {
	return &assembly{
		datasets: []pagesift.Dataset{},
		best:     []pagesift.Record{},
		ordinals: make(map[pagesift.DatasetType]int),
	}
}

// add appends a dataset with a generated "{type}_{n}" ID, using name when
// non-empty and the ID otherwise.
func (a *assembly) add(typ pagesift.DatasetType, name string, rows []pagesift.Record) {
	a.ordinals[typ]++
	id := fmt.Sprintf("%s_%d", typ, a.ordinals[typ])
	if name == "" {
		name = id
	}
	a.addNamed(id, typ, name, rows)
}

// addNamed appends a dataset with a fixed ID and name. The best-rows pointer
// advances only on a strictly larger dataset, so on ties the earlier-run
// strategy wins.
func (a *assembly) addNamed(id string, typ pagesift.DatasetType, name string, rows []pagesift.Record) {
	a.datasets = append(a.datasets, pagesift.Dataset{
		ID:   id,
		Type: typ,
		Name: name,
		Rows: rows,
	})
	if len(rows) > len(a.best) {
		a.best = rows
	}
}

func (a *assembly) has(typ pagesift.DatasetType) bool {
	for _, d := range a.datasets {
		if d.Type == typ {
			return true
		}
	}
	return false
}
