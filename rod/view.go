// Package rod provides a DocumentView backed by a live Chrome page via
// browser automation, plus browser lifecycle management for batch scraping.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pagesift/pagesift"
)

// Ensure View implements pagesift.DocumentView at compile time.
var _ pagesift.DocumentView = (*View)(nil)

// View exposes a rendered page to the extraction engine. The page is never
// mutated through the view except for its scroll position.
type View struct {
	page *rod.Page
}

// NewView opens a page on the given browser, navigates to url and waits for
// the load event. Close must be called when the view is no longer needed.
func NewView(browser *rod.Browser, url string) (*View, error) {
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	if err := page.Navigate(url); err != nil {
		page.Close()
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		page.Close()
		return nil, fmt.Errorf("waiting for load of %s: %w", url, err)
	}
	return &View{page: page}, nil
}

// HTML returns the current serialized markup of the document.
func (v *View) HTML(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return v.page.Context(ctx).HTML()
}

// ScrollHeight returns the current document height in pixels.
func (v *View) ScrollHeight(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	res, err := v.page.Context(ctx).Eval(`() => document.body ? document.body.scrollHeight : 0`)
	if err != nil {
		return 0, err
	}
	return res.Value.Num(), nil
}

// ScrollToBottom scrolls the viewport to the bottom of the document.
func (v *View) ScrollToBottom(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := v.page.Context(ctx).Eval(`() => window.scrollTo({top: document.body.scrollHeight, behavior: "smooth"})`)
	return err
}

// Close releases the underlying page.
func (v *View) Close() error {
	return v.page.Close()
}
