package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pagesift/pagesift"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure View implements pagesift.DocumentView at compile time.
var _ pagesift.DocumentView = (*View)(nil)

// View is a DocumentView over plain HTTP fetches. Unlike rod.View it does
// not execute JavaScript, so it suits static pages only: scrolling is a
// no-op and never observes growth.
type View struct {
	client *http.Client
	url    string
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) ViewOption {
	return func(v *View) {
		v.client.Timeout = d
	}
}

// NewView creates a View over the given URL.
func NewView(url string, opts ...ViewOption) *View {
	v := &View{
		client: &http.Client{Timeout: DefaultFetchTimeout},
		url:    url,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// HTML fetches the document markup.
func (v *View) HTML(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.url, nil)
	if err != nil {
		return "", pagesift.Errorf(pagesift.EINVALID, "build request for %s: %v", v.url, err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "fetch %s: %v", v.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "fetch %s: HTTP %d", v.url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "read %s: %v", v.url, err)
	}
	return string(body), nil
}

// ScrollHeight reports a constant height; without a script engine the
// document can never grow.
func (v *View) ScrollHeight(ctx context.Context) (float64, error) {
	return 0, nil
}

// ScrollToBottom is a no-op for static documents.
func (v *View) ScrollToBottom(ctx context.Context) error {
	return nil
}

// Close releases resources. A no-op since http.Client needs no explicit
// cleanup.
func (v *View) Close() error {
	return nil
}
