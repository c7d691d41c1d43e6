package mock

import (
	"context"

	"github.com/pagesift/pagesift"
)

var _ pagesift.DocumentView = (*DocumentView)(nil)

// DocumentView is a mock implementation of pagesift.DocumentView.
type DocumentView struct {
	HTMLFn           func(ctx context.Context) (string, error)
	ScrollHeightFn   func(ctx context.Context) (float64, error)
	ScrollToBottomFn func(ctx context.Context) error
}

func (v *DocumentView) HTML(ctx context.Context) (string, error) {
	return v.HTMLFn(ctx)
}

func (v *DocumentView) ScrollHeight(ctx context.Context) (float64, error) {
	return v.ScrollHeightFn(ctx)
}

func (v *DocumentView) ScrollToBottom(ctx context.Context) error {
	return v.ScrollToBottomFn(ctx)
}

// StaticView returns a DocumentView over fixed markup with a constant
// height, so scrolling never observes growth.
func StaticView(markup string) *DocumentView {
	return &DocumentView{
		HTMLFn:           func(context.Context) (string, error) { return markup, nil },
		ScrollHeightFn:   func(context.Context) (float64, error) { return 1000, nil },
		ScrollToBottomFn: func(context.Context) error { return nil },
	}
}
