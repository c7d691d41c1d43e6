package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagesift/pagesift"
)

// Ensure LoggingView implements pagesift.DocumentView.
var _ pagesift.DocumentView = (*LoggingView)(nil)

// LoggingView wraps a DocumentView with debug logging of snapshot and
// scroll activity.
type LoggingView struct {
	next   pagesift.DocumentView
	logger *slog.Logger
}

// NewLoggingView creates a new LoggingView.
func NewLoggingView(next pagesift.DocumentView, logger *slog.Logger) *LoggingView {
	return &LoggingView{next: next, logger: logger}
}

// HTML logs the snapshot size and delegates to the wrapped view.
func (v *LoggingView) HTML(ctx context.Context) (markup string, err error) {
	defer func(begin time.Time) {
		v.logger.Debug("snapshot",
			"bytes", len(markup),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return v.next.HTML(ctx)
}

// ScrollHeight delegates to the wrapped view.
func (v *LoggingView) ScrollHeight(ctx context.Context) (float64, error) {
	return v.next.ScrollHeight(ctx)
}

// ScrollToBottom logs the scroll attempt and delegates to the wrapped view.
func (v *LoggingView) ScrollToBottom(ctx context.Context) error {
	err := v.next.ScrollToBottom(ctx)
	v.logger.Debug("scroll to bottom", "err", err)
	return err
}
