package ports

import (
	"context"
	"time"
)

// PageViewRecorder records rendered page views to an external observability system.
type PageViewRecorder interface {
	// RecordPageView records a single rendered page.
	RecordPageView(ctx context.Context, v PageView) error
	// Close shuts down the recorder and flushes any pending metrics.
	Close(ctx context.Context) error
}

// PageView describes one rendered page.
type PageView struct {
	Path       string
	Fragment   bool // HTMX partial render
	RenderTime time.Duration
}
