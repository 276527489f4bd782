package otel

import (
	"context"

	"github.com/visnughosh/portfolio/internal/ports"
)

// NoOpRecorder is a page view recorder that does nothing.
type NoOpRecorder struct{}

// NewNoOpRecorder creates a new no-op recorder for graceful degradation.
func NewNoOpRecorder() *NoOpRecorder {
	return &NoOpRecorder{}
}

func (r *NoOpRecorder) RecordPageView(ctx context.Context, v ports.PageView) error {
	return nil
}

func (r *NoOpRecorder) Close(ctx context.Context) error {
	return nil
}
