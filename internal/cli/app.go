package cli

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/visnughosh/portfolio/internal/adapters/otel"
	"github.com/visnughosh/portfolio/internal/infrastructure/config"
	"github.com/visnughosh/portfolio/internal/ports"
)

// AppContext holds all shared dependencies for the serve command.
type AppContext struct {
	Config   *config.Server
	Logger   *zap.Logger
	Recorder ports.PageViewRecorder
}

// NewAppContext wires the page view recorder. A failing OTEL exporter
// degrades to the no-op recorder instead of stopping the site.
func NewAppContext(ctx context.Context, cfg *config.Server, logger *zap.Logger) *AppContext {
	var recorder ports.PageViewRecorder = otel.NewNoOpRecorder()
	if cfg.OTEL.Enabled {
		exp, err := otel.NewExporter(ctx, cfg.OTEL)
		if err != nil {
			logger.Warn("page view metrics disabled", zap.Error(err))
		} else {
			logger.Debug("exporting page view metrics", zap.String("endpoint", cfg.OTEL.Endpoint))
			recorder = exp
		}
	}

	return &AppContext{
		Config:   cfg,
		Logger:   logger,
		Recorder: recorder,
	}
}

// Close flushes the recorder.
func (a *AppContext) Close(ctx context.Context) error {
	var errs []error
	if a.Recorder != nil {
		errs = append(errs, a.Recorder.Close(ctx))
	}
	return errors.Join(errs...)
}
