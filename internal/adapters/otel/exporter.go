package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/visnughosh/portfolio/internal/ports"
)

const (
	serviceName    = "portfolio"
	serviceVersion = "1.0.0"
)

// Exporter exports page view metrics to an OTEL Collector.
type Exporter struct {
	provider   *sdkmetric.MeterProvider
	viewsTotal metric.Int64Counter
	renderHist metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter pushing to cfg.Endpoint.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	e, err := newExporter(ctx, sdkmetric.NewPeriodicReader(exp))
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(e.provider)
	return e, nil
}

func newExporter(ctx context.Context, reader sdkmetric.Reader) (*Exporter, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	meter := provider.Meter(serviceName)

	viewsTotal, err := meter.Int64Counter(
		"portfolio_page_views_total",
		metric.WithDescription("Total number of rendered pages"),
		metric.WithUnit("{view}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating page views counter: %w", err)
	}

	renderHist, err := meter.Float64Histogram(
		"portfolio_render_duration_seconds",
		metric.WithDescription("Page render duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating render duration histogram: %w", err)
	}

	return &Exporter{
		provider:   provider,
		viewsTotal: viewsTotal,
		renderHist: renderHist,
	}, nil
}

// RecordPageView records one rendered page.
func (e *Exporter) RecordPageView(ctx context.Context, v ports.PageView) error {
	opt := metric.WithAttributes(
		attribute.String("path", v.Path),
		attribute.Bool("fragment", v.Fragment),
	)

	e.viewsTotal.Add(ctx, 1, opt)
	e.renderHist.Record(ctx, v.RenderTime.Seconds(), opt)

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
