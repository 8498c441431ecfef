package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records per-frame rendering metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordFrame records one rendered frame: how long it took, how
	// many cells the diff pass actually rewrote, and whether it failed.
	RecordFrame(ctx context.Context, meta AppMeta, duration time.Duration, cells int, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
	cellsHist    metric.Int64Histogram
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"frame.total",
		metric.WithDescription("Total number of rendered frames"),
		metric.WithUnit("{frame}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"frame.errors",
		metric.WithDescription("Total number of frame render errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"frame.duration_ms",
		metric.WithDescription("Frame duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cellsHist, err := meter.Int64Histogram(
		"frame.cells_drawn",
		metric.WithDescription("Terminal cells rewritten per frame"),
		metric.WithUnit("{cell}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
		cellsHist:    cellsHist,
	}, nil
}

// RecordFrame records metrics for one frame.
func (m *metricsImpl) RecordFrame(ctx context.Context, meta AppMeta, duration time.Duration, cells int, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("app.name", meta.Name),
	}
	if meta.Scene != "" {
		attrs = append(attrs, attribute.String("app.scene", meta.Scene))
	}

	opt := metric.WithAttributes(attrs...)

	// Always increment total counter
	m.totalCount.Add(ctx, 1, opt)

	// Increment error counter on failure
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}

	// Frames run well under a millisecond on small grids, so keep
	// sub-millisecond resolution.
	durationMs := float64(duration) / float64(time.Millisecond)
	m.durationHist.Record(ctx, durationMs, opt)
	m.cellsHist.Record(ctx, int64(cells), opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordFrame(ctx context.Context, meta AppMeta, duration time.Duration, cells int, err error) {
}
