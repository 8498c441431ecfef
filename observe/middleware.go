package observe

import (
	"context"
	"time"
)

// FrameFunc is the signature for frame render functions. It returns
// the number of terminal cells the frame rewrote.
type FrameFunc func(ctx context.Context) (int, error)

// Middleware wraps frame rendering with observability (tracing,
// metrics, logging).
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe FrameFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from the wrapped function are recorded and propagated unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps a FrameFunc with tracing, metrics, and logging. Successful
// frames log at debug level; at tens of frames per second anything
// louder drowns the log.
func (m *Middleware) Wrap(meta AppMeta, fn FrameFunc) FrameFunc {
	appLogger := m.logger.WithApp(meta)

	return func(ctx context.Context) (int, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)

		start := time.Now()
		cells, err := fn(ctx)
		duration := time.Since(start)

		// End span (records error status if err != nil)
		m.tracer.EndSpan(span, err)

		m.metrics.RecordFrame(ctx, meta, duration, cells, err)

		fields := []Field{
			{Key: "duration_ms", Value: float64(duration) / float64(time.Millisecond)},
			{Key: "cells_drawn", Value: cells},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			appLogger.Error(ctx, "frame render failed", fields...)
		} else {
			appLogger.Debug(ctx, "frame rendered", fields...)
		}

		return cells, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
// This is a convenience function for common use cases.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	tracer := newTracer(obs.Tracer())

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(tracer, metrics, obs.Logger()), nil
}
