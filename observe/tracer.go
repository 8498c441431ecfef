package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// AppMeta contains metadata about a running application for telemetry
// purposes.
type AppMeta struct {
	Name    string // Application name (required)
	Version string // Application version (optional)
	Scene   string // Active scene or screen name (optional)
}

// SpanName returns the deterministic span name for a frame of this app.
// Format: frame.render.<name>.<scene> or frame.render.<name>
func (m AppMeta) SpanName() string {
	if m.Scene != "" {
		return "frame.render." + m.Name + "." + m.Scene
	}
	return "frame.render." + m.Name
}

// Tracer wraps OpenTelemetry tracing with frame-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: StartSpan must honor cancellation/deadlines and return ctx.Err() when canceled.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span covering one frame.
	StartSpan(ctx context.Context, meta AppMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with app metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta AppMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("app.name", meta.Name),
		attribute.Bool("frame.error", false), // Will be updated in EndSpan if error
	}

	if meta.Version != "" {
		attrs = append(attrs, attribute.String("app.version", meta.Version))
	}
	if meta.Scene != "" {
		attrs = append(attrs, attribute.String("app.scene", meta.Scene))
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, span
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("frame.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// newNoopTracer creates a no-op tracer.
func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta AppMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
