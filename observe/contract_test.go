package observe

import (
	"context"
	"testing"
	"time"
)

func TestObserverContract_Noops(t *testing.T) {
	cfg := Config{
		AppName: "observe-test",
		Tracing: TracingConfig{
			Enabled:  false,
			Exporter: "none",
		},
		Metrics: MetricsConfig{
			Enabled:  false,
			Exporter: "none",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}

	obs, err := NewObserver(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}

	if obs.Tracer() == nil {
		t.Fatalf("expected non-nil tracer")
	}
	if obs.Meter() == nil {
		t.Fatalf("expected non-nil meter")
	}
	if obs.Logger() == nil {
		t.Fatalf("expected non-nil logger")
	}
}

func TestLoggerContract_WithApp(t *testing.T) {
	logger := &noopLogger{}
	if logger.WithApp(AppMeta{Name: "noop"}) == nil {
		t.Fatalf("WithApp should return non-nil logger")
	}
}

func TestMetricsContract_NoPanic(t *testing.T) {
	metrics := &noopMetrics{}
	metrics.RecordFrame(context.Background(), AppMeta{Name: "noop"}, 10*time.Millisecond, 5, nil)
}

func TestTracerContract_NoPanic(t *testing.T) {
	tracer := newNoopTracer()
	ctx := context.Background()
	_, span := tracer.StartSpan(ctx, AppMeta{Name: "noop"})
	tracer.EndSpan(span, nil)
}
