// Package telemetry records chart lifecycle events as OpenTelemetry
// counters and spans. Without an SDK installed the global providers are
// no-ops, so instrumentation costs nothing in the CLI.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scope = "marketdash"

// Metric names.
const (
	MetricMounted  = "dashboard.instances.mounted"
	MetricDisposed = "dashboard.instances.disposed"
	MetricSkipped  = "dashboard.mount.skipped"
	MetricFlushes  = "dashboard.resize.flushes"
	MetricResized  = "dashboard.instances.resized"
)

// Recorder holds the lifecycle instruments. A nil *Recorder records nothing.
type Recorder struct {
	tracer   trace.Tracer
	mounted  metric.Int64Counter
	disposed metric.Int64Counter
	skipped  metric.Int64Counter
	flushes  metric.Int64Counter
	resized  metric.Int64Counter
}

// New builds a recorder on the given providers; nil providers fall back to
// the otel globals.
func New(mp metric.MeterProvider, tp trace.TracerProvider) (*Recorder, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	meter := mp.Meter(scope)

	r := &Recorder{tracer: tp.Tracer(scope)}
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&r.mounted, MetricMounted, "Chart instances created"},
		{&r.disposed, MetricDisposed, "Chart instances disposed"},
		{&r.skipped, MetricSkipped, "Mounts skipped because the target is absent"},
		{&r.flushes, MetricFlushes, "Debounced resize flushes"},
		{&r.resized, MetricResized, "Instance resizes performed by flushes"},
	}
	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("create counter %s: %w", c.name, err)
		}
		*c.dst = counter
	}
	return r, nil
}

// Default returns a recorder on the global providers.
func Default() *Recorder {
	r, err := New(nil, nil)
	if err != nil {
		return nil
	}
	return r
}

func add(ctx context.Context, c metric.Int64Counter, n int64, target string) {
	if target == "" {
		c.Add(ctx, n)
		return
	}
	c.Add(ctx, n, metric.WithAttributes(attribute.String("target", target)))
}

// Mounted records a new instance at target.
func (r *Recorder) Mounted(ctx context.Context, target string) {
	if r != nil {
		add(ctx, r.mounted, 1, target)
	}
}

// Disposed records an instance disposal at target.
func (r *Recorder) Disposed(ctx context.Context, target string) {
	if r != nil {
		add(ctx, r.disposed, 1, target)
	}
}

// Skipped records a mount at an absent target.
func (r *Recorder) Skipped(ctx context.Context, target string) {
	if r != nil {
		add(ctx, r.skipped, 1, target)
	}
}

// Flushed records one resize flush that resized n instances.
func (r *Recorder) Flushed(ctx context.Context, n int) {
	if r == nil {
		return
	}
	add(ctx, r.flushes, 1, "")
	if n > 0 {
		add(ctx, r.resized, int64(n), "")
	}
}

// Start opens a span. On a nil recorder the span is a no-op.
func (r *Recorder) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if r == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return r.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
