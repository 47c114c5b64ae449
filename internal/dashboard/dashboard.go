// Package dashboard paints every chart of the catalog into a host page and
// keeps the instances sized to the viewport.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"marketdash/internal/charts"
	"marketdash/internal/logger"
	"marketdash/internal/registry"
	"marketdash/internal/resize"
	"marketdash/internal/telemetry"
	"marketdash/internal/theme"
)

// Report summarises one InitAllCharts run.
type Report struct {
	Backend  string
	Mounted  []string
	Skipped  []string
	Duration time.Duration
}

// Dashboard wires the theme, the instance registry and the resize
// coordinator around one host and one backend.
type Dashboard struct {
	theme    *theme.Theme
	backend  registry.Backend
	catalog  []charts.Definition
	viewport resize.Viewport
	window   time.Duration
	sched    resize.Scheduler
	log      *logger.Logger
	rec      *telemetry.Recorder

	reg   *registry.Registry
	coord *resize.Coordinator

	now func() time.Time
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithTheme replaces the dashboard theme.
func WithTheme(t *theme.Theme) Option { return func(d *Dashboard) { d.theme = t } }

// WithCatalog replaces the chart catalog.
func WithCatalog(defs []charts.Definition) Option {
	return func(d *Dashboard) { d.catalog = defs }
}

// WithViewport subscribes the resize coordinator to v on every init that
// finds it unsubscribed.
func WithViewport(v resize.Viewport) Option { return func(d *Dashboard) { d.viewport = v } }

// WithDebounce sets the resize debounce window.
func WithDebounce(window time.Duration) Option { return func(d *Dashboard) { d.window = window } }

// WithScheduler replaces the resize timer source.
func WithScheduler(s resize.Scheduler) Option { return func(d *Dashboard) { d.sched = s } }

// WithLogger sets the logger used by the dashboard and its parts.
func WithLogger(l *logger.Logger) Option { return func(d *Dashboard) { d.log = l } }

// WithRecorder sets the telemetry recorder.
func WithRecorder(rec *telemetry.Recorder) Option { return func(d *Dashboard) { d.rec = rec } }

// New creates a dashboard painting into host through backend.
func New(host registry.Host, backend registry.Backend, opts ...Option) *Dashboard {
	d := &Dashboard{
		theme:   theme.Get(),
		backend: backend,
		catalog: charts.Catalog(),
		window:  resize.DefaultWindow,
		log:     logger.Component("dashboard"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}

	d.reg = registry.New(host, backend, d.theme.Name,
		registry.WithLogger(d.log.WithComponent("registry")),
		registry.WithRecorder(d.rec))
	coordOpts := []resize.Option{
		resize.WithLogger(d.log.WithComponent("resize")),
		resize.WithRecorder(d.rec),
	}
	if d.sched != nil {
		coordOpts = append(coordOpts, resize.WithScheduler(d.sched))
	}
	d.coord = resize.New(d.reg, d.window, coordOpts...)
	return d
}

// Registry returns the instance registry.
func (d *Dashboard) Registry() *registry.Registry { return d.reg }

// Coordinator returns the resize coordinator.
func (d *Dashboard) Coordinator() *resize.Coordinator { return d.coord }

// InitAllCharts mounts every catalog chart in order. Targets the host does
// not have are skipped without building their spec, and an instance left
// from an earlier run at such a target is disposed. The first chart that
// fails to mount aborts the run; charts mounted before it stay mounted.
// Running it again replaces every instance, so each target holds one.
func (d *Dashboard) InitAllCharts(ctx context.Context) (Report, error) {
	start := d.now()
	ctx, span := d.rec.Start(ctx, "dashboard.InitAllCharts",
		attribute.String("backend", d.backend.Name()),
		attribute.Int("charts", len(d.catalog)))
	defer span.End()

	report := Report{Backend: d.backend.Name()}
	if r, ok := d.backend.(theme.Registrar); ok {
		if err := theme.Register(r, d.theme); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "theme registration failed")
			return report, err
		}
	}

	for _, def := range d.catalog {
		if !d.reg.Has(def.Target) {
			d.reg.Unmount(ctx, def.Target)
			d.log.Debug("Chart target not on page", logger.Fields{"target": def.Target})
			d.rec.Skipped(ctx, def.Target)
			report.Skipped = append(report.Skipped, def.Target)
			continue
		}
		inst, err := d.reg.Mount(ctx, def.Target, def.Build(d.theme))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "mount failed")
			return report, fmt.Errorf("init charts: %w", err)
		}
		if inst == nil {
			report.Skipped = append(report.Skipped, def.Target)
			continue
		}
		report.Mounted = append(report.Mounted, def.Target)
	}

	// Listen is a no-op while subscribed, and Close drops the subscription.
	if d.viewport != nil {
		d.coord.Listen(d.viewport)
	}

	report.Duration = d.now().Sub(start)
	span.SetAttributes(attribute.Int("mounted", len(report.Mounted)), attribute.Int("skipped", len(report.Skipped)))
	d.log.Info("Charts initialised", logger.Fields{
		"backend": report.Backend,
		"mounted": len(report.Mounted),
		"skipped": len(report.Skipped),
	})
	return report, nil
}

// Close stops resize handling and disposes every instance. A later
// InitAllCharts subscribes to the viewport again.
func (d *Dashboard) Close(ctx context.Context) {
	d.coord.Stop()
	d.reg.DisposeAll(ctx)
}
