// Package registry owns the live chart instances of a page: at most one per
// mount target, replaced by dispose-then-create.
package registry

import (
	"context"
	"fmt"
	"sync"

	"marketdash/internal/logger"
	"marketdash/internal/spec"
	"marketdash/internal/telemetry"
)

// MountPoint is a resolved region of the host page.
type MountPoint interface {
	ID() string
	Size() (width, height int)
}

// Host resolves mount targets. A missing target is not an error.
type Host interface {
	MountPoint(target string) (MountPoint, bool)
}

// Instance is a chart bound to a mount point by a backend.
type Instance interface {
	Target() string
	Resize() error
	Dispose()
	IsDisposed() bool
}

// Backend creates instances. Init must not modify c.
type Backend interface {
	Name() string
	Init(mp MountPoint, themeName string, c *spec.ChartSpec) (Instance, error)
}

// Registry maps mount targets to live instances. It is safe for concurrent
// use; the resize timer reads it from its own goroutine.
type Registry struct {
	host      Host
	backend   Backend
	themeName string
	log       *logger.Logger
	rec       *telemetry.Recorder

	mu        sync.Mutex
	instances map[string]Instance
	order     []string
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(l *logger.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// WithRecorder sets the telemetry recorder.
func WithRecorder(rec *telemetry.Recorder) Option {
	return func(r *Registry) { r.rec = rec }
}

// New creates an empty registry mounting into host through backend.
func New(host Host, backend Backend, themeName string, opts ...Option) *Registry {
	r := &Registry{
		host:      host,
		backend:   backend,
		themeName: themeName,
		log:       logger.Component("registry"),
		instances: make(map[string]Instance),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Has reports whether the host has a mount point for target.
func (r *Registry) Has(target string) bool {
	_, ok := r.host.MountPoint(target)
	return ok
}

// Mount replaces whatever is mounted at target with a new instance of c.
//
// An absent target returns (nil, nil). An instance still held for a target
// whose region has gone away is disposed first.
// The previous instance is disposed before the new one is created; if
// validation or construction fails the error is returned and the target
// stays empty.
func (r *Registry) Mount(ctx context.Context, target string, c *spec.ChartSpec) (Instance, error) {
	mp, ok := r.host.MountPoint(target)

	r.mu.Lock()
	defer r.mu.Unlock()

	if !ok {
		if old, mounted := r.instances[target]; mounted {
			r.disposeLocked(ctx, target, old)
		}
		r.log.Debug("Mount target absent, skipping", logger.Fields{"target": target})
		r.rec.Skipped(ctx, target)
		return nil, nil
	}

	if old, ok := r.instances[target]; ok {
		r.disposeLocked(ctx, target, old)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("mount %s: %w", target, err)
	}
	inst, err := r.backend.Init(mp, r.themeName, c)
	if err != nil {
		return nil, fmt.Errorf("mount %s on %s: %w", target, r.backend.Name(), err)
	}

	r.instances[target] = inst
	r.order = append(r.order, target)
	r.rec.Mounted(ctx, target)
	r.log.Debug("Mounted chart", logger.Fields{"target": target, "backend": r.backend.Name()})
	return inst, nil
}

// disposeLocked disposes inst and removes it. Callers hold r.mu.
func (r *Registry) disposeLocked(ctx context.Context, target string, inst Instance) {
	if !inst.IsDisposed() {
		inst.Dispose()
		r.rec.Disposed(ctx, target)
	}
	delete(r.instances, target)
	for i, t := range r.order {
		if t == target {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the instance mounted at target.
func (r *Registry) Get(target string) (Instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, ok := r.instances[target]
	return inst, ok
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}

// Instances returns a snapshot of the registered instances in mount order.
func (r *Registry) Instances() []Instance {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Instance, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.instances[t])
	}
	return out
}

// Targets returns the registered targets in mount order.
func (r *Registry) Targets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Unmount disposes and removes the instance at target. It reports whether
// anything was mounted there.
func (r *Registry) Unmount(ctx context.Context, target string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst, ok := r.instances[target]
	if !ok {
		return false
	}
	r.disposeLocked(ctx, target, inst)
	return true
}

// DisposeAll disposes every instance and empties the registry.
func (r *Registry) DisposeAll(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range append([]string(nil), r.order...) {
		r.disposeLocked(ctx, t, r.instances[t])
	}
}
