// Package resize coalesces bursts of viewport changes into a single resize
// pass over the live chart instances.
package resize

import (
	"context"
	"sync"
	"time"

	"marketdash/internal/logger"
	"marketdash/internal/registry"
	"marketdash/internal/telemetry"
)

// DefaultWindow is the debounce window used when none is configured.
const DefaultWindow = 150 * time.Millisecond

// State is the coordinator's position in its Idle, Pending, Flushing cycle.
type State int

const (
	Idle State = iota
	Pending
	Flushing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Flushing:
		return "flushing"
	}
	return "unknown"
}

// Timer is a cancellable scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The default uses time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Source supplies the instances to resize. *registry.Registry implements it.
type Source interface {
	Instances() []registry.Instance
}

// Viewport publishes size changes. Subscribe returns a function that
// removes the subscription.
type Viewport interface {
	Subscribe(fn func()) (unsubscribe func())
}

// Coordinator debounces resize notifications. Only the last notification
// inside the window produces a flush.
type Coordinator struct {
	src    Source
	window time.Duration
	sched  Scheduler
	log    *logger.Logger
	rec    *telemetry.Recorder

	mu          sync.Mutex
	state       State
	timer       Timer
	gen         uint64
	flushes     int
	unsubscribe func()
	listening   bool
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithScheduler replaces the timer source.
func WithScheduler(s Scheduler) Option {
	return func(c *Coordinator) { c.sched = s }
}

// WithLogger sets the coordinator logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Coordinator) { c.log = l }
}

// WithRecorder sets the telemetry recorder.
func WithRecorder(rec *telemetry.Recorder) Option {
	return func(c *Coordinator) { c.rec = rec }
}

// New creates an idle coordinator over src. A non-positive window falls
// back to DefaultWindow.
func New(src Source, window time.Duration, opts ...Option) *Coordinator {
	if window <= 0 {
		window = DefaultWindow
	}
	c := &Coordinator{
		src:    src,
		window: window,
		sched:  realScheduler{},
		log:    logger.Component("resize"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Window returns the debounce window.
func (c *Coordinator) Window() time.Duration { return c.window }

// Notify records a viewport change and (re)arms the debounce timer.
func (c *Coordinator) Notify() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.state = Pending
	c.timer = c.sched.AfterFunc(c.window, func() { c.fire(gen) })
}

// fire runs the flush armed by generation gen. A timer that lost a Stop
// race carries an old generation and does nothing.
func (c *Coordinator) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.state != Pending {
		c.mu.Unlock()
		return
	}
	c.state = Flushing
	c.timer = nil
	c.mu.Unlock()

	c.flush(context.Background())
}

// Flush cancels any pending timer and resizes every live instance now.
// It returns the number of instances resized.
func (c *Coordinator) Flush(ctx context.Context) int {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	c.state = Flushing
	c.mu.Unlock()

	return c.flush(ctx)
}

func (c *Coordinator) flush(ctx context.Context) int {
	resized := 0
	for _, inst := range c.src.Instances() {
		if inst.IsDisposed() {
			continue
		}
		if err := inst.Resize(); err != nil {
			c.log.Error("Resize failed", err, logger.Fields{"target": inst.Target()})
			continue
		}
		resized++
	}

	c.mu.Lock()
	c.flushes++
	// A Notify during the flush leaves the coordinator Pending.
	if c.state == Flushing {
		c.state = Idle
	}
	c.mu.Unlock()

	c.rec.Flushed(ctx, resized)
	c.log.Debug("Resize flush", logger.Fields{"resized": resized})
	return resized
}

// Listen subscribes the coordinator to v. Only the first call subscribes;
// later calls return false.
func (c *Coordinator) Listen(v Viewport) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listening {
		return false
	}
	c.listening = true
	c.unsubscribe = v.Subscribe(c.Notify)
	return true
}

// Stop cancels a pending flush and drops the viewport subscription.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	if c.state == Pending {
		c.state = Idle
	}
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.listening = false
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// State returns the current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Flushes returns how many flushes have run.
func (c *Coordinator) Flushes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushes
}
