package resize

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketdash/internal/logger"
	"marketdash/internal/registry"
)

type fakeTimer struct {
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

type fakeScheduler struct {
	timers []*fakeTimer
	window time.Duration
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.window = d
	t := &fakeTimer{f: f}
	s.timers = append(s.timers, t)
	return t
}

// elapse fires every timer that has not been stopped.
func (s *fakeScheduler) elapse() {
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			t.f()
		}
	}
}

type fakeInstance struct {
	target   string
	resizes  int
	disposed bool
	err      error
}

func (i *fakeInstance) Target() string   { return i.target }
func (i *fakeInstance) IsDisposed() bool { return i.disposed }
func (i *fakeInstance) Dispose()         { i.disposed = true }
func (i *fakeInstance) Resize() error {
	if i.err != nil {
		return i.err
	}
	i.resizes++
	return nil
}

type fakeSource []*fakeInstance

func (s fakeSource) Instances() []registry.Instance {
	out := make([]registry.Instance, len(s))
	for i, inst := range s {
		out[i] = inst
	}
	return out
}

type fakeViewport struct {
	subs         int
	unsubscribed int
	fn           func()
}

func (v *fakeViewport) Subscribe(fn func()) func() {
	v.subs++
	v.fn = fn
	return func() { v.unsubscribed++ }
}

func newCoordinator(src Source, sched *fakeScheduler) *Coordinator {
	return New(src, 150*time.Millisecond, WithScheduler(sched), WithLogger(logger.Discard()))
}

func TestBurstProducesOneFlush(t *testing.T) {
	a, b := &fakeInstance{target: "a"}, &fakeInstance{target: "b"}
	sched := &fakeScheduler{}
	c := newCoordinator(fakeSource{a, b}, sched)

	assert.Equal(t, Idle, c.State())
	for i := 0; i < 5; i++ {
		c.Notify()
	}
	assert.Equal(t, Pending, c.State())
	assert.Equal(t, 150*time.Millisecond, sched.window)
	assert.Equal(t, 0, c.Flushes())

	sched.elapse()
	assert.Equal(t, 1, c.Flushes())
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 1, a.resizes)
	assert.Equal(t, 1, b.resizes)
}

func TestStaleTimerDoesNotFlush(t *testing.T) {
	a := &fakeInstance{target: "a"}
	sched := &fakeScheduler{}
	c := newCoordinator(fakeSource{a}, sched)

	c.Notify()
	c.Notify()
	require.Len(t, sched.timers, 2)

	// The first timer lost the race with Stop and fires anyway.
	sched.timers[0].f()
	assert.Equal(t, 0, c.Flushes())
	assert.Equal(t, Pending, c.State())

	sched.elapse()
	assert.Equal(t, 1, c.Flushes())
}

func TestFlushSkipsDisposedInstances(t *testing.T) {
	live, gone := &fakeInstance{target: "live"}, &fakeInstance{target: "gone", disposed: true}
	failing := &fakeInstance{target: "failing", err: errors.New("no size")}
	sched := &fakeScheduler{}
	c := newCoordinator(fakeSource{live, gone, failing}, sched)

	c.Notify()
	sched.elapse()
	assert.Equal(t, 1, live.resizes)
	assert.Equal(t, 0, gone.resizes)
	assert.Equal(t, 1, c.Flushes())
}

func TestFlushNowCancelsPending(t *testing.T) {
	a := &fakeInstance{target: "a"}
	sched := &fakeScheduler{}
	c := newCoordinator(fakeSource{a}, sched)

	c.Notify()
	n := c.Flush(context.Background())
	assert.Equal(t, 1, n)
	assert.Equal(t, Idle, c.State())

	sched.elapse()
	assert.Equal(t, 1, c.Flushes())
	assert.Equal(t, 1, a.resizes)
}

func TestListenOnce(t *testing.T) {
	sched := &fakeScheduler{}
	c := newCoordinator(fakeSource{}, sched)
	v := &fakeViewport{}

	assert.True(t, c.Listen(v))
	assert.False(t, c.Listen(v))
	assert.Equal(t, 1, v.subs)

	v.fn()
	assert.Equal(t, Pending, c.State())

	c.Stop()
	assert.Equal(t, 1, v.unsubscribed)
	assert.Equal(t, Idle, c.State())
	sched.elapse()
	assert.Equal(t, 0, c.Flushes())

	assert.True(t, c.Listen(v))
	assert.Equal(t, 2, v.subs)
}

func TestDefaultWindow(t *testing.T) {
	c := New(fakeSource{}, 0)
	assert.Equal(t, DefaultWindow, c.Window())
	assert.Equal(t, "pending", Pending.String())
}
