package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketdash/internal/logger"
	"marketdash/internal/spec"
)

type fakeMount struct{ id string }

func (m fakeMount) ID() string       { return m.id }
func (m fakeMount) Size() (int, int) { return 600, 400 }

type fakeHost map[string]bool

func (h fakeHost) MountPoint(target string) (MountPoint, bool) {
	if !h[target] {
		return nil, false
	}
	return fakeMount{target}, true
}

type fakeInstance struct {
	target   string
	seq      int
	disposed bool
	log      *[]string
}

func (i *fakeInstance) Target() string   { return i.target }
func (i *fakeInstance) Resize() error    { return nil }
func (i *fakeInstance) IsDisposed() bool { return i.disposed }
func (i *fakeInstance) Dispose() {
	i.disposed = true
	*i.log = append(*i.log, "dispose "+i.target)
}

type fakeBackend struct {
	seq  int
	fail error
	log  []string
}

func (b *fakeBackend) Name() string { return "fake" }

func (b *fakeBackend) Init(mp MountPoint, themeName string, c *spec.ChartSpec) (Instance, error) {
	if b.fail != nil {
		return nil, b.fail
	}
	b.seq++
	b.log = append(b.log, "init "+mp.ID())
	return &fakeInstance{target: mp.ID(), seq: b.seq, log: &b.log}, nil
}

func lineSpec() *spec.ChartSpec {
	return &spec.ChartSpec{
		Kind:  spec.KindLine,
		Title: "t",
		Axes: []spec.Axis{
			{ID: "x", Dim: spec.X, Type: spec.Category, Categories: []string{"a", "b"}},
			{ID: "y", Dim: spec.Y, Type: spec.Value},
		},
		Series: []spec.Series{
			{Name: "s", Kind: spec.KindLine, Data: []spec.Datum{{Value: 1}, {Value: 2}}},
		},
	}
}

func newRegistry(host fakeHost, b *fakeBackend) *Registry {
	return New(host, b, "marketIntelligence", WithLogger(logger.Discard()))
}

func TestMountRegistersInstance(t *testing.T) {
	b := &fakeBackend{}
	r := newRegistry(fakeHost{"a": true}, b)

	inst, err := r.Mount(context.Background(), "a", lineSpec())
	require.NoError(t, err)
	require.NotNil(t, inst)
	assert.Equal(t, "a", inst.Target())
	assert.Equal(t, 1, r.Len())

	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Same(t, inst, got)
}

func TestRemountDisposesBeforeCreate(t *testing.T) {
	b := &fakeBackend{}
	r := newRegistry(fakeHost{"a": true}, b)
	ctx := context.Background()

	first, err := r.Mount(ctx, "a", lineSpec())
	require.NoError(t, err)
	second, err := r.Mount(ctx, "a", lineSpec())
	require.NoError(t, err)

	assert.True(t, first.IsDisposed())
	assert.False(t, second.IsDisposed())
	assert.Equal(t, []string{"init a", "dispose a", "init a"}, b.log)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"a"}, r.Targets())
}

func TestMountMissingTargetIsNoop(t *testing.T) {
	b := &fakeBackend{}
	r := newRegistry(fakeHost{}, b)

	inst, err := r.Mount(context.Background(), "missing", lineSpec())
	assert.NoError(t, err)
	assert.Nil(t, inst)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, b.log)
}

func TestMountVanishedTargetDisposesOrphan(t *testing.T) {
	b := &fakeBackend{}
	host := fakeHost{"a": true}
	r := newRegistry(host, b)
	ctx := context.Background()

	first, err := r.Mount(ctx, "a", lineSpec())
	require.NoError(t, err)

	delete(host, "a")
	inst, err := r.Mount(ctx, "a", lineSpec())
	require.NoError(t, err)
	assert.Nil(t, inst)
	assert.True(t, first.IsDisposed())
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Targets())
	_, ok := r.Get("a")
	assert.False(t, ok)
}

func TestMountMalformedSpecLeavesSlotEmpty(t *testing.T) {
	b := &fakeBackend{}
	r := newRegistry(fakeHost{"a": true}, b)
	ctx := context.Background()

	first, err := r.Mount(ctx, "a", lineSpec())
	require.NoError(t, err)

	bad := lineSpec()
	bad.Series[0].YAxis = "nope"
	inst, err := r.Mount(ctx, "a", bad)
	require.Error(t, err)
	assert.Nil(t, inst)
	assert.True(t, errors.Is(err, spec.ErrMalformed))
	assert.Contains(t, err.Error(), "mount a")

	assert.True(t, first.IsDisposed())
	_, ok := r.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestMountBackendErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	b := &fakeBackend{fail: boom}
	r := newRegistry(fakeHost{"a": true}, b)

	_, err := r.Mount(context.Background(), "a", lineSpec())
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 0, r.Len())
}

func TestInstancesKeepMountOrder(t *testing.T) {
	b := &fakeBackend{}
	r := newRegistry(fakeHost{"a": true, "b": true, "c": true}, b)
	ctx := context.Background()

	for _, target := range []string{"b", "a", "c"} {
		_, err := r.Mount(ctx, target, lineSpec())
		require.NoError(t, err)
	}
	_, err := r.Mount(ctx, "b", lineSpec())
	require.NoError(t, err)

	var got []string
	for _, inst := range r.Instances() {
		got = append(got, inst.Target())
	}
	assert.Equal(t, []string{"a", "c", "b"}, got)
}

func TestUnmountAndDisposeAll(t *testing.T) {
	b := &fakeBackend{}
	r := newRegistry(fakeHost{"a": true, "b": true}, b)
	ctx := context.Background()

	a, err := r.Mount(ctx, "a", lineSpec())
	require.NoError(t, err)
	bi, err := r.Mount(ctx, "b", lineSpec())
	require.NoError(t, err)

	assert.True(t, r.Unmount(ctx, "a"))
	assert.False(t, r.Unmount(ctx, "a"))
	assert.True(t, a.IsDisposed())
	assert.Equal(t, 1, r.Len())

	r.DisposeAll(ctx)
	assert.True(t, bi.IsDisposed())
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Instances())
}
