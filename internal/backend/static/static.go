// Package static renders chart specs to PNG images with go-chart. It covers
// the line, bar, doughnut and scatter charts; other kinds are rejected.
package static

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"marketdash/internal/registry"
	"marketdash/internal/spec"
)

// Name identifies the backend.
const Name = "png"

// Minimum image size used when a mount point reports no size.
const (
	MinWidth  = 480
	MinHeight = 320
)

var (
	// ErrUnsupportedKind is returned for chart kinds go-chart cannot draw.
	ErrUnsupportedKind = errors.New("png: unsupported chart kind")
	// ErrDisposed is returned when a disposed image is resized.
	ErrDisposed = errors.New("png: image disposed")
)

// Supported reports whether the backend can draw c.
func Supported(c *spec.ChartSpec) error {
	switch c.Kind {
	case spec.KindLine, spec.KindScatter, spec.KindPie:
	case spec.KindBar:
		for _, s := range c.Series {
			if s.Kind != "" && s.Kind != spec.KindBar {
				return fmt.Errorf("%w: %s mixed with %s", ErrUnsupportedKind, spec.KindBar, s.Kind)
			}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, c.Kind)
	}
	return nil
}

// Backend renders images. It implements registry.Backend.
type Backend struct{}

// New returns a PNG backend.
func New() *Backend { return &Backend{} }

// Name implements registry.Backend.
func (b *Backend) Name() string { return Name }

// Init implements registry.Backend. The theme name is ignored: colours are
// already resolved in the spec.
func (b *Backend) Init(mp registry.MountPoint, _ string, c *spec.ChartSpec) (registry.Instance, error) {
	if err := Supported(c); err != nil {
		return nil, err
	}
	img := &Image{mp: mp, spec: c}
	if err := img.render(); err != nil {
		return nil, err
	}
	return img, nil
}

// Image is one rendered chart.
type Image struct {
	mp   registry.MountPoint
	spec *spec.ChartSpec

	mu       sync.Mutex
	png      []byte
	width    int
	height   int
	disposed bool
}

func (i *Image) render() error {
	w, h := i.mp.Size()
	if w < MinWidth {
		w = MinWidth
	}
	if h < MinHeight {
		h = MinHeight
	}

	var buf bytes.Buffer
	if err := Render(i.spec, w, h, &buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", i.mp.ID(), err)
	}
	i.png, i.width, i.height = buf.Bytes(), w, h
	return nil
}

// Target implements registry.Instance.
func (i *Image) Target() string { return i.mp.ID() }

// Resize implements registry.Instance by re-rendering at the mount point's
// current size.
func (i *Image) Resize() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.disposed {
		return ErrDisposed
	}
	return i.render()
}

// Dispose implements registry.Instance and drops the image data.
func (i *Image) Dispose() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.disposed = true
	i.png = nil
}

// IsDisposed implements registry.Instance.
func (i *Image) IsDisposed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.disposed
}

// PNG returns the encoded image.
func (i *Image) PNG() []byte {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.png
}

// Size returns the rendered size.
func (i *Image) Size() (width, height int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.width, i.height
}
