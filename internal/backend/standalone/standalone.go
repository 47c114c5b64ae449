// Package standalone renders chart specs to self-contained HTML pages with
// go-echarts, one chart per page. It covers the line, bar, pie, radar and
// heatmap charts; other kinds are rejected.
package standalone

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"marketdash/internal/registry"
	"marketdash/internal/spec"
)

// Name identifies the backend.
const Name = "html"

// Minimum page size used when a mount point reports no size.
const (
	MinWidth  = 480
	MinHeight = 320
)

var (
	// ErrUnsupportedKind is returned for charts go-echarts cannot express.
	ErrUnsupportedKind = errors.New("html: unsupported chart kind")
	// ErrDisposed is returned when a disposed page is resized.
	ErrDisposed = errors.New("html: page disposed")
)

// Supported reports whether the backend can draw c.
func Supported(c *spec.ChartSpec) error {
	switch c.Kind {
	case spec.KindPie, spec.KindRadar, spec.KindHeatmap:
		return nil
	case spec.KindLine, spec.KindBar:
		for _, s := range c.Series {
			if s.Kind != "" && s.Kind != c.Kind {
				return fmt.Errorf("%w: %s mixed with %s", ErrUnsupportedKind, c.Kind, s.Kind)
			}
		}
		cat, ok := c.CategoryAxis()
		if !ok {
			return fmt.Errorf("%w: %s without a category axis", ErrUnsupportedKind, c.Kind)
		}
		if c.Kind == spec.KindLine && cat.Dim != spec.X {
			return fmt.Errorf("%w: line with a vertical category axis", ErrUnsupportedKind)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedKind, c.Kind)
}

// Backend renders pages. It implements registry.Backend.
type Backend struct{}

// New returns an HTML backend.
func New() *Backend { return &Backend{} }

// Name implements registry.Backend.
func (b *Backend) Name() string { return Name }

// Init implements registry.Backend. The theme name is ignored: colours are
// already resolved in the spec.
func (b *Backend) Init(mp registry.MountPoint, _ string, c *spec.ChartSpec) (registry.Instance, error) {
	if err := Supported(c); err != nil {
		return nil, err
	}
	p := &Page{mp: mp, spec: c}
	if err := p.render(); err != nil {
		return nil, err
	}
	return p, nil
}

// Page is one rendered chart page.
type Page struct {
	mp   registry.MountPoint
	spec *spec.ChartSpec

	mu       sync.Mutex
	html     []byte
	width    int
	height   int
	disposed bool
}

func (p *Page) render() error {
	w, h := p.mp.Size()
	if w < MinWidth {
		w = MinWidth
	}
	if h < MinHeight {
		h = MinHeight
	}

	var buf bytes.Buffer
	if err := Render(p.spec, p.mp.ID(), w, h, &buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", p.mp.ID(), err)
	}
	p.html, p.width, p.height = buf.Bytes(), w, h
	return nil
}

// Target implements registry.Instance.
func (p *Page) Target() string { return p.mp.ID() }

// Resize implements registry.Instance by re-rendering at the mount point's
// current size.
func (p *Page) Resize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return ErrDisposed
	}
	return p.render()
}

// Dispose implements registry.Instance and drops the page.
func (p *Page) Dispose() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disposed = true
	p.html = nil
}

// IsDisposed implements registry.Instance.
func (p *Page) IsDisposed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disposed
}

// HTML returns the rendered page.
func (p *Page) HTML() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.html
}

// Size returns the rendered size.
func (p *Page) Size() (width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height
}
