// Package page models the host document the charts are mounted into: a set
// of named regions laid out against a viewport.
package page

import (
	"sort"
	"sync"

	"marketdash/internal/registry"
)

// Layout constants, in CSS pixels.
const (
	Padding       = 32
	Gap           = 24
	TwoColumnMin  = 900
	DefaultHeight = 360
)

// Region is one mount point on the page.
type Region struct {
	ID      string
	Section string
	Title   string
	// Note is markdown shown under the chart.
	Note string
	// Span is 2 for regions that take the full content width.
	Span   int
	Height int
	Width  int
}

// Page holds the regions and the current viewport. It implements
// registry.Host and the resize package's Viewport.
type Page struct {
	Title string

	mu      sync.RWMutex
	regions []Region
	index   map[string]int
	width   int
	height  int
	subs    map[int]func()
	nextSub int
}

// New creates a page with the given regions laid out for a width x height
// viewport. Regions with a duplicate ID after the first are dropped.
func New(title string, regions []Region, width, height int) *Page {
	p := &Page{
		Title: title,
		index: make(map[string]int),
		subs:  make(map[int]func()),
	}
	for _, r := range regions {
		if _, dup := p.index[r.ID]; dup || r.ID == "" {
			continue
		}
		if r.Height <= 0 {
			r.Height = DefaultHeight
		}
		if r.Span <= 0 {
			r.Span = 1
		}
		p.index[r.ID] = len(p.regions)
		p.regions = append(p.regions, r)
	}
	p.width, p.height = width, height
	p.layout()
	return p
}

// layout recomputes region widths. Callers hold p.mu.
func (p *Page) layout() {
	content := p.width - 2*Padding
	if content < 0 {
		content = 0
	}
	half := content
	if p.width >= TwoColumnMin {
		half = (content - Gap) / 2
	}
	for i := range p.regions {
		if p.regions[i].Span >= 2 {
			p.regions[i].Width = content
		} else {
			p.regions[i].Width = half
		}
	}
}

// Columns returns the number of layout columns at the current viewport.
func (p *Page) Columns() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.width >= TwoColumnMin {
		return 2
	}
	return 1
}

// Viewport returns the current viewport size.
func (p *Page) Viewport() (width, height int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.width, p.height
}

// SetViewport resizes the page and notifies subscribers. It reports false,
// notifying nobody, when the size is unchanged.
func (p *Page) SetViewport(width, height int) bool {
	p.mu.Lock()
	if width == p.width && height == p.height {
		p.mu.Unlock()
		return false
	}
	p.width, p.height = width, height
	p.layout()
	ids := make([]int, 0, len(p.subs))
	for id := range p.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	subs := make([]func(), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, p.subs[id])
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
	return true
}

// Subscribe registers fn to run after every viewport change.
func (p *Page) Subscribe(fn func()) (unsubscribe func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

// Subscribers returns the number of live subscriptions.
func (p *Page) Subscribers() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subs)
}

// MountPoint implements registry.Host.
func (p *Page) MountPoint(target string) (registry.MountPoint, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if _, ok := p.index[target]; !ok {
		return nil, false
	}
	return mountPoint{page: p, id: target}, true
}

// Region returns a copy of the region with the given id.
func (p *Page) Region(id string) (Region, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	i, ok := p.index[id]
	if !ok {
		return Region{}, false
	}
	return p.regions[i], true
}

// Regions returns a copy of all regions in page order.
func (p *Page) Regions() []Region {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Region(nil), p.regions...)
}

// mountPoint reads its size from the page so a resize sees the current
// layout.
type mountPoint struct {
	page *Page
	id   string
}

func (m mountPoint) ID() string { return m.id }

func (m mountPoint) Size() (int, int) {
	r, ok := m.page.Region(m.id)
	if !ok {
		return 0, 0
	}
	return r.Width, r.Height
}
