// Package echarts renders chart specs as ECharts snippets: a container div
// plus a script that mounts the chart through the page runtime.
package echarts

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"sync"
	"time"

	"marketdash/internal/registry"
	"marketdash/internal/spec"
	"marketdash/internal/theme"
)

// Name identifies the backend.
const Name = "echarts"

// DefaultCDN is the ECharts build loaded by the page.
const DefaultCDN = "https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"

var (
	// ErrThemeNotRegistered is returned by Init for an unknown theme name.
	ErrThemeNotRegistered = errors.New("echarts: theme not registered")
	// ErrDisposed is returned when a disposed chart is resized.
	ErrDisposed = errors.New("echarts: chart disposed")
)

// Snippet is an embeddable chart fragment.
// Div holds the single root <div id="..."> and Script the <script> block that
// mounts the chart into it. HTML is both combined.
type Snippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}

// Backend creates ECharts instances. It implements registry.Backend and
// theme.Registrar.
type Backend struct {
	themes *theme.Table
	cdn    string
	window time.Duration
}

// New returns a backend loading ECharts from cdn and debouncing browser
// resizes by window. Empty values take the defaults.
func New(cdn string, window time.Duration) *Backend {
	if cdn == "" {
		cdn = DefaultCDN
	}
	if window <= 0 {
		window = 150 * time.Millisecond
	}
	return &Backend{themes: theme.NewTable(), cdn: cdn, window: window}
}

// Name implements registry.Backend.
func (b *Backend) Name() string { return Name }

// RegisterTheme implements theme.Registrar.
func (b *Backend) RegisterTheme(name string, definition map[string]interface{}) error {
	return b.themes.RegisterTheme(name, definition)
}

// Init implements registry.Backend.
func (b *Backend) Init(mp registry.MountPoint, themeName string, c *spec.ChartSpec) (registry.Instance, error) {
	if _, ok := b.themes.Lookup(themeName); !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotRegistered, themeName)
	}
	optJSON, err := json.Marshal(Option(c))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal option: %w", err)
	}
	tipsJSON, err := json.Marshal(tipsPayload(c.Tooltips()))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tooltips: %w", err)
	}
	ch := &Chart{
		mp:     mp,
		title:  c.Title,
		theme:  themeName,
		option: string(optJSON),
		tips:   string(tipsJSON),
	}
	ch.width, ch.height = mp.Size()
	return ch, nil
}

func tipsPayload(t spec.TooltipTable) map[string]interface{} {
	out := map[string]interface{}{}
	if len(t.Axis) > 0 {
		out["axis"] = t.Axis
	}
	if len(t.Items) > 0 {
		out["items"] = t.Items
	}
	if len(t.Names) > 0 {
		out["names"] = t.Names
	}
	return out
}

// Head returns the page head markup: the library, the runtime and every
// registered theme.
func (b *Backend) Head() template.HTML {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<script src=%q></script>\n<script>%s\n", b.cdn, runtimeJS)
	names := b.themes.Names()
	sort.Strings(names)
	for _, name := range names {
		def, _ := b.themes.Lookup(name)
		js, err := json.Marshal(def)
		if err != nil {
			continue
		}
		nameJSON, _ := json.Marshal(name)
		fmt.Fprintf(&sb, "echarts.registerTheme(%s, %s);\n", nameJSON, js)
	}
	sb.WriteString("</script>")
	return template.HTML(sb.String())
}

// Footer returns the markup that installs the page resize listener.
func (b *Backend) Footer() template.HTML {
	return template.HTML(listenScript(b.window))
}

// Chart is one mounted ECharts instance.
type Chart struct {
	mp     registry.MountPoint
	title  string
	theme  string
	option string
	tips   string

	mu       sync.Mutex
	width    int
	height   int
	resizes  int
	disposed bool
}

// Target implements registry.Instance.
func (c *Chart) Target() string { return c.mp.ID() }

// Resize implements registry.Instance: it picks up the mount point's
// current size.
func (c *Chart) Resize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return ErrDisposed
	}
	c.width, c.height = c.mp.Size()
	c.resizes++
	return nil
}

// Dispose implements registry.Instance.
func (c *Chart) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
}

// IsDisposed implements registry.Instance.
func (c *Chart) IsDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// Size returns the size the chart was last laid out at.
func (c *Chart) Size() (width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}

// Resizes returns how many times the chart was resized.
func (c *Chart) Resizes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resizes
}

// Option returns the option JSON.
func (c *Chart) Option() string { return c.option }

// Snippet renders the chart fragment at its current size.
func (c *Chart) Snippet() Snippet {
	c.mu.Lock()
	height := c.height
	c.mu.Unlock()

	id := c.mp.ID()
	idJSON, _ := json.Marshal(id)
	themeJSON, _ := json.Marshal(c.theme)
	div := fmt.Sprintf("<div id=\"%s\" style=\"width:100%%;height:%dpx;\"></div>", template.HTMLEscapeString(id), height)
	script := fmt.Sprintf("<script>window.marketdash.mount(%s,%s,%s,%s);</script>", idJSON, themeJSON, c.option, c.tips)
	return Snippet{ID: id, Title: c.title, Div: div, Script: script, HTML: div + "\n" + script}
}
