package page

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown engines selectable with MARKDOWN_ENGINE.
const (
	EngineGoldmark   = "goldmark"
	EngineGomarkdown = "gomarkdown"
)

// Markdown renders region notes to HTML.
type Markdown interface {
	Render(src string) (template.HTML, error)
}

// NewMarkdown returns the renderer for engine. An empty engine selects
// goldmark.
func NewMarkdown(engine string) (Markdown, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineGoldmark:
		return newGoldmark(), nil
	case EngineGomarkdown:
		return gomarkdownRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown markdown engine %q", engine)
}

type goldmarkRenderer struct {
	md goldmark.Markdown
}

func newGoldmark() goldmarkRenderer {
	return goldmarkRenderer{md: goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)}
}

func (g goldmarkRenderer) Render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

type gomarkdownRenderer struct{}

func (gomarkdownRenderer) Render(src string) (template.HTML, error) {
	p := mdparser.NewWithExtensions(mdparser.CommonExtensions | mdparser.AutoHeadingIDs)
	doc := p.Parse([]byte(src))
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank | mdhtml.SkipHTML})
	return template.HTML(markdown.Render(doc, renderer)), nil
}
