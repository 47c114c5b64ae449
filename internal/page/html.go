package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"marketdash/internal/config"
)

//go:embed page.html.tmpl
var pageTemplate string

// Assets is what a backend contributes to the document.
type Assets struct {
	// Head is placed in <head>: library scripts, theme registration.
	Head template.HTML
	// Charts maps region ids to the chart markup placed in the region.
	Charts map[string]template.HTML
	// Footer runs after every region exists.
	Footer template.HTML
}

type regionView struct {
	Region
	Note  template.HTML
	Chart template.HTML
}

type sectionView struct {
	ID      string
	Title   string
	Regions []regionView
}

type templateData struct {
	Title       string
	GeneratedAt string
	Version     string
	Columns     int
	Sections    []sectionView
	Head        template.HTML
	Footer      template.HTML
}

// HTML assembles the page document. Region notes are rendered with md;
// regions without chart markup keep their empty container.
func (p *Page) HTML(md Markdown, a Assets, now time.Time) (string, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	data := templateData{
		Title:       p.Title,
		GeneratedAt: now.UTC().Format("2006-01-02 15:04:05 UTC"),
		Version:     config.GetVersion(),
		Columns:     p.Columns(),
		Head:        a.Head,
		Footer:      a.Footer,
	}
	bySection := make(map[string]int)
	for _, r := range p.Regions() {
		view := regionView{Region: r, Chart: a.Charts[r.ID]}
		if r.Note != "" && md != nil {
			note, err := md.Render(r.Note)
			if err != nil {
				return "", fmt.Errorf("region %s note: %w", r.ID, err)
			}
			view.Note = note
		}
		i, ok := bySection[r.Section]
		if !ok {
			i = len(data.Sections)
			bySection[r.Section] = i
			title := SectionTitles[r.Section]
			if title == "" {
				title = r.Section
			}
			data.Sections = append(data.Sections, sectionView{ID: r.Section, Title: title})
		}
		data.Sections[i].Regions = append(data.Sections[i].Regions, view)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
