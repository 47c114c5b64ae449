package main

import (
	"context"
	"fmt"
	"html/template"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"marketdash/internal/backend/echarts"
	"marketdash/internal/dashboard"
	"marketdash/internal/logger"
	"marketdash/internal/page"
	"marketdash/internal/registry"
	"marketdash/internal/storage"
)

const pageTitle = "S&P 500 Market Intelligence"

var (
	viewportFlag string
	latestCopy   bool
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the interactive ECharts dashboard page",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	cmd.Flags().StringVar(&viewportFlag, "viewport", "", "Resize the page to WxH after mounting, e.g. 1024x768")
	cmd.Flags().BoolVar(&latestCopy, "latest", true, "Also write the page as index.html at the output root")
	return cmd
}

// parseViewport reads "WxH".
func parseViewport(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid viewport %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid viewport width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid viewport height in %q", s)
	}
	return w, h, nil
}

func newPage() *page.Page {
	return page.New(pageTitle, page.DefaultRegions(state.cfg.SectionDisabled), state.cfg.ViewportWidth, state.cfg.ViewportHeight)
}

func newDashboard(pg *page.Page, be registry.Backend, opts ...dashboard.Option) *dashboard.Dashboard {
	base := []dashboard.Option{
		dashboard.WithTheme(state.theme),
		dashboard.WithViewport(pg),
		dashboard.WithDebounce(state.cfg.ResizeDebounce),
		dashboard.WithLogger(logger.Component("dashboard")),
		dashboard.WithRecorder(state.rec),
	}
	return dashboard.New(pg, be, append(base, opts...)...)
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := state.cfg

	pg := newPage()
	be := echarts.New(cfg.EChartsCDN, cfg.ResizeDebounce)
	d := newDashboard(pg, be)
	defer d.Close(context.WithoutCancel(ctx))

	report, err := d.InitAllCharts(ctx)
	if err != nil {
		return err
	}

	if viewportFlag != "" {
		w, h, err := parseViewport(viewportFlag)
		if err != nil {
			return err
		}
		if pg.SetViewport(w, h) {
			n := d.Coordinator().Flush(ctx)
			state.log.Info("Viewport resized", logger.Fields{"width": w, "height": h, "resized": n})
		}
	}

	assets := page.Assets{Head: be.Head(), Footer: be.Footer(), Charts: make(map[string]template.HTML)}
	for _, inst := range d.Registry().Instances() {
		if c, ok := inst.(*echarts.Chart); ok {
			assets.Charts[c.Target()] = template.HTML(c.Snippet().HTML)
		}
	}

	md, err := page.NewMarkdown(cfg.MarkdownEngine)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	doc, err := pg.HTML(md, assets, now)
	if err != nil {
		return err
	}

	store, err := state.storeClient(ctx)
	if err != nil {
		return err
	}
	target := path.Join(storage.GenerateDashboardFolderPath(now), storage.IndexFile)
	if err := store.StoreFile(ctx, target, []byte(doc)); err != nil {
		return err
	}
	if latestCopy {
		if err := store.StoreFile(ctx, storage.IndexFile, []byte(doc)); err != nil {
			return err
		}
	}

	state.log.Info("Dashboard rendered", logger.Fields{
		"path":    target,
		"mounted": len(report.Mounted),
		"skipped": len(report.Skipped),
		"took":    report.Duration.String(),
	})
	fmt.Fprintln(cmd.OutOrStdout(), target)
	return nil
}
