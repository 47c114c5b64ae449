package main

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/spf13/cobra"

	"marketdash/internal/backend/standalone"
	"marketdash/internal/backend/static"
	"marketdash/internal/backend/xlsx"
	"marketdash/internal/charts"
	"marketdash/internal/dashboard"
	"marketdash/internal/logger"
	"marketdash/internal/spec"
	"marketdash/internal/storage"
)

var exportFormat string

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the charts as PNG images, HTML pages or an Excel workbook",
		Args:  cobra.NoArgs,
		RunE:  runExport,
	}
	cmd.Flags().StringVarP(&exportFormat, "format", "f", static.Name, "Export format: png, html or xlsx")
	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store, err := state.storeClient(ctx)
	if err != nil {
		return err
	}
	dir := storage.GenerateDashboardFolderPath(time.Now())

	switch exportFormat {
	case static.Name:
		return exportPNG(ctx, cmd.OutOrStdout(), store, dir)
	case standalone.Name:
		return exportHTML(ctx, cmd.OutOrStdout(), store, dir)
	case xlsx.Name:
		return exportXLSX(ctx, cmd.OutOrStdout(), store, dir)
	default:
		return fmt.Errorf("invalid format: %s (must be png, html or xlsx)", exportFormat)
	}
}

// drawable keeps the catalog entries a backend can draw.
func drawable(supported func(*spec.ChartSpec) error) []charts.Definition {
	var out []charts.Definition
	for _, def := range charts.Catalog() {
		if err := supported(def.Build(state.theme)); err != nil {
			state.log.Info("Skipping chart", logger.Fields{"target": def.Target, "reason": err.Error()})
			continue
		}
		out = append(out, def)
	}
	return out
}

func exportPNG(ctx context.Context, out io.Writer, store storage.Client, dir string) error {
	pg := newPage()
	d := newDashboard(pg, static.New(), dashboard.WithCatalog(drawable(static.Supported)))
	defer d.Close(context.WithoutCancel(ctx))

	if _, err := d.InitAllCharts(ctx); err != nil {
		return err
	}
	written := 0
	for _, inst := range d.Registry().Instances() {
		img, ok := inst.(*static.Image)
		if !ok {
			continue
		}
		name := path.Join(dir, "charts", img.Target()+".png")
		if err := store.StoreFile(ctx, name, img.PNG()); err != nil {
			return err
		}
		written++
	}
	state.log.Info("PNG export complete", logger.Fields{"dir": dir, "charts": written})
	fmt.Fprintln(out, path.Join(dir, "charts"))
	return nil
}

func exportHTML(ctx context.Context, out io.Writer, store storage.Client, dir string) error {
	pg := newPage()
	d := newDashboard(pg, standalone.New(), dashboard.WithCatalog(drawable(standalone.Supported)))
	defer d.Close(context.WithoutCancel(ctx))

	if _, err := d.InitAllCharts(ctx); err != nil {
		return err
	}
	written := 0
	for _, inst := range d.Registry().Instances() {
		p, ok := inst.(*standalone.Page)
		if !ok {
			continue
		}
		name := path.Join(dir, "charts", p.Target()+".html")
		if err := store.StoreFile(ctx, name, p.HTML()); err != nil {
			return err
		}
		written++
	}
	state.log.Info("HTML export complete", logger.Fields{"dir": dir, "charts": written})
	fmt.Fprintln(out, path.Join(dir, "charts"))
	return nil
}

func exportXLSX(ctx context.Context, out io.Writer, store storage.Client, dir string) error {
	pg := newPage()
	be := xlsx.New()
	defer be.Close()
	d := newDashboard(pg, be)

	if _, err := d.InitAllCharts(ctx); err != nil {
		d.Close(ctx)
		return err
	}
	// Closing the dashboard disposes every sheet, so encode first.
	data, err := be.Bytes()
	d.Close(ctx)
	if err != nil {
		return err
	}

	name := path.Join(dir, "charts.xlsx")
	if err := store.StoreFile(ctx, name, data); err != nil {
		return err
	}
	state.log.Info("Workbook export complete", logger.Fields{"path": name, "bytes": len(data)})
	fmt.Fprintln(out, name)
	return nil
}
