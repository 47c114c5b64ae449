// Command dashctl builds the S&P 500 market intelligence dashboard: the
// interactive ECharts page, static PNG charts, standalone HTML chart pages
// or an Excel workbook.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"marketdash/internal/config"
	"marketdash/internal/logger"
	"marketdash/internal/storage"
	"marketdash/internal/telemetry"
	"marketdash/internal/theme"
)

// app is the state shared by every subcommand once the root has loaded
// configuration.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	store   storage.Client
	rec     *telemetry.Recorder
	metrics *metricsDump
	theme   *theme.Theme
}

var (
	showMetrics bool
	state       app
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashctl",
		Short: "Build the S&P 500 market intelligence dashboard",
		Long: `dashctl renders the sixteen dashboard charts with one shared theme.
Configuration comes from the environment (OUTPUT_DIR, DEPLOYMENT_MODE,
VIEWPORT_WIDTH, DISABLED_SECTIONS, ...).`,
		SilenceUsage:       true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "Print lifecycle counters after the command")

	rootCmd.AddCommand(newRenderCmd(), newExportCmd(), newCatalogCmd(), newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	t := theme.Get()
	if cfg.ThemeName != t.Name {
		return fmt.Errorf("unknown theme %q (available: %s)", cfg.ThemeName, t.Name)
	}

	state = app{cfg: cfg, log: logger.Component("dashctl"), theme: t}
	if showMetrics {
		state.metrics = newMetricsDump()
		state.rec, err = telemetry.New(state.metrics.provider, nil)
		if err != nil {
			return err
		}
	} else {
		state.rec = telemetry.Default()
	}
	return nil
}

// storeClient opens the configured sink on first use; catalog never needs
// one.
func (a *app) storeClient(ctx context.Context) (storage.Client, error) {
	if a.store != nil {
		return a.store, nil
	}
	c, err := storage.NewClient(ctx, a.cfg)
	if err != nil {
		return nil, err
	}
	a.store = c
	return c, nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	if state.metrics != nil {
		if err := state.metrics.Print(cmd.Context(), cmd.OutOrStdout()); err != nil {
			state.log.Warn("Failed to collect metrics", logger.Fields{"error": err.Error()})
		}
	}
	if state.store != nil {
		return state.store.Close()
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.GetVersion())
			return nil
		},
	}
}
