package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"marketdash/internal/backend/standalone"
	"marketdash/internal/backend/static"
	"marketdash/internal/charts"
	"marketdash/internal/spec"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the dashboard charts with their kind and validation status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TARGET\tSECTION\tKIND\tSPEC\tPNG\tHTML\tTITLE")
			invalid := 0
			for _, def := range charts.Catalog() {
				c := def.Build(state.theme)
				status := "ok"
				if err := c.Validate(); err != nil {
					status = err.Error()
					invalid++
				}
				disabled := ""
				if state.cfg.SectionDisabled(def.Section) {
					disabled = " (disabled)"
				}
				fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\t%s\t%s\t%s\n", def.Target, def.Section, disabled, c.Kind, status,
					yesNo(static.Supported, c), yesNo(standalone.Supported, c), def.Title)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%d chart specs failed validation", invalid)
			}
			return nil
		},
	}
}

func yesNo(supported func(*spec.ChartSpec) error, c *spec.ChartSpec) string {
	if supported(c) != nil {
		return "no"
	}
	return "yes"
}
