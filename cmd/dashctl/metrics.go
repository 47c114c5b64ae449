package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// metricsDump collects the lifecycle counters in process so they can be
// printed when the command ends.
type metricsDump struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
}

func newMetricsDump() *metricsDump {
	reader := sdkmetric.NewManualReader()
	return &metricsDump{
		reader:   reader,
		provider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
	}
}

// Totals sums every int64 counter across its attribute sets.
func (m *metricsDump) Totals(ctx context.Context) (map[string]int64, error) {
	var rm metricdata.ResourceMetrics
	if err := m.reader.Collect(ctx, &rm); err != nil {
		return nil, err
	}
	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, mt := range sm.Metrics {
			sum, ok := mt.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[mt.Name] += dp.Value
			}
		}
	}
	return totals, nil
}

// Print writes one "name value" line per counter, sorted by name.
func (m *metricsDump) Print(ctx context.Context, w io.Writer) error {
	totals, err := m.Totals(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(totals))
	for n := range totals {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(w, "%-32s %d\n", n, totals[n])
	}
	return m.provider.Shutdown(ctx)
}
