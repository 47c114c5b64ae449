package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestGenerateDashboardFolderPath(t *testing.T) {
	tests := []struct {
		name      string
		timestamp time.Time
		expected  string
	}{
		{
			name:      "standard date and time",
			timestamp: time.Date(2026, 10, 16, 14, 30, 45, 0, time.UTC),
			expected:  "dashboards/2026/10/16/MarketDashboard-2026-10-16-14-30-45",
		},
		{
			name:      "new year date",
			timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expected:  "dashboards/2025/01/01/MarketDashboard-2025-01-01-00-00-00",
		},
		{
			name:      "leap year date",
			timestamp: time.Date(2024, 2, 29, 12, 15, 30, 0, time.UTC),
			expected:  "dashboards/2024/02/29/MarketDashboard-2024-02-29-12-15-30",
		},
		{
			name:      "non UTC input is normalized",
			timestamp: time.Date(2025, 3, 5, 8, 7, 6, 0, time.FixedZone("EST", -5*3600)),
			expected:  "dashboards/2025/03/05/MarketDashboard-2025-03-05-13-07-06",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateDashboardFolderPath(tt.timestamp); got != tt.expected {
				t.Errorf("GenerateDashboardFolderPath() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGetContentType(t *testing.T) {
	tests := map[string]string{
		"index.html":      "text/html",
		"data.JSON":       "application/json",
		"chart.png":       "image/png",
		"charts.xlsx":     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"notes.md":        "text/markdown",
		"runtime.js":      "text/javascript",
		"no-extension":    "application/octet-stream",
		"archive.tar.bin": "application/octet-stream",
	}
	for name, want := range tests {
		if got := GetContentType(name); got != want {
			t.Errorf("GetContentType(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestListDashboards(t *testing.T) {
	client, err := NewLocalClient(filepath.Join(t.TempDir(), "dist"))
	if err != nil {
		t.Fatalf("NewLocalClient() error = %v", err)
	}
	ctx := context.Background()

	if _, err := LatestDashboard(ctx, client); !errors.Is(err, ErrNotFound) {
		t.Errorf("LatestDashboard() on empty store error = %v, want ErrNotFound", err)
	}

	times := []time.Time{
		time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
	}
	for _, ts := range times {
		dir := GenerateDashboardFolderPath(ts)
		if err := client.StoreFile(ctx, dir+"/"+IndexFile, []byte("<html></html>")); err != nil {
			t.Fatalf("StoreFile() error = %v", err)
		}
		if err := client.StoreFile(ctx, dir+"/charts.xlsx", []byte("x")); err != nil {
			t.Fatalf("StoreFile() error = %v", err)
		}
	}

	got, err := ListDashboards(ctx, client, 2)
	if err != nil {
		t.Fatalf("ListDashboards() error = %v", err)
	}
	want := []string{
		GenerateDashboardFolderPath(times[1]) + "/" + IndexFile,
		GenerateDashboardFolderPath(times[2]) + "/" + IndexFile,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListDashboards() = %v, want %v", got, want)
	}

	latest, err := LatestDashboard(ctx, client)
	if err != nil || latest != want[0] {
		t.Errorf("LatestDashboard() = %q, %v, want %q", latest, err, want[0])
	}
}
