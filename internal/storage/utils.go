package storage

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"
)

// IndexFile is the page every dashboard folder holds.
const IndexFile = "index.html"

// DashboardRoot is the prefix every generated dashboard lives under.
const DashboardRoot = "dashboards"

// GenerateDashboardFolderPath generates a consistent folder path for one build
// Format: dashboards/YYYY/MM/DD/MarketDashboard-YYYY-MM-DD-HH-MM-SS
func GenerateDashboardFolderPath(timestamp time.Time) string {
	t := timestamp.UTC()
	return fmt.Sprintf("%s/%04d/%02d/%02d/MarketDashboard-%04d-%02d-%02d-%02d-%02d-%02d",
		DashboardRoot,
		t.Year(), t.Month(), t.Day(),
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second())
}

// GetContentType determines the MIME content type based on file extension
func GetContentType(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain"
	case ".html":
		return "text/html"
	case ".css":
		return "text/css"
	case ".js":
		return "text/javascript"
	case ".md":
		return "text/markdown"
	case ".png":
		return "image/png"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// ListDashboards returns the index pages of stored dashboards, newest first.
// A limit of zero or less returns all of them.
func ListDashboards(ctx context.Context, c Client, limit int) ([]string, error) {
	files, err := c.ListDir(ctx, DashboardRoot, true)
	if err != nil {
		return nil, err
	}
	var pages []string
	for _, f := range files {
		if path.Base(f) == IndexFile {
			pages = append(pages, f)
		}
	}
	// Folder names embed the build time, so lexical order is time order.
	sort.Sort(sort.Reverse(sort.StringSlice(pages)))
	if limit > 0 && limit < len(pages) {
		pages = pages[:limit]
	}
	return pages, nil
}

// LatestDashboard returns the index page of the newest stored dashboard.
func LatestDashboard(ctx context.Context, c Client) (string, error) {
	pages, err := ListDashboards(ctx, c, 1)
	if err != nil {
		return "", err
	}
	if len(pages) == 0 {
		return "", fmt.Errorf("%w: no dashboards under %s", ErrNotFound, DashboardRoot)
	}
	return pages[0], nil
}
