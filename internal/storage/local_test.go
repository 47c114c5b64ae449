package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestClient(t *testing.T) *LocalClient {
	t.Helper()
	client, err := NewLocalClient(filepath.Join(t.TempDir(), "dist"))
	if err != nil {
		t.Fatalf("Failed to create LocalClient: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNewLocalClient(t *testing.T) {
	client := newTestClient(t)
	if _, err := os.Stat(client.BaseDir()); err != nil {
		t.Errorf("base directory was not created: %v", err)
	}
}

func TestLocalClient_StoreAndGetFile(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		path string
		data []byte
	}{
		{"top level file", "index.html", []byte("<html></html>")},
		{"nested file", "dashboards/2026/10/16/charts.xlsx", []byte{0x50, 0x4b}},
		{"empty file", "empty.txt", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.StoreFile(ctx, tt.path, tt.data); err != nil {
				t.Fatalf("StoreFile() error = %v", err)
			}
			got, err := client.GetFile(ctx, tt.path)
			if err != nil {
				t.Fatalf("GetFile() error = %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("GetFile() = %q, want %q", got, tt.data)
			}
			exists, err := client.FileExists(ctx, tt.path)
			if err != nil || !exists {
				t.Errorf("FileExists() = %v, %v, want true, nil", exists, err)
			}
		})
	}
}

func TestLocalClient_GetMissingFile(t *testing.T) {
	client := newTestClient(t)
	_, err := client.GetFile(context.Background(), "missing.html")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetFile() error = %v, want ErrNotFound", err)
	}
	exists, err := client.FileExists(context.Background(), "missing.html")
	if err != nil || exists {
		t.Errorf("FileExists() = %v, %v, want false, nil", exists, err)
	}
}

func TestLocalClient_RejectsEscapingPaths(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	for _, p := range []string{"../outside.html", "a/../../outside.html", "/etc/passwd"} {
		if err := client.StoreFile(ctx, p, []byte("x")); err == nil {
			t.Errorf("StoreFile(%q) succeeded, want error", p)
		}
	}
}

func TestLocalClient_ListDir(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	for _, p := range []string{"a/index.html", "a/b/charts.png", "a/b/c/deep.png", "z.txt"} {
		if err := client.StoreFile(ctx, p, []byte("x")); err != nil {
			t.Fatalf("StoreFile(%q) error = %v", p, err)
		}
	}
	if err := client.CreateDir(ctx, "a/empty"); err != nil {
		t.Fatalf("CreateDir() error = %v", err)
	}

	tests := []struct {
		name      string
		dir       string
		recursive bool
		want      []string
	}{
		{"flat", "a", false, []string{"a/index.html"}},
		{"recursive", "a", true, []string{"a/b/c/deep.png", "a/b/charts.png", "a/index.html"}},
		{"missing directory", "nope", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.ListDir(ctx, tt.dir, tt.recursive)
			if err != nil {
				t.Fatalf("ListDir() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ListDir() = %v, want %v", got, tt.want)
			}
		})
	}
}
