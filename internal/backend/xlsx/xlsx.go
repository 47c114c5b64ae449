// Package xlsx renders chart specs into an Excel workbook: one sheet per
// chart holding its data and, where Excel has a matching type, a native
// chart.
package xlsx

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/xuri/excelize/v2"

	"marketdash/internal/registry"
	"marketdash/internal/spec"
)

// Name identifies the backend.
const Name = "xlsx"

// IndexSheet lists every chart sheet of the workbook.
const IndexSheet = "Index"

// maxSheetName is Excel's limit on sheet name length.
const maxSheetName = 31

// ErrDisposed is returned when a disposed sheet is resized.
var ErrDisposed = errors.New("xlsx: sheet disposed")

// Backend writes every mounted chart into one workbook. It implements
// registry.Backend.
type Backend struct {
	mu     sync.Mutex
	file   *excelize.File
	titles map[string]string
	owners map[string]*Sheet
}

// New returns a backend over an empty workbook.
func New() *Backend {
	f := excelize.NewFile()
	_ = f.SetSheetName("Sheet1", IndexSheet)
	return &Backend{file: f, titles: make(map[string]string), owners: make(map[string]*Sheet)}
}

// Name implements registry.Backend.
func (b *Backend) Name() string { return Name }

func sheetName(target string) string {
	if len(target) > maxSheetName {
		return target[:maxSheetName]
	}
	return target
}

// Init implements registry.Backend.
func (b *Backend) Init(mp registry.MountPoint, _ string, c *spec.ChartSpec) (registry.Instance, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	name := sheetName(mp.ID())
	if idx, _ := b.file.GetSheetIndex(name); idx >= 0 {
		if err := b.file.DeleteSheet(name); err != nil {
			return nil, fmt.Errorf("failed to replace sheet %s: %w", name, err)
		}
	}
	if _, err := b.file.NewSheet(name); err != nil {
		return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	w, h := mp.Size()
	if err := writeChart(b.file, name, c, w, h); err != nil {
		_ = b.file.DeleteSheet(name)
		return nil, fmt.Errorf("failed to write sheet %s: %w", name, err)
	}
	sh := &Sheet{backend: b, mp: mp, name: name, width: w, height: h}
	b.titles[name] = c.Title
	b.owners[name] = sh
	return sh, nil
}

// release deletes the sheet of sh unless a newer instance owns the name.
func (b *Backend) release(sh *Sheet) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.owners[sh.name] != sh {
		return
	}
	_ = b.file.DeleteSheet(sh.name)
	delete(b.titles, sh.name)
	delete(b.owners, sh.name)
}

// Sheets returns the chart sheets in workbook order.
func (b *Backend) Sheets() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []string
	for _, s := range b.file.GetSheetList() {
		if s != IndexSheet {
			out = append(out, s)
		}
	}
	return out
}

// Bytes refreshes the index sheet and returns the encoded workbook.
func (b *Backend) Bytes() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	names := make([]string, 0, len(b.titles))
	for n := range b.titles {
		names = append(names, n)
	}
	sort.Strings(names)
	if err := b.file.SetSheetRow(IndexSheet, "A1", &[]interface{}{"Sheet", "Chart"}); err != nil {
		return nil, err
	}
	for i, n := range names {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := b.file.SetSheetRow(IndexSheet, cell, &[]interface{}{n, b.titles[n]}); err != nil {
			return nil, err
		}
		_ = b.file.SetCellHyperLink(IndexSheet, cell, fmt.Sprintf("'%s'!A1", n), "Location")
	}

	buf, err := b.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Close releases the workbook.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.file.Close()
}

// Sheet is one chart instance in the workbook.
type Sheet struct {
	backend *Backend
	mp      registry.MountPoint
	name    string

	mu       sync.Mutex
	width    int
	height   int
	disposed bool
}

// Target implements registry.Instance.
func (s *Sheet) Target() string { return s.mp.ID() }

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// Resize implements registry.Instance. Workbook charts keep the size they
// were drawn at; the new size is recorded only.
func (s *Sheet) Resize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return ErrDisposed
	}
	s.width, s.height = s.mp.Size()
	return nil
}

// Dispose implements registry.Instance and removes the sheet.
func (s *Sheet) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	s.mu.Unlock()
	s.backend.release(s)
}

// IsDisposed implements registry.Instance.
func (s *Sheet) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Size returns the last recorded mount point size.
func (s *Sheet) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}
