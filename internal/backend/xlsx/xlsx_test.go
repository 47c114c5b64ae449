package xlsx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"marketdash/internal/charts"
	"marketdash/internal/datasets"
	"marketdash/internal/theme"
)

type mountPoint struct {
	id   string
	w, h int
}

func (m *mountPoint) ID() string       { return m.id }
func (m *mountPoint) Size() (int, int) { return m.w, m.h }

func TestEveryChartGetsASheet(t *testing.T) {
	b := New()
	defer b.Close()
	for _, d := range charts.Catalog() {
		_, err := b.Init(&mountPoint{id: d.Target, w: 800, h: 400}, theme.Name, d.Build(theme.Get()))
		require.NoError(t, err, d.Target)
	}
	assert.Len(t, b.Sheets(), len(charts.Catalog()))

	data, err := b.Bytes()
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	first, err := f.GetCellValue(IndexSheet, "A2")
	require.NoError(t, err)
	assert.NotEmpty(t, first)
	title, err := f.GetCellValue("fedRateChart", "A1")
	require.NoError(t, err)
	assert.NotEmpty(t, title)
}

func TestCategoricalSheetLayout(t *testing.T) {
	b := New()
	defer b.Close()
	c := charts.BuildAnnualReturns(datasets.Returns(), theme.Get())
	_, err := b.Init(&mountPoint{id: "annualReturnsChart"}, theme.Name, c)
	require.NoError(t, err)

	cat, ok := c.CategoryAxis()
	require.True(t, ok)
	got, err := b.file.GetCellValue("annualReturnsChart", "A3")
	require.NoError(t, err)
	assert.Equal(t, cat.Categories[0], got)
	name, err := b.file.GetCellValue("annualReturnsChart", "B2")
	require.NoError(t, err)
	assert.Equal(t, c.Series[0].Name, name)
}

func TestDisposeRemovesSheet(t *testing.T) {
	b := New()
	defer b.Close()
	inst, err := b.Init(&mountPoint{id: "fedRateChart"}, theme.Name, charts.BuildFedRate(datasets.Rates(), theme.Get()))
	require.NoError(t, err)

	inst.Dispose()
	assert.True(t, inst.IsDisposed())
	assert.Empty(t, b.Sheets())
	assert.True(t, errors.Is(inst.Resize(), ErrDisposed))
}

func TestStaleDisposeKeepsRemountedSheet(t *testing.T) {
	b := New()
	defer b.Close()
	mp := &mountPoint{id: "fedRateChart"}
	c := charts.BuildFedRate(datasets.Rates(), theme.Get())
	old, err := b.Init(mp, theme.Name, c)
	require.NoError(t, err)
	_, err = b.Init(mp, theme.Name, c)
	require.NoError(t, err)

	old.Dispose()
	assert.Equal(t, []string{"fedRateChart"}, b.Sheets())
}

func TestResizeRecordsSize(t *testing.T) {
	b := New()
	defer b.Close()
	mp := &mountPoint{id: "fedRateChart", w: 800, h: 400}
	inst, err := b.Init(mp, theme.Name, charts.BuildFedRate(datasets.Rates(), theme.Get()))
	require.NoError(t, err)

	mp.w = 500
	require.NoError(t, inst.Resize())
	w, h := inst.(*Sheet).Size()
	assert.Equal(t, 500, w)
	assert.Equal(t, 400, h)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "2997FF", hexColor("#2997ff"))
	assert.Equal(t, "2997FF", hexColor("rgba(41, 151, 255, 0.5)"))
	assert.Empty(t, hexColor("nonsense"))
	assert.Empty(t, hexColor("rgba(1,2)"))
}

func TestSheetNameIsTruncated(t *testing.T) {
	assert.Len(t, sheetName("aVeryLongChartTargetNameThatExceedsExcel"), maxSheetName)
	assert.Equal(t, "mag7Chart", sheetName("mag7Chart"))
}
