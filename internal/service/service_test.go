package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/gallery"
	"exusiai.dev/chartboard/internal/model"
	"exusiai.dev/chartboard/internal/pkg/fontreg"
)

func testConfig() *appconfig.Config {
	return &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		RenderDPI:         40,
		RenderConcurrency: 2,
		SampleSeed:        gallery.DefaultSeed,
		DefaultLocale:     "ko",
		EnabledLocales:    []string{"ko", "en"},
		ChartCacheTTL:     time.Minute,
	}}
}

type services struct {
	conf    *appconfig.Config
	fonts   *fontreg.Registry
	gallery *Gallery
	chart   *Chart
	export  *Export
}

func newServices(t *testing.T) *services {
	t.Helper()
	conf := testConfig()
	fonts, err := fontreg.Load(fontreg.Options{Path: filepath.Join(t.TempDir(), "missing.ttf")})
	require.NoError(t, err)
	t.Cleanup(func() { fonts.Close() })

	g := NewGallery(conf)
	c := NewChart(conf, g, NewRenderer(conf, fonts), nil)
	return &services{
		conf:    conf,
		fonts:   fonts,
		gallery: g,
		chart:   c,
		export:  NewExport(g, c, conf, nil, nil),
	}
}

func TestGalleryPage(t *testing.T) {
	s := newServices(t)

	page := s.gallery.Page(context.Background(), "en", 7)
	assert.Equal(t, "en", page.Locale)
	assert.Equal(t, LayoutWide, page.Layout)
	assert.Equal(t, NoticeIcon, page.Notice.Icon)
	assert.NotEmpty(t, page.Title)
	require.Len(t, page.Sections, 6)

	for i, sec := range page.Sections {
		assert.Equal(t, i+1, sec.Index)
	}
	assert.Len(t, page.Sections[0].Charts, 2)
	assert.Len(t, page.Sections[1].Charts, 1)

	ref := page.Sections[1].Charts[0]
	assert.Equal(t, "bar-categories", ref.ID)
	assert.Equal(t, "/charts/bar-categories.png?lang=en&seed=7", ref.ImageURL)
	assert.Equal(t, 400, ref.Width)
	assert.Equal(t, 200, ref.Height)
}

func TestGalleryPageFallsBackToDefaultLocale(t *testing.T) {
	s := newServices(t)

	page := s.gallery.Page(context.Background(), "fr", 42)
	assert.Equal(t, "ko", page.Locale)
	assert.True(t, strings.Contains(page.Sections[0].Charts[0].ImageURL, "lang=ko"))
}

func TestChartRenderIsCached(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	first, err := s.chart.Render(ctx, "line-sin", "ko", 42)
	require.NoError(t, err)
	assert.NotEmpty(t, first.PNG)
	assert.NotEmpty(t, first.ETag)
	assert.Equal(t, "ko", first.Locale)

	second, err := s.chart.Render(ctx, "line-sin", "ko", 42)
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := s.chart.Render(ctx, "line-sin", "en", 42)
	require.NoError(t, err)
	assert.NotSame(t, first, other)

	n, err := s.chart.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	third, err := s.chart.Render(ctx, "line-sin", "ko", 42)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, first.ETag, third.ETag)
}

func TestChartRenderUnknown(t *testing.T) {
	s := newServices(t)

	_, err := s.chart.Render(context.Background(), "nope", "ko", 42)
	assert.True(t, errors.Is(err, gallery.ErrUnknownChart))
}

func TestHealthPing(t *testing.T) {
	s := newServices(t)

	assert.NoError(t, NewHealth(s.fonts, nil).Ping(context.Background()))
	assert.True(t, errors.Is(NewHealth(nil, nil).Ping(context.Background()), ErrFontsNotLoaded))
}

func TestFigureColumns(t *testing.T) {
	fig := &model.Figure{Series: []model.Series{
		&model.LineSeries{Label: "sin(x)", X: []float64{0, 1}, Y: []float64{0, 0.8}},
		&model.BoxSeries{Labels: []string{"A", "B"}, Groups: [][]float64{{1, 2}, {3}}},
	}}

	cols := figureColumns(fig)
	require.Len(t, cols, 4)
	assert.Equal(t, "sin(x) x", cols[0].header)
	assert.Equal(t, "sin(x) y", cols[1].header)
	assert.Equal(t, "A", cols[2].header)
	assert.Equal(t, []any{3.0}, cols[3].values)
}

func TestExportRun(t *testing.T) {
	s := newServices(t)
	dir := t.TempDir()

	res, err := s.export.Run(context.Background(), ExportOptions{
		OutDir:  dir,
		Locales: []string{"en"},
		Seed:    42,
	})
	require.NoError(t, err)
	assert.False(t, res.Uploaded)
	assert.Len(t, res.Manifest.RunID, 26)
	assert.Equal(t, []string{"en"}, res.Manifest.Locales)
	// every chart, the page and the workbook
	assert.Len(t, res.Manifest.Files, len(gallery.Charts())+2)

	for _, c := range gallery.Charts() {
		assert.FileExists(t, filepath.Join(dir, "en", c.ID+".png"))
	}

	b, err := os.ReadFile(filepath.Join(dir, FileManifest))
	require.NoError(t, err)
	var manifest Manifest
	require.NoError(t, json.Unmarshal(b, &manifest))
	assert.Equal(t, res.Manifest.RunID, manifest.RunID)

	b, err = os.ReadFile(filepath.Join(dir, "en", FilePage))
	require.NoError(t, err)
	var page model.Page
	require.NoError(t, json.Unmarshal(b, &page))
	assert.Equal(t, "en", page.Locale)

	wb, err := excelize.OpenFile(filepath.Join(dir, FileWorkbook))
	require.NoError(t, err)
	defer wb.Close()
	assert.Equal(t, len(gallery.Charts()), len(wb.GetSheetList()))
	v, err := wb.GetCellValue("bar-categories", "A1")
	require.NoError(t, err)
	assert.Equal(t, "category", v)
}

func TestExportRejects(t *testing.T) {
	s := newServices(t)

	_, err := s.export.Run(context.Background(), ExportOptions{OutDir: t.TempDir(), Upload: true})
	assert.True(t, errors.Is(err, ErrExportUploadUnavailable))

	_, err = s.export.Run(context.Background(), ExportOptions{OutDir: t.TempDir(), Locales: []string{"fr"}})
	assert.Error(t, err)
}
