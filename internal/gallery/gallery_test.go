package gallery

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/chartboard/internal/model"
	"exusiai.dev/chartboard/internal/pkg/i18n"
)

func env(locale string) Env {
	return Env{Trans: i18n.Translator(locale), Seed: DefaultSeed}
}

func TestCatalogOrder(t *testing.T) {
	sections := Catalog()
	require.Len(t, sections, 6)

	want := [][]string{
		{"line-sin", "line-sin-cos"},
		{"bar-categories"},
		{"scatter-random", "scatter-trend"},
		{"hist-normal"},
		{"pie-composition", "pie-transactions"},
		{"box-groups"},
	}
	for i, s := range sections {
		assert.Equal(t, i+1, s.Index)
		assert.Equal(t, want[i], s.Charts)
	}
}

func TestEveryChartBuildsAndValidates(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Charts() {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true

		fig, err := Build(c.ID, env(i18n.LocaleKorean))
		require.NoError(t, err)
		assert.NoError(t, fig.Validate())
		assert.Equal(t, c.Kind, fig.Kind)
		assert.NotEmpty(t, fig.Title)
		assert.NotEqual(t, TitleKey(c.ID), fig.Title)
	}
}

func TestSampleLengths(t *testing.T) {
	e := env(i18n.LocaleKorean)

	fig, _ := Build("line-sin-cos", e)
	require.Len(t, fig.Series, 2)
	for _, s := range fig.Series {
		assert.Len(t, s.(*model.LineSeries).X, 100)
		assert.Len(t, s.(*model.LineSeries).Y, 100)
	}

	fig, _ = Build("scatter-random", e)
	sc := fig.Series[0].(*model.ScatterSeries)
	assert.Len(t, sc.X, 100)
	assert.Len(t, sc.Y, 100)
	assert.Len(t, sc.Values, 100)

	fig, _ = Build("scatter-trend", e)
	assert.Len(t, fig.Series[0].(*model.ScatterSeries).X, 50)
	assert.Len(t, fig.Series[1].(*model.LineSeries).Y, 50)

	fig, _ = Build("hist-normal", e)
	assert.Len(t, fig.Series[0].(*model.HistogramSeries).Values, 1000)

	fig, _ = Build("box-groups", e)
	box := fig.Series[0].(*model.BoxSeries)
	require.Len(t, box.Groups, 4)
	for _, g := range box.Groups {
		assert.Len(t, g, 100)
	}
}

func TestBarCategories(t *testing.T) {
	fig, err := Build("bar-categories", env(i18n.LocaleKorean))
	require.NoError(t, err)

	bar := fig.Series[0].(*model.BarSeries)
	assert.Equal(t, []string{"데이터1", "데이터2", "데이터3", "데이터4", "데이터5"}, bar.Categories)
	assert.Equal(t, []float64{45, 38, 52, 41, 58}, bar.Values)
	assert.Equal(t, &model.Range{Min: 0, Max: 70}, fig.YRange)
	assert.Equal(t, "카테고리별 데이터 비교", fig.Title)
}

func TestPieLabels(t *testing.T) {
	fig, err := Build("pie-composition", env(i18n.LocaleKorean))
	require.NoError(t, err)
	assert.Equal(t, []string{"항목A", "항목B", "항목C", "항목D"}, fig.Series[0].(*model.PieSeries).Labels)

	fig, err = Build("pie-transactions", env(i18n.LocaleEnglish))
	require.NoError(t, err)
	pie := fig.Series[0].(*model.PieSeries)
	assert.Equal(t, []string{"Purchase", "Refund", "Return", "Other"}, pie.Labels)
	assert.Equal(t, []float64{0.05, 0, 0, 0}, pie.Explode)
}

func TestBuildIsReproducible(t *testing.T) {
	a, _ := Build("hist-normal", env(i18n.LocaleKorean))
	b, _ := Build("hist-normal", env(i18n.LocaleEnglish))
	assert.Equal(t, a.Series, b.Series)

	c, _ := Build("hist-normal", Env{Seed: 7})
	assert.NotEqual(t, a.Series, c.Series)
}

func TestTrendLineFitsData(t *testing.T) {
	fig, _ := Build("scatter-trend", env(i18n.LocaleKorean))
	trend := fig.Series[1].(*model.LineSeries)
	slope := (trend.Y[49] - trend.Y[0]) / 10
	assert.InDelta(t, 2, slope, 0.6)
	assert.True(t, trend.Dashed)
}

func TestBuildUnknown(t *testing.T) {
	_, err := Build("nope", env(i18n.LocaleKorean))
	assert.True(t, errors.Is(err, ErrUnknownChart))

	_, ok := Lookup("nope")
	assert.False(t, ok)
}
