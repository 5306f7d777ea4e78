// Package gallery defines the canned chart examples shown on the dashboard,
// in display order.
package gallery

import (
	"math"
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/pkg/errors"

	"exusiai.dev/chartboard/internal/model"
	"exusiai.dev/chartboard/internal/pkg/i18n"
	"exusiai.dev/chartboard/internal/pkg/sample"
)

var ErrUnknownChart = errors.New("unknown chart")

// DefaultSeed reproduces the seed the examples were first drawn with.
const DefaultSeed = 42

// Env carries what a chart needs to build its figure.
type Env struct {
	Trans ut.Translator
	Seed  uint64
}

func (e Env) t(key string, params ...string) string {
	return i18n.T(e.Trans, key, params...)
}

type Chart struct {
	ID      string
	Section int
	Kind    model.Kind
	Size    model.Size

	build func(env Env) *model.Figure
}

type Section struct {
	Index  int
	Key    string
	Charts []string
}

var (
	sizeHalf = model.Size{Width: 8, Height: 5}
	sizeWide = model.Size{Width: 10, Height: 5}
	sizePie  = model.Size{Width: 8, Height: 6}
)

var charts = []Chart{
	{ID: "line-sin", Section: 1, Kind: model.KindLine, Size: sizeHalf, build: lineSin},
	{ID: "line-sin-cos", Section: 1, Kind: model.KindLine, Size: sizeHalf, build: lineSinCos},
	{ID: "bar-categories", Section: 2, Kind: model.KindBar, Size: sizeWide, build: barCategories},
	{ID: "scatter-random", Section: 3, Kind: model.KindScatter, Size: sizeHalf, build: scatterRandom},
	{ID: "scatter-trend", Section: 3, Kind: model.KindScatter, Size: sizeHalf, build: scatterTrend},
	{ID: "hist-normal", Section: 4, Kind: model.KindHistogram, Size: sizeWide, build: histNormal},
	{ID: "pie-composition", Section: 5, Kind: model.KindPie, Size: sizePie, build: pieComposition},
	{ID: "pie-transactions", Section: 5, Kind: model.KindPie, Size: sizePie, build: pieTransactions},
	{ID: "box-groups", Section: 6, Kind: model.KindBox, Size: sizeWide, build: boxGroups},
}

var index = func() map[string]int {
	m := make(map[string]int, len(charts))
	for i, c := range charts {
		m[c.ID] = i
	}
	return m
}()

// Charts returns every chart in display order.
func Charts() []Chart {
	out := make([]Chart, len(charts))
	copy(out, charts)
	return out
}

// Catalog groups the charts into their numbered sections.
func Catalog() []Section {
	var sections []Section
	for _, c := range charts {
		if n := len(sections); n == 0 || sections[n-1].Index != c.Section {
			sections = append(sections, Section{Index: c.Section, Key: "section." + strconv.Itoa(c.Section)})
		}
		last := &sections[len(sections)-1]
		last.Charts = append(last.Charts, c.ID)
	}
	return sections
}

func Lookup(id string) (Chart, bool) {
	i, ok := index[id]
	if !ok {
		return Chart{}, false
	}
	return charts[i], true
}

// Build creates the figure for chart id.
func Build(id string, env Env) (*model.Figure, error) {
	c, ok := Lookup(id)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownChart, "chart %q", id)
	}
	if env.Trans == nil {
		env.Trans = i18n.Translator("")
	}
	fig := c.build(env)
	fig.ID = c.ID
	fig.Kind = c.Kind
	fig.Size = c.Size
	fig.Title = env.t(TitleKey(c.ID))
	return fig, nil
}

// TitleKey is the translation key of a chart's title.
func TitleKey(id string) string {
	return "chart." + id + ".title"
}

func lineSin(env Env) *model.Figure {
	x := sample.Linspace(0, 10, 100)
	return &model.Figure{
		XLabel: env.t(i18n.KeyAxisX),
		YLabel: env.t(i18n.KeyAxisY),
		Grid:   model.GridBoth,
		Legend: true,
		Series: []model.Series{
			&model.LineSeries{Label: "sin(x)", X: x, Y: sample.Map(x, math.Sin), Color: "blue", Width: 2},
		},
	}
}

func lineSinCos(env Env) *model.Figure {
	x := sample.Linspace(0, 10, 100)
	return &model.Figure{
		XLabel: env.t(i18n.KeyAxisX),
		YLabel: env.t(i18n.KeyAxisY),
		Grid:   model.GridBoth,
		Legend: true,
		Series: []model.Series{
			&model.LineSeries{Label: "sin(x)", X: x, Y: sample.Map(x, math.Sin), Width: 2},
			&model.LineSeries{Label: "cos(x)", X: x, Y: sample.Map(x, math.Cos), Width: 2},
		},
	}
}

func barCategories(env Env) *model.Figure {
	values := []float64{45, 38, 52, 41, 58}
	categories := make([]string, len(values))
	for i := range categories {
		categories[i] = env.t("bar.category", strconv.Itoa(i+1))
	}
	return &model.Figure{
		YLabel: env.t(i18n.KeyAxisValue),
		YRange: &model.Range{Min: 0, Max: 70},
		Series: []model.Series{
			&model.BarSeries{
				Categories: categories,
				Values:     values,
				Colors:     []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8"},
				EdgeColor:  "black",
				EdgeWidth:  1.5,
				Annotate:   true,
			},
		},
	}
}

func scatterRandom(env Env) *model.Figure {
	src := sample.Source(env.Seed, "scatter-random")
	x := sample.Normal(src, 0, 1, 100)
	y := sample.Normal(src, 0, 1, 100)
	c := sample.Uniform(src, 0, 1, 100)
	return &model.Figure{
		XLabel: env.t(i18n.KeyAxisX),
		YLabel: env.t(i18n.KeyAxisY),
		Series: []model.Series{
			&model.ScatterSeries{
				X: x, Y: y,
				Values:    c,
				ColorMap:  "viridis",
				ColorBar:  true,
				Area:      100,
				Alpha:     0.6,
				EdgeColor: "black",
			},
		},
	}
}

func scatterTrend(env Env) *model.Figure {
	src := sample.Source(env.Seed, "scatter-trend")
	x := sample.Linspace(0, 10, 50)
	y := sample.Line(x, 2, 5, sample.Normal(src, 0, 3, 50))
	slope, intercept := sample.LinearFit(x, y)
	return &model.Figure{
		XLabel: env.t(i18n.KeyAxisX),
		YLabel: env.t(i18n.KeyAxisY),
		Legend: true,
		Series: []model.Series{
			&model.ScatterSeries{
				X: x, Y: y,
				Color:     "red",
				Area:      100,
				Alpha:     0.6,
				EdgeColor: "darkred",
				EdgeWidth: 1,
			},
			&model.LineSeries{
				Label:  env.t(i18n.KeyTrendLine),
				X:      x,
				Y:      sample.Evaluate(x, slope, intercept),
				Color:  "blue",
				Width:  2,
				Dashed: true,
			},
		},
	}
}

func histNormal(env Env) *model.Figure {
	src := sample.Source(env.Seed, "hist-normal")
	return &model.Figure{
		XLabel: env.t(i18n.KeyAxisValue),
		YLabel: env.t(i18n.KeyAxisFrequency),
		Grid:   model.GridY,
		Series: []model.Series{
			&model.HistogramSeries{
				Values:    sample.Normal(src, 100, 15, 1000),
				Bins:      30,
				Color:     "skyblue",
				EdgeColor: "black",
				Alpha:     0.7,
			},
		},
	}
}

func pieComposition(env Env) *model.Figure {
	labels := make([]string, 4)
	for i := range labels {
		labels[i] = env.t("pie.item", string(rune('A'+i)))
	}
	return &model.Figure{
		Series: []model.Series{
			&model.PieSeries{
				Labels:        labels,
				Sizes:         []float64{30, 25, 20, 25},
				Colors:        []string{"#FF9999", "#66B2FF", "#99FF99", "#FFCC99"},
				StartAngle:    90,
				PercentFormat: "%1.1f%%",
			},
		},
	}
}

func pieTransactions(env Env) *model.Figure {
	return &model.Figure{
		Series: []model.Series{
			&model.PieSeries{
				Labels: []string{
					env.t("pie.purchase"),
					env.t("pie.refund"),
					env.t("pie.return"),
					env.t("pie.other"),
				},
				Sizes:         []float64{60, 20, 15, 5},
				Explode:       []float64{0.05, 0, 0, 0},
				Colors:        []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A"},
				StartAngle:    45,
				PercentFormat: "%1.1f%%",
			},
		},
	}
}

func boxGroups(env Env) *model.Figure {
	src := sample.Source(env.Seed, "box-groups")
	groups := make([][]float64, 4)
	labels := make([]string, 4)
	for i := range groups {
		groups[i] = sample.Normal(src, 100, 20, 100)
		labels[i] = env.t("box.group", strconv.Itoa(i+1))
	}
	return &model.Figure{
		YLabel: env.t(i18n.KeyAxisValue),
		Grid:   model.GridY,
		Series: []model.Series{
			&model.BoxSeries{
				Labels: labels,
				Groups: groups,
				Colors: []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A"},
			},
		},
	}
}
