package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFigure() *Figure {
	return &Figure{
		ID:   "f",
		Size: Size{Width: 8, Height: 5},
		Series: []Series{
			&LineSeries{X: []float64{0, 1}, Y: []float64{1, 2}},
		},
	}
}

func TestFigureValidate(t *testing.T) {
	assert.NoError(t, validFigure().Validate())

	cases := map[string]func(f *Figure){
		"no series":      func(f *Figure) { f.Series = nil },
		"zero size":      func(f *Figure) { f.Size.Height = 0 },
		"empty y range":  func(f *Figure) { f.YRange = &Range{Min: 1, Max: 1} },
		"ragged line":    func(f *Figure) { f.Series = []Series{&LineSeries{X: []float64{0, 1}, Y: []float64{1}}} },
		"no bins":        func(f *Figure) { f.Series = []Series{&HistogramSeries{Values: []float64{1}}} },
		"negative wedge": func(f *Figure) { f.Series = []Series{&PieSeries{Labels: []string{"a", "b"}, Sizes: []float64{2, -1}}} },
		"zero pie":       func(f *Figure) { f.Series = []Series{&PieSeries{Labels: []string{"a"}, Sizes: []float64{0}}} },
		"empty box":      func(f *Figure) { f.Series = []Series{&BoxSeries{Labels: []string{"a"}, Groups: [][]float64{{}}}} },
		"bar colours":    func(f *Figure) { f.Series = []Series{&BarSeries{Categories: []string{"a"}, Values: []float64{1}, Colors: []string{"red", "blue"}}} },
		"colourbar only": func(f *Figure) { f.Series = []Series{&ScatterSeries{X: []float64{1}, Y: []float64{1}, ColorBar: true}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := validFigure()
			mutate(f)
			assert.True(t, errors.Is(f.Validate(), ErrInvalidFigure))
		})
	}
}

func TestPieFractions(t *testing.T) {
	s := &PieSeries{Labels: []string{"a", "b", "c", "d"}, Sizes: []float64{30, 25, 20, 25}}
	assert.InDeltaSlice(t, []float64{0.3, 0.25, 0.2, 0.25}, s.Fractions(), 1e-12)
}

func TestFigureJSONTagsSeries(t *testing.T) {
	f := validFigure()
	f.Series = append(f.Series, &BarSeries{Categories: []string{"a"}, Values: []float64{1}})

	b, err := json.Marshal(f)
	require.NoError(t, err)

	var out struct {
		ID     string `json:"id"`
		Series []struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "f", out.ID)
	require.Len(t, out.Series, 2)
	assert.Equal(t, "line", out.Series[0].Type)
	assert.Equal(t, "bar", out.Series[1].Type)
	assert.Contains(t, string(out.Series[1].Data), `"categories":["a"]`)
}

func TestSizePixels(t *testing.T) {
	w, h := Size{Width: 8, Height: 5}.Pixels(100)
	assert.Equal(t, 800, w)
	assert.Equal(t, 500, h)
}
