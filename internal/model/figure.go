package model

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ErrInvalidFigure is returned when a figure cannot be drawn as described.
var ErrInvalidFigure = errors.New("invalid figure")

type Kind string

const (
	KindLine      Kind = "line"
	KindBar       Kind = "bar"
	KindScatter   Kind = "scatter"
	KindHistogram Kind = "histogram"
	KindPie       Kind = "pie"
	KindBox       Kind = "box"
)

type GridMode string

const (
	GridNone GridMode = ""
	GridBoth GridMode = "both"
	GridY    GridMode = "y"
)

// Size is a figure size in inches.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Pixels converts the size to pixel dimensions at the given DPI.
func (s Size) Pixels(dpi int) (w, h int) {
	return int(s.Width * float64(dpi)), int(s.Height * float64(dpi))
}

type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Figure describes one chart: its frame (title, axes, grid, legend) and the
// series drawn into it.
type Figure struct {
	ID        string   `json:"id"`
	Kind      Kind     `json:"kind"`
	Title     string   `json:"title"`
	XLabel    string   `json:"xLabel,omitempty"`
	YLabel    string   `json:"yLabel,omitempty"`
	Size      Size     `json:"size"`
	Grid      GridMode `json:"grid,omitempty"`
	GridAlpha float64  `json:"gridAlpha,omitempty"`
	Legend    bool     `json:"legend"`
	YRange    *Range   `json:"yRange,omitempty"`
	Series    []Series `json:"series"`
}

type taggedSeries struct {
	Type Kind   `json:"type"`
	Data Series `json:"data"`
}

func (f Figure) MarshalJSON() ([]byte, error) {
	type plain Figure
	tagged := make([]taggedSeries, len(f.Series))
	for i, s := range f.Series {
		tagged[i] = taggedSeries{Type: s.SeriesKind(), Data: s}
	}
	return json.Marshal(struct {
		plain
		Series []taggedSeries `json:"series"`
	}{plain(f), tagged})
}

// Validate checks the frame and every series. Errors wrap ErrInvalidFigure.
func (f *Figure) Validate() error {
	if len(f.Series) == 0 {
		return errors.Wrapf(ErrInvalidFigure, "figure %q has no series", f.ID)
	}
	if f.Size.Width <= 0 || f.Size.Height <= 0 {
		return errors.Wrapf(ErrInvalidFigure, "figure %q has non-positive size %vx%v", f.ID, f.Size.Width, f.Size.Height)
	}
	if f.YRange != nil && f.YRange.Min >= f.YRange.Max {
		return errors.Wrapf(ErrInvalidFigure, "figure %q has empty y range [%v, %v]", f.ID, f.YRange.Min, f.YRange.Max)
	}
	for i, s := range f.Series {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "figure %q series #%d (%s)", f.ID, i, s.SeriesKind())
		}
	}
	return nil
}

// IsPie reports whether the figure is drawn as a pie rather than on axes.
func (f *Figure) IsPie() bool {
	for _, s := range f.Series {
		if s.SeriesKind() == KindPie {
			return true
		}
	}
	return false
}

// Series is one drawable element of a figure.
type Series interface {
	SeriesKind() Kind
	Validate() error
}

func invalid(format string, args ...any) error {
	return errors.Wrap(ErrInvalidFigure, fmt.Sprintf(format, args...))
}

func sameLen(name string, n int, other string, m int) error {
	if n != m {
		return invalid("%s has %d elements but %s has %d", name, n, other, m)
	}
	return nil
}

type LineSeries struct {
	Label  string    `json:"label,omitempty"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Color  string    `json:"color,omitempty"`
	Width  float64   `json:"width,omitempty"`
	Dashed bool      `json:"dashed,omitempty"`
}

func (s *LineSeries) SeriesKind() Kind { return KindLine }

func (s *LineSeries) Validate() error {
	if len(s.X) == 0 {
		return invalid("line has no points")
	}
	return sameLen("x", len(s.X), "y", len(s.Y))
}

type BarSeries struct {
	Categories []string  `json:"categories"`
	Values     []float64 `json:"values"`
	Colors     []string  `json:"colors,omitempty"`
	EdgeColor  string    `json:"edgeColor,omitempty"`
	EdgeWidth  float64   `json:"edgeWidth,omitempty"`
	Annotate   bool      `json:"annotate,omitempty"`
}

func (s *BarSeries) SeriesKind() Kind { return KindBar }

func (s *BarSeries) Validate() error {
	if len(s.Values) == 0 {
		return invalid("bar chart has no values")
	}
	if err := sameLen("categories", len(s.Categories), "values", len(s.Values)); err != nil {
		return err
	}
	if len(s.Colors) > 0 {
		return sameLen("colors", len(s.Colors), "values", len(s.Values))
	}
	return nil
}

type ScatterSeries struct {
	Label string    `json:"label,omitempty"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`

	// Color is used when Values is empty; otherwise each point is coloured by
	// mapping Values through ColorMap.
	Color    string    `json:"color,omitempty"`
	Values   []float64 `json:"values,omitempty"`
	ColorMap string    `json:"colorMap,omitempty"`
	ColorBar bool      `json:"colorBar,omitempty"`

	// Area is the marker area in pt².
	Area      float64 `json:"area,omitempty"`
	Alpha     float64 `json:"alpha,omitempty"`
	EdgeColor string  `json:"edgeColor,omitempty"`
	EdgeWidth float64 `json:"edgeWidth,omitempty"`
}

func (s *ScatterSeries) SeriesKind() Kind { return KindScatter }

func (s *ScatterSeries) Validate() error {
	if len(s.X) == 0 {
		return invalid("scatter has no points")
	}
	if err := sameLen("x", len(s.X), "y", len(s.Y)); err != nil {
		return err
	}
	if len(s.Values) > 0 {
		if s.ColorMap == "" {
			return invalid("scatter has colour values but no colour map")
		}
		return sameLen("values", len(s.Values), "x", len(s.X))
	}
	if s.ColorBar {
		return invalid("scatter colour bar requires colour values")
	}
	return nil
}

type HistogramSeries struct {
	Values    []float64 `json:"values"`
	Bins      int       `json:"bins"`
	Color     string    `json:"color,omitempty"`
	EdgeColor string    `json:"edgeColor,omitempty"`
	Alpha     float64   `json:"alpha,omitempty"`
}

func (s *HistogramSeries) SeriesKind() Kind { return KindHistogram }

func (s *HistogramSeries) Validate() error {
	if len(s.Values) == 0 {
		return invalid("histogram has no values")
	}
	if s.Bins <= 0 {
		return invalid("histogram bin count must be positive, got %d", s.Bins)
	}
	return nil
}

type PieSeries struct {
	Labels []string  `json:"labels"`
	Sizes  []float64 `json:"sizes"`
	Colors []string  `json:"colors,omitempty"`

	// Explode offsets each wedge outwards by a fraction of the radius.
	Explode []float64 `json:"explode,omitempty"`

	// StartAngle is in degrees, counter-clockwise from the positive x axis.
	StartAngle float64 `json:"startAngle"`

	// PercentFormat is a printf format applied to each wedge's percentage.
	// Empty disables the percentage labels.
	PercentFormat string `json:"percentFormat,omitempty"`
}

func (s *PieSeries) SeriesKind() Kind { return KindPie }

func (s *PieSeries) Validate() error {
	if len(s.Sizes) == 0 {
		return invalid("pie has no wedges")
	}
	if err := sameLen("labels", len(s.Labels), "sizes", len(s.Sizes)); err != nil {
		return err
	}
	if len(s.Colors) > 0 {
		if err := sameLen("colors", len(s.Colors), "sizes", len(s.Sizes)); err != nil {
			return err
		}
	}
	if len(s.Explode) > 0 {
		if err := sameLen("explode", len(s.Explode), "sizes", len(s.Sizes)); err != nil {
			return err
		}
	}
	var total float64
	for _, v := range s.Sizes {
		if v < 0 {
			return invalid("pie wedge size must not be negative, got %v", v)
		}
		total += v
	}
	if total <= 0 {
		return invalid("pie total must be positive")
	}
	return nil
}

// Fractions returns each wedge's share of the total.
func (s *PieSeries) Fractions() []float64 {
	var total float64
	for _, v := range s.Sizes {
		total += v
	}
	out := make([]float64, len(s.Sizes))
	if total == 0 {
		return out
	}
	for i, v := range s.Sizes {
		out[i] = v / total
	}
	return out
}

type BoxSeries struct {
	Labels []string    `json:"labels"`
	Groups [][]float64 `json:"groups"`
	Colors []string    `json:"colors,omitempty"`
}

func (s *BoxSeries) SeriesKind() Kind { return KindBox }

func (s *BoxSeries) Validate() error {
	if len(s.Groups) == 0 {
		return invalid("box plot has no groups")
	}
	if err := sameLen("labels", len(s.Labels), "groups", len(s.Groups)); err != nil {
		return err
	}
	for i, g := range s.Groups {
		if len(g) == 0 {
			return invalid("box plot group %d is empty", i)
		}
	}
	if len(s.Colors) > 0 {
		return sameLen("colors", len(s.Colors), "groups", len(s.Groups))
	}
	return nil
}
