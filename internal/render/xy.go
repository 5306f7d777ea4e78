package render

import (
	"bytes"
	"image/color"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"exusiai.dev/chartboard/internal/model"
)

const (
	titleSize = 12
	labelSize = 10
	tickSize  = 9

	// axisMargin approximates the space taken by tick labels and axis titles.
	axisMargin = 60
)

type xyPlot struct {
	r   *Renderer
	fig *model.Figure
	p   *plot.Plot

	cycleAt  int
	colorBar palette.ColorMap
}

func (r *Renderer) renderXY(fig *model.Figure) ([]byte, error) {
	x := &xyPlot{r: r, fig: fig, p: plot.New()}
	x.frame()

	for _, s := range fig.Series {
		var err error
		switch s := s.(type) {
		case *model.LineSeries:
			err = x.line(s)
		case *model.BarSeries:
			err = x.bar(s)
		case *model.ScatterSeries:
			err = x.scatter(s)
		case *model.HistogramSeries:
			err = x.histogram(s)
		case *model.BoxSeries:
			err = x.box(s)
		default:
			err = errors.Wrapf(ErrUnsupportedSeries, "%T on axes", s)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "figure %q", fig.ID)
		}
	}

	if fig.YRange != nil {
		x.p.Y.Min, x.p.Y.Max = fig.YRange.Min, fig.YRange.Max
	}

	return x.encode()
}

func (x *xyPlot) font(size float64, bold bool) text.Style {
	sty := x.p.Title.TextStyle
	sty.Font = x.r.fonts.PlotFont(bold)
	sty.Font.Size = vg.Points(size)
	return sty
}

func (x *xyPlot) frame() {
	p, fig := x.p, x.fig

	p.Title.Text = fig.Title
	p.Title.TextStyle = x.font(titleSize, false)
	p.Title.Padding = vg.Points(6)

	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		align := a.Label.TextStyle
		a.Label.TextStyle = x.font(labelSize, false)
		a.Label.TextStyle.Rotation = align.Rotation
		a.Label.TextStyle.XAlign, a.Label.TextStyle.YAlign = align.XAlign, align.YAlign

		tick := a.Tick.Label
		a.Tick.Label = x.font(tickSize, false)
		a.Tick.Label.XAlign, a.Tick.Label.YAlign = tick.XAlign, tick.YAlign
	}

	p.Legend.TextStyle = x.font(labelSize, false)
	p.Legend.Top = true

	if fig.Grid == model.GridNone {
		return
	}
	alpha := fig.GridAlpha
	if alpha == 0 {
		alpha = 0.3
	}
	g := plotter.NewGrid()
	gc := withAlpha(gridColor, alpha)
	g.Horizontal.Color = gc
	g.Vertical.Color = gc
	if fig.Grid == model.GridY {
		g.Vertical.Color = nil
	}
	p.Add(g)
}

func (x *xyPlot) nextCycle() string {
	c := cycle[x.cycleAt%len(cycle)]
	x.cycleAt++
	return c
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	return pts
}

func (x *xyPlot) line(s *model.LineSeries) error {
	c, err := colorOr(s.Color, x.nextCycle())
	if err != nil {
		return err
	}
	l, err := plotter.NewLine(xys(s.X, s.Y))
	if err != nil {
		return errors.Wrap(ErrInvalidFigure, err.Error())
	}
	width := s.Width
	if width <= 0 {
		width = 1.5
	}
	l.LineStyle = draw.LineStyle{Color: c, Width: vg.Points(width)}
	if s.Dashed {
		l.LineStyle.Dashes = []vg.Length{vg.Points(3.7 * width), vg.Points(1.6 * width)}
	}
	x.p.Add(l)
	if s.Label != "" && x.fig.Legend {
		x.p.Legend.Add(s.Label, l)
	}
	return nil
}

// slot approximates the width in points of one unit on the x axis when n
// categories are laid out from -0.5 to n-0.5.
func (x *xyPlot) slot(n int) vg.Length {
	avail := x.fig.Size.Width*72 - axisMargin
	if x.colorBar != nil {
		avail *= 0.85
	}
	return vg.Points(avail / float64(n))
}

func (x *xyPlot) categories(names []string) {
	n := len(names)
	x.p.NominalX(names...)
	x.p.X.Min, x.p.X.Max = -0.5, float64(n)-0.5
}

func (x *xyPlot) bar(s *model.BarSeries) error {
	edge, err := colorOr(s.EdgeColor, "black")
	if err != nil {
		return err
	}
	width := x.slot(len(s.Values)) * 0.8
	fallback := x.nextCycle()

	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(s.Values)),
		Labels: make([]string, len(s.Values)),
	}
	for i, v := range s.Values {
		fill := fallback
		if len(s.Colors) > 0 {
			fill = s.Colors[i]
		}
		c, err := parseColor(fill)
		if err != nil {
			return err
		}
		b, err := plotter.NewBarChart(plotter.Values{v}, width)
		if err != nil {
			return errors.Wrap(ErrInvalidFigure, err.Error())
		}
		b.XMin = float64(i)
		b.Color = c
		b.LineStyle = draw.LineStyle{}
		if s.EdgeWidth > 0 {
			b.LineStyle = draw.LineStyle{Color: edge, Width: vg.Points(s.EdgeWidth)}
		}
		x.p.Add(b)

		labels.XYs[i] = plotter.XY{X: float64(i), Y: v + 1}
		labels.Labels[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	x.categories(s.Categories)

	if !s.Annotate {
		return nil
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return errors.Wrap(ErrInvalidFigure, err.Error())
	}
	for i := range l.TextStyle {
		sty := x.font(labelSize, true)
		sty.XAlign = text.XCenter
		sty.YAlign = text.YBottom
		l.TextStyle[i] = sty
	}
	x.p.Add(l)
	return nil
}

func (x *xyPlot) scatter(s *model.ScatterSeries) error {
	alpha := s.Alpha
	fill, err := colorOr(s.Color, x.nextCycle())
	if err != nil {
		return err
	}

	var glyph draw.GlyphDrawer = draw.CircleGlyph{}
	if s.EdgeColor != "" {
		edge, err := parseColor(s.EdgeColor)
		if err != nil {
			return err
		}
		width := s.EdgeWidth
		if width <= 0 {
			width = 1
		}
		glyph = ringGlyph{edge: withAlpha(edge, alpha), width: vg.Points(width)}
	}

	sc, err := plotter.NewScatter(xys(s.X, s.Y))
	if err != nil {
		return errors.Wrap(ErrInvalidFigure, err.Error())
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: withAlpha(fill, alpha), Radius: markerRadius(s.Area), Shape: glyph}

	if len(s.Values) > 0 {
		lo, hi := s.Values[0], s.Values[0]
		for _, v := range s.Values {
			lo, hi = min(lo, v), max(hi, v)
		}
		cm, err := colorMap(s.ColorMap, lo, hi)
		if err != nil {
			return err
		}
		base := sc.GlyphStyle
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			sty := base
			if c, err := cm.At(s.Values[i]); err == nil {
				sty.Color = withAlpha(toNRGBA(c), alpha)
			}
			return sty
		}
		if s.ColorBar {
			x.colorBar = cm
		}
	}

	x.p.Add(sc)
	if s.Label != "" && x.fig.Legend {
		x.p.Legend.Add(s.Label, sc)
	}
	return nil
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (x *xyPlot) histogram(s *model.HistogramSeries) error {
	fill, err := colorOr(s.Color, x.nextCycle())
	if err != nil {
		return err
	}
	h, err := plotter.NewHist(plotter.Values(s.Values), s.Bins)
	if err != nil {
		return errors.Wrap(ErrInvalidFigure, err.Error())
	}
	h.FillColor = withAlpha(fill, s.Alpha)
	h.LineStyle = draw.LineStyle{}
	if s.EdgeColor != "" {
		edge, err := parseColor(s.EdgeColor)
		if err != nil {
			return err
		}
		h.LineStyle = draw.LineStyle{Color: withAlpha(edge, s.Alpha), Width: vg.Points(1)}
	}
	x.p.Add(h)
	return nil
}

func (x *xyPlot) box(s *model.BoxSeries) error {
	width := x.slot(len(s.Groups)) * 0.5
	for i, g := range s.Groups {
		b, err := plotter.NewBoxPlot(width, float64(i), plotter.Values(g))
		if err != nil {
			return errors.Wrap(ErrInvalidFigure, err.Error())
		}
		if len(s.Colors) > 0 {
			c, err := parseColor(s.Colors[i])
			if err != nil {
				return err
			}
			b.FillColor = c
		}
		x.p.Add(b)
	}
	x.categories(s.Labels)
	return nil
}

func (x *xyPlot) encode() ([]byte, error) {
	w := vg.Length(x.fig.Size.Width) * vg.Inch
	h := vg.Length(x.fig.Size.Height) * vg.Inch
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(x.r.dpi))
	dc := draw.New(c)

	main := dc
	if x.colorBar != nil {
		barW := w * 0.15
		main = draw.Crop(dc, 0, -barW, 0, 0)
		side := draw.Crop(dc, w-barW, 0, 0, 0)

		cb := plot.New()
		cb.HideX()
		cb.Title.Text = " "
		cb.Title.TextStyle = x.p.Title.TextStyle
		cb.Title.Padding = x.p.Title.Padding
		cb.Y.Tick.Label = x.p.Y.Tick.Label
		cb.Add(&plotter.ColorBar{ColorMap: x.colorBar, Vertical: true})
		cb.Draw(side)
	}
	x.p.Draw(main)

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "encode png")
	}
	return buf.Bytes(), nil
}
