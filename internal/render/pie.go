package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"exusiai.dev/chartboard/internal/model"
)

const (
	// pieStep is the largest arc, in radians, covered by one polygon edge.
	pieStep = math.Pi / 180

	labelRadius   = 1.1
	percentRadius = 0.6
)

type wedge struct {
	from, to float64 // radians, counter-clockwise
	frac     float64
	explode  float64
	label    string
	color    gg.RGBA
}

func (w wedge) mid() float64 { return (w.from + w.to) / 2 }

func wedges(s *model.PieSeries) ([]wedge, error) {
	fracs := s.Fractions()
	out := make([]wedge, len(fracs))
	angle := s.StartAngle * math.Pi / 180
	for i, f := range fracs {
		hex := cycle[i%len(cycle)]
		if len(s.Colors) > 0 {
			hex = s.Colors[i]
		}
		c, err := parseColor(hex)
		if err != nil {
			return nil, err
		}
		w := wedge{
			from:  angle,
			to:    angle + f*2*math.Pi,
			frac:  f,
			label: s.Labels[i],
			color: gg.FromColor(c),
		}
		if len(s.Explode) > 0 {
			w.explode = s.Explode[i]
		}
		out[i] = w
		angle = w.to
	}
	return out, nil
}

// polar maps an angle measured counter-clockwise from +x onto the y-down
// canvas.
func polar(cx, cy, r, theta float64) (float64, float64) {
	return cx + r*math.Cos(theta), cy - r*math.Sin(theta)
}

func (r *Renderer) renderPie(fig *model.Figure, s *model.PieSeries) ([]byte, error) {
	ws, err := wedges(s)
	if err != nil {
		return nil, errors.Wrapf(err, "figure %q", fig.ID)
	}

	w, h := fig.Size.Pixels(r.dpi)
	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	titleFace, err := r.fonts.Face(r.points(titleSize), false)
	if err != nil {
		return nil, err
	}
	labelFace, err := r.fonts.Face(r.points(labelSize), false)
	if err != nil {
		return nil, err
	}

	top := r.points(titleSize) * 2.5
	if fig.Title != "" {
		dc.SetFont(titleFace)
		dc.SetColor(gg.Black.Color())
		dc.DrawStringAnchored(fig.Title, float64(w)/2, r.points(titleSize)*1.5, 0.5, 0.5)
	}

	// Leave room around the pie for the outer labels.
	avail := math.Min(float64(w), float64(h)-top)
	radius := avail / 2 * 0.75
	cx, cy := float64(w)/2, top+(float64(h)-top)/2

	for _, wg := range ws {
		if wg.frac == 0 {
			continue
		}
		ox, oy := polar(cx, cy, wg.explode*radius, wg.mid())

		dc.MoveTo(ox, oy)
		steps := int(math.Ceil((wg.to - wg.from) / pieStep))
		for i := 0; i <= steps; i++ {
			t := wg.from + (wg.to-wg.from)*float64(i)/float64(steps)
			dc.LineTo(polar(ox, oy, radius, t))
		}
		dc.ClosePath()
		dc.SetColor(wg.color.Color())
		if err := dc.Fill(); err != nil {
			return nil, errors.Wrap(err, "fill wedge")
		}
	}

	dc.SetFont(labelFace)
	dc.SetColor(gg.Black.Color())
	for _, wg := range ws {
		mid := wg.mid()
		ox, oy := polar(cx, cy, wg.explode*radius, mid)

		lx, ly := polar(ox, oy, labelRadius*radius, mid)
		ax := 0.0
		if math.Cos(mid) < 0 {
			ax = 1
		}
		dc.DrawStringAnchored(wg.label, lx, ly, ax, 0.5)

		if s.PercentFormat != "" {
			px, py := polar(ox, oy, percentRadius*radius, mid)
			dc.DrawStringAnchored(fmt.Sprintf(s.PercentFormat, wg.frac*100), px, py, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(err, "encode png")
	}
	return buf.Bytes(), nil
}
