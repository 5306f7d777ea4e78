package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ringGlyph is a filled circle with an outline of its own colour.
type ringGlyph struct {
	edge  color.Color
	width vg.Length
}

func (g ringGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.CircleGlyph{}.DrawGlyph(c, sty, pt)
	if g.edge == nil || g.width <= 0 {
		return
	}

	c.SetLineStyle(draw.LineStyle{Color: g.edge, Width: g.width})
	var p vg.Path
	p.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Arc(pt, sty.Radius, 0, 2*math.Pi)
	p.Close()
	c.Stroke(p)
}

// markerRadius converts a marker area in pt² to a glyph radius.
func markerRadius(area float64) vg.Length {
	if area <= 0 {
		area = 36
	}
	return vg.Points(math.Sqrt(area) / 2)
}
