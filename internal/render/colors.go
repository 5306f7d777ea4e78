package render

import (
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// cycle is the default colour sequence for series without an explicit colour.
var cycle = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

var gridColor = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}

// parseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" or a CSS colour name.
func parseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return color.NRGBA{}, errors.Wrapf(ErrInvalidFigure, "bad colour %q", s)
		}
		for _, c := range hex {
			if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
				return color.NRGBA{}, errors.Wrapf(ErrInvalidFigure, "bad colour %q", s)
			}
		}
		return gg.Hex(hex).Color().(color.NRGBA), nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return color.NRGBA{}, errors.Wrapf(ErrInvalidFigure, "unknown colour %q", s)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// colorOr parses s, or falls back to def when s is empty.
func colorOr(s, def string) (color.NRGBA, error) {
	if s == "" {
		s = def
	}
	return parseColor(s)
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha <= 0 || alpha >= 1 {
		return c
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}

var viridisControls = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}

// colorMap returns a named continuous colour map scaled to [min, max].
func colorMap(name string, min, max float64) (palette.ColorMap, error) {
	var controls []string
	switch strings.ToLower(name) {
	case "viridis":
		controls = viridisControls
	default:
		return nil, errors.Wrapf(ErrInvalidFigure, "unknown colour map %q", name)
	}

	cs := make([]color.Color, len(controls))
	for i, h := range controls {
		c, err := parseColor(h)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	cm, err := moreland.NewLuminance(cs)
	if err != nil {
		return nil, errors.Wrap(err, "build colour map")
	}
	if min == max {
		max = min + 1
	}
	cm.SetMin(min)
	cm.SetMax(max)
	return cm, nil
}
