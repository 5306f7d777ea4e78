// Package render turns figure descriptions into PNG images. Axis charts are
// drawn with gonum/plot; pies are drawn directly with gg.
package render

import (
	"context"

	"github.com/pkg/errors"

	"exusiai.dev/chartboard/internal/model"
	"exusiai.dev/chartboard/internal/pkg/fontreg"
)

var (
	ErrInvalidFigure     = model.ErrInvalidFigure
	ErrUnsupportedSeries = errors.New("unsupported series")
)

// DefaultDPI matches the resolution charts are usually saved at.
const DefaultDPI = 100

type Renderer struct {
	dpi   int
	fonts *fontreg.Registry
}

func New(dpi int, fonts *fontreg.Registry) *Renderer {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Renderer{dpi: dpi, fonts: fonts}
}

func (r *Renderer) DPI() int {
	return r.dpi
}

// Render draws fig and returns PNG bytes sized fig.Size at the renderer's DPI.
func (r *Renderer) Render(ctx context.Context, fig *model.Figure) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := fig.Validate(); err != nil {
		return nil, err
	}

	if fig.IsPie() {
		if len(fig.Series) != 1 {
			return nil, errors.Wrapf(ErrUnsupportedSeries, "figure %q mixes a pie with other series", fig.ID)
		}
		return r.renderPie(fig, fig.Series[0].(*model.PieSeries))
	}
	return r.renderXY(fig)
}

// points converts a size in typographic points to pixels at the renderer's DPI.
func (r *Renderer) points(pt float64) float64 {
	return pt * float64(r.dpi) / 72
}
