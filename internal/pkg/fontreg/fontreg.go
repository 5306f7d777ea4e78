// Package fontreg loads the chart typeface once and hands it to both
// rendering back ends: the gonum/plot font cache and gg text faces.
package fontreg

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
)

// FallbackTypeface is the gonum/plot built-in used when no custom font loads.
const FallbackTypeface = "Liberation"

var ErrFontUnavailable = errors.New("font unavailable")

type Options struct {
	Path     string
	BoldPath string
	Required bool
}

// Registry owns the loaded font sources. It is safe for concurrent use.
type Registry struct {
	typeface font.Typeface
	fallback bool

	regular []*text.FontSource
	bold    []*text.FontSource

	mu    sync.Mutex
	faces map[faceKey]text.Face
}

type faceKey struct {
	size float64
	bold bool
}

// Load reads the configured TrueType files and registers them with
// gonum/plot. When the regular font cannot be read and opts.Required is not
// set, the registry falls back to fonts that ship with the libraries.
func Load(opts Options) (*Registry, error) {
	goRegular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse go regular")
	}
	goBold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse go bold")
	}

	r := &Registry{
		typeface: FallbackTypeface,
		fallback: true,
		regular:  []*text.FontSource{goRegular},
		bold:     []*text.FontSource{goBold},
		faces:    map[faceKey]text.Face{},
	}

	regularData, err := os.ReadFile(opts.Path)
	if err != nil {
		if opts.Required {
			return nil, errors.Wrapf(ErrFontUnavailable, "read %s: %v", opts.Path, err)
		}
		log.Warn().
			Str("evt.name", "fonts.fallback").
			Str("path", opts.Path).
			Err(err).
			Msg("chart font not found, falling back to built-in fonts; hangul text will not render")
		r.applyPlotDefaults()
		return r, nil
	}

	boldData := regularData
	if opts.BoldPath != "" {
		if b, err := os.ReadFile(opts.BoldPath); err == nil {
			boldData = b
		} else {
			log.Warn().
				Str("evt.name", "fonts.bold_missing").
				Str("path", opts.BoldPath).
				Err(err).
				Msg("bold chart font not found, using regular weight for bold text")
		}
	}

	regularSrc, err := text.NewFontSource(regularData)
	if err != nil {
		return nil, errors.Wrapf(ErrFontUnavailable, "parse %s: %v", opts.Path, err)
	}
	boldSrc, err := text.NewFontSource(boldData)
	if err != nil {
		return nil, errors.Wrapf(ErrFontUnavailable, "parse bold font: %v", err)
	}

	typeface := font.Typeface(typefaceName(regularSrc.Name(), opts.Path))
	if err := registerPlotFaces(typeface, regularData, boldData); err != nil {
		return nil, err
	}

	r.typeface = typeface
	r.fallback = false
	r.regular = []*text.FontSource{regularSrc, goRegular}
	r.bold = []*text.FontSource{boldSrc, goBold}
	r.applyPlotDefaults()

	log.Info().
		Str("evt.name", "fonts.loaded").
		Str("typeface", string(typeface)).
		Str("path", opts.Path).
		Msg("chart font loaded")

	return r, nil
}

func typefaceName(name, path string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func registerPlotFaces(typeface font.Typeface, regular, bold []byte) error {
	reg, err := opentype.Parse(regular)
	if err != nil {
		return errors.Wrap(err, "parse regular font for plot")
	}
	b, err := opentype.Parse(bold)
	if err != nil {
		return errors.Wrap(err, "parse bold font for plot")
	}
	font.DefaultCache.Add(font.Collection{
		{Font: font.Font{Typeface: typeface}, Face: reg},
		{Font: font.Font{Typeface: typeface, Weight: xfont.WeightBold}, Face: b},
	})
	return nil
}

func (r *Registry) applyPlotDefaults() {
	plot.DefaultFont = r.PlotFont(false)
	plotter.DefaultFont = r.PlotFont(false)
}

// PlotFont returns the gonum/plot font description for the chart typeface.
func (r *Registry) PlotFont(bold bool) font.Font {
	f := font.Font{Typeface: r.typeface}
	if r.fallback {
		f.Variant = "Sans"
	}
	if bold {
		f.Weight = xfont.WeightBold
	}
	return f
}

// Face returns a gg text face of the given pixel size. Glyphs missing from
// the chart font are drawn with Go Regular or Go Bold.
func (r *Registry) Face(size float64, bold bool) (text.Face, error) {
	key := faceKey{size: size, bold: bold}

	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.faces[key]; ok {
		return f, nil
	}

	sources := r.regular
	if bold {
		sources = r.bold
	}
	faces := make([]text.Face, len(sources))
	for i, src := range sources {
		faces[i] = src.Face(size)
	}
	face, err := text.NewMultiFace(faces...)
	if err != nil {
		return nil, errors.Wrap(err, "build font fallback chain")
	}
	r.faces[key] = face
	return face, nil
}

func (r *Registry) Typeface() string { return string(r.typeface) }

// Fallback reports whether the configured font failed to load.
func (r *Registry) Fallback() bool { return r.fallback }

func (r *Registry) Close() error {
	var first error
	seen := map[*text.FontSource]bool{}
	for _, src := range append(append([]*text.FontSource{}, r.regular...), r.bold...) {
		if seen[src] {
			continue
		}
		seen[src] = true
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
