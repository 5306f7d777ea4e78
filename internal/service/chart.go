package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/pkg/cache"
	"exusiai.dev/chartboard/internal/pkg/fontreg"
	"exusiai.dev/chartboard/internal/pkg/i18n"
	"exusiai.dev/chartboard/internal/pkg/observability"
	"exusiai.dev/chartboard/internal/render"
)

const chartCachePrefix = "chartboard:chart"

// RenderedChart is one chart encoded as PNG, as kept in the chart cache.
type RenderedChart struct {
	ID         string        `msgpack:"id"`
	Locale     string        `msgpack:"locale"`
	Seed       uint64        `msgpack:"seed"`
	PNG        []byte        `msgpack:"png"`
	ETag       string        `msgpack:"etag"`
	RenderedAt time.Time     `msgpack:"renderedAt"`
	Duration   time.Duration `msgpack:"duration"`
}

func NewRenderer(conf *appconfig.Config, fonts *fontreg.Registry) *render.Renderer {
	return render.New(conf.RenderDPI, fonts)
}

type Chart struct {
	GalleryService *Gallery

	renderer *render.Renderer
	cache    *cache.Tiered[*RenderedChart]
	tracer   trace.Tracer
}

// NewChart wires the chart cache. client may be nil, in which case renders
// are only cached in-process.
func NewChart(conf *appconfig.Config, galleryService *Gallery, renderer *render.Renderer, client *redis.Client) *Chart {
	var remote *cache.Set
	if client != nil {
		remote = cache.NewSet(client, chartCachePrefix)
	}

	return &Chart{
		GalleryService: galleryService,
		renderer:       renderer,
		cache:          cache.NewTiered[*RenderedChart](remote, conf.ChartCacheTTL),
		tracer:         otel.Tracer("chartboard/service/chart"),
	}
}

func (s *Chart) cacheKey(id, locale string, seed uint64) string {
	return fmt.Sprintf("%s:%s:%d:%d", id, locale, seed, s.renderer.DPI())
}

// Render returns the PNG of chart id, from cache when possible.
func (s *Chart) Render(ctx context.Context, id, locale string, seed uint64) (*RenderedChart, error) {
	locale = i18n.Translator(locale).Locale()

	ctx, span := s.tracer.Start(ctx, "chart.render", trace.WithAttributes(
		attribute.String("chart.id", id),
		attribute.String("chart.locale", locale),
		attribute.String("chart.seed", strconv.FormatUint(seed, 10)),
	))
	defer span.End()

	rendered, tier, err := s.cache.GetOrLoad(ctx, s.cacheKey(id, locale, seed), func(ctx context.Context) (*RenderedChart, error) {
		return s.render(ctx, id, locale, seed)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("cache.tier", string(tier)))
	observability.ChartCacheLookups.WithLabelValues(string(tier)).Inc()

	return rendered, nil
}

func (s *Chart) render(ctx context.Context, id, locale string, seed uint64) (*RenderedChart, error) {
	fig, err := s.GalleryService.Figure(ctx, id, locale, seed)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	png, err := s.renderer.Render(ctx, fig)
	if err != nil {
		observability.ChartRenderErrors.WithLabelValues(id).Inc()
		return nil, errors.Wrapf(err, "render chart %s", id)
	}
	dur := time.Since(start)
	observability.ChartRenderDuration.WithLabelValues(id, string(fig.Kind)).Observe(dur.Seconds())

	log.Debug().
		Str("evt.name", "chart.rendered").
		Str("chart", id).
		Str("locale", locale).
		Uint64("seed", seed).
		Dur("duration", dur).
		Int("bytes", len(png)).
		Msg("chart rendered")

	return &RenderedChart{
		ID:         id,
		Locale:     locale,
		Seed:       seed,
		PNG:        png,
		ETag:       strconv.FormatUint(xxh3.Hash(png), 16),
		RenderedAt: time.Now().UTC(),
		Duration:   dur,
	}, nil
}

// Purge drops every cached render and returns how many entries went away.
func (s *Chart) Purge(ctx context.Context) (int64, error) {
	n, err := s.cache.Purge(ctx)
	if err != nil {
		return n, errors.Wrap(err, "purge chart cache")
	}
	log.Info().
		Str("evt.name", "chart.purged").
		Int64("entries", n).
		Msg("chart cache purged")
	return n, nil
}
