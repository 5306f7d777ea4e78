package warmwkr

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/gallery"
	"exusiai.dev/chartboard/internal/service"
)

// Renderer is the part of the chart service the worker drives.
type Renderer interface {
	Render(ctx context.Context, id, locale string, seed uint64) (*service.RenderedChart, error)
}

type WorkerDeps struct {
	fx.In

	ChartService *service.Chart
}

type Worker struct {
	// count counts batches worker has completed so far
	count int

	// interval describes the interval in-between different batches of job running
	interval time.Duration

	locales  []string
	seed     uint64
	renderer Renderer

	done chan struct{}
}

// Start pre-renders every chart in the background while the app runs. It
// does nothing unless the warmer is enabled.
func Start(conf *appconfig.Config, deps WorkerDeps, lc fx.Lifecycle) {
	if !conf.WarmerEnabled {
		return
	}

	w := New(deps.ChartService, conf.EnabledLocales, conf.SampleSeed, conf.WarmerInterval)

	var cancel context.CancelFunc
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			cancel = w.do()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-w.done:
			case <-ctx.Done():
			}
			return nil
		},
	})
}

func New(renderer Renderer, locales []string, seed uint64, interval time.Duration) *Worker {
	return &Worker{
		interval: interval,
		locales:  locales,
		seed:     seed,
		renderer: renderer,
		done:     make(chan struct{}),
	}
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer close(w.done)
		for {
			w.batch(ctx)
			w.count++

			select {
			case <-ctx.Done():
				return
			case <-time.After(w.interval):
			}
		}
	}()

	return cancel
}

func (w *Worker) batch(ctx context.Context) {
	log.Info().
		Str("evt.name", "worker.warm.batch").
		Int("count", w.count).
		Msg("worker batch started")

	for _, locale := range w.locales {
		for _, c := range gallery.Charts() {
			if ctx.Err() != nil {
				return
			}
			err := observeWarmDuration(c.ID, locale, func() error {
				_, err := w.renderer.Render(ctx, c.ID, locale, w.seed)
				return err
			})
			if err != nil {
				log.Error().
					Err(err).
					Str("evt.name", "worker.warm.failed").
					Str("chart", c.ID).
					Str("locale", locale).
					Msg("failed to warm chart")
				continue
			}
			log.Debug().Str("chart", c.ID).Str("locale", locale).Msg("worker warmed chart")
		}
	}

	log.Info().
		Str("evt.name", "worker.warm.batch").
		Int("count", w.count).
		Msg("worker batch finished")
}

func (w *Worker) Count() int {
	return w.count
}
