package server

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"exusiai.dev/chartboard/internal/app"
	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/app/appcontext"
)

// Run starts the server and blocks until SIGINT or SIGTERM.
func Run() {
	fxApp := app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(listen))

	if err := fxApp.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to start app")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info().Str("evt.name", "server.stopping").Msg("shutting down")
	if err := fxApp.Stop(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to stop app gracefully")
	}
}

func listen(app *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			log.Info().
				Str("evt.name", "server.listening").
				Str("address", conf.ServiceAddress).
				Msg("server listening")

			go func() {
				if err := app.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if conf.DevMode {
				return nil
			}
			return app.ShutdownWithContext(ctx)
		},
	})
}
