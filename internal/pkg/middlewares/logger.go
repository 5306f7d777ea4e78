package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"exusiai.dev/chartboard/internal/pkg/flog"
)

const HeaderRequestID = "X-Chartboard-Request-ID"

func Logger(app *fiber.App) {
	Chained(
		app,
		flog.NewHandlerMiddleware(log.With().Logger()),
		flog.RequestIDHandler("request_id", HeaderRequestID),
		flog.FieldsHandler(
			flog.Field{Key: "ip", Value: flog.RemoteAddr},
			flog.Field{Key: "method", Value: flog.Method},
			flog.Field{Key: "url", Value: flog.URL},
			flog.Field{Key: "user_agent", Value: flog.UserAgent},
		),
		requestLogger(),
	)
}

func requestLogger() fiber.Handler {
	return flog.AccessHandler(func(c *fiber.Ctx, err error, duration time.Duration) {
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		flog.FromFiberCtx(c).Info().
			Str("component", "httpreq").
			Int("status", status).
			Int("size", len(c.Response().Body())).
			Dur("duration", duration).
			Msg("received request")
	})
}
