package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"exusiai.dev/chartboard/internal/pkg/cberr"
	"exusiai.dev/chartboard/internal/pkg/flog"
)

func handleCustomError(ctx *fiber.Ctx, e *cberr.BoardError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var be *cberr.BoardError
	if errors.As(err, &be) {
		return handleCustomError(ctx, be)
	}

	// Default 500 statuscode
	re := *cberr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		re.StatusCode = fe.Code
		re.Message = fe.Message
		if fe.Code == fiber.StatusNotFound {
			re.ErrorCode = cberr.CodeNotFound
		} else {
			re.ErrorCode = "UNKNOWN_ERROR"
		}
		// routing and protocol errors are the client's
		if fe.Code < fiber.StatusInternalServerError {
			return handleCustomError(ctx, &re)
		}
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if id, ok := flog.IDFromFiberCtx(ctx); ok {
			hub.Scope().SetTag("request_id", id.String())
		}
		hub.CaptureException(err)
	}

	return handleCustomError(ctx, &re)
}
