// Package flog provides a set of fiber.Ctx helpers for zerolog.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FromFiberCtx gets the logger in the request's context.
func FromFiberCtx(c *fiber.Ctx) *zerolog.Logger {
	return log.Ctx(c.UserContext())
}

// NewHandlerMiddleware injects a copy of l into the request's context.
func NewHandlerMiddleware(l zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// copy so that UpdateContext on one request does not race another
		reqLog := l.With().Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))
		return c.Next()
	}
}

// Field extracts one request attribute for the request logger.
type Field struct {
	Key   string
	Value func(c *fiber.Ctx) string
}

var (
	RemoteAddr = func(c *fiber.Ctx) string { return c.IP() }
	Method     = func(c *fiber.Ctx) string { return c.Method() }
	URL        = func(c *fiber.Ctx) string { return c.OriginalURL() }
	UserAgent  = func(c *fiber.Ctx) string { return c.Get(fiber.HeaderUserAgent) }
)

// FieldsHandler adds every field to the context's logger.
func FieldsHandler(fields ...Field) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := zerolog.Ctx(c.UserContext())
		l.UpdateContext(func(zc zerolog.Context) zerolog.Context {
			for _, f := range fields {
				zc = zc.Str(f.Key, f.Value(c))
			}
			return zc
		})
		return c.Next()
	}
}

type idKey struct{}

// IDFromFiberCtx returns the unique id associated to the *fiber.Ctx if any.
func IDFromFiberCtx(c *fiber.Ctx) (id xid.ID, ok bool) {
	if c == nil {
		return
	}
	return IDFromCtx(c.UserContext())
}

// IDFromCtx returns the unique id associated to the context if any.
func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

// CtxWithID adds the given xid.ID to the context
func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// RequestIDHandler assigns every request an xid, logs it under fieldKey and
// echoes it in headerName when that is not empty.
func RequestIDHandler(fieldKey, headerName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := IDFromFiberCtx(c)
		if !ok {
			id = xid.New()
			c.SetUserContext(CtxWithID(c.UserContext(), id))
		}
		if fieldKey != "" {
			FromFiberCtx(c).UpdateContext(func(zc zerolog.Context) zerolog.Context {
				return zc.Str(fieldKey, id.String())
			})
		}
		if headerName != "" {
			c.Set(headerName, id.String())
		}
		return c.Next()
	}
}

// AccessHandler returns a handler that call f after each request.
func AccessHandler(f func(c *fiber.Ctx, err error, duration time.Duration)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		f(c, err, time.Since(start))
		return err
	}
}

func DebugFrom(c *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(c).Debug()
}

func InfoFrom(c *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(c).Info()
}

func WarnFrom(c *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(c).Warn()
}

func ErrorFrom(c *fiber.Ctx) *zerolog.Event {
	return FromFiberCtx(c).Error()
}
