package middlewares

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/pkg/i18n"
)

const (
	LocalsLocale     = "locale"
	LocalsTranslator = "T"
)

// InjectI18n negotiates the display locale from the lang query and
// Accept-Language, and stores it and its translator in the request locals.
func InjectI18n(conf *appconfig.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale := i18n.Negotiate(
			c.Query("lang"),
			c.Get(fiber.HeaderAcceptLanguage),
			conf.DefaultLocale,
			conf.EnabledLocales,
		)
		c.Locals(LocalsLocale, locale)
		c.Locals(LocalsTranslator, i18n.Translator(locale))
		c.Vary(fiber.HeaderAcceptLanguage)
		return c.Next()
	}
}

func LocaleFromCtx(c *fiber.Ctx) string {
	if l, ok := c.Locals(LocalsLocale).(string); ok {
		return l
	}
	return i18n.UT.GetFallback().Locale()
}

func TranslatorFromCtx(c *fiber.Ctx) ut.Translator {
	if t, ok := c.Locals(LocalsTranslator).(ut.Translator); ok {
		return t
	}
	return i18n.UT.GetFallback()
}
