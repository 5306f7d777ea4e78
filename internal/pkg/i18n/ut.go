package i18n

import (
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/ko"
	ut "github.com/go-playground/universal-translator"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	LocaleKorean  = "ko"
	LocaleEnglish = "en"
)

// UT holds every supported locale. Korean is the fallback.
var UT = ut.New(ko.New(), ko.New(), en.New())

func init() {
	for locale, texts := range catalogs {
		trans, found := UT.GetTranslator(locale)
		if !found {
			log.Warn().Str("locale", locale).Msg("no translator for catalog locale")
			continue
		}
		for key, text := range texts {
			if err := trans.Add(key, text, false); err != nil {
				log.Warn().Err(err).Str("locale", locale).Str("key", key).Msg("could not register translation")
			}
		}
	}
}

// Supported reports whether a catalog exists for locale.
func Supported(locale string) bool {
	_, ok := catalogs[locale]
	return ok
}

// Translator returns the translator for locale, or the fallback one.
func Translator(locale string) ut.Translator {
	if trans, found := UT.GetTranslator(locale); found {
		return trans
	}
	return UT.GetFallback()
}

// T translates key with params substituted for {0}, {1}, .... An unknown key
// translates to itself.
func T(trans ut.Translator, key string, params ...string) string {
	s, err := trans.T(key, params...)
	if err != nil || s == "" {
		return key
	}
	return s
}

// Negotiate picks a locale out of enabled. The explicit query value wins,
// then the Accept-Language header, then def.
func Negotiate(query, acceptLanguage, def string, enabled []string) string {
	allowed := func(l string) bool {
		for _, e := range enabled {
			if e == l {
				return true
			}
		}
		return false
	}

	if q := normalize(query); q != "" && allowed(q) {
		return q
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err == nil {
		for _, tag := range tags {
			base, _ := tag.Base()
			if l := normalize(base.String()); allowed(l) {
				return l
			}
		}
	}

	return def
}

// DisplayName is the name of locale in its own language, e.g. "한국어".
func DisplayName(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return locale
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i >= 0 {
		s = s[:i]
	}
	return s
}
