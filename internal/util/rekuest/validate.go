package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"exusiai.dev/chartboard/internal/pkg/cberr"
	"exusiai.dev/chartboard/internal/pkg/i18n"
	"exusiai.dev/chartboard/internal/pkg/middlewares"
	"exusiai.dev/chartboard/internal/util"
)

var Validate = util.NewValidator()

// messages holds the texts of the custom validation tags. {0} is the field name.
var messages = map[string]map[string]string{
	i18n.LocaleEnglish: {
		"seed":    "{0} must be a non-negative integer",
		"locale":  "{0} must be a supported locale",
		"chartid": "{0} must be a known chart id",
	},
	i18n.LocaleKorean: {
		"required": "{0}은(는) 필수 항목입니다",
		"seed":     "{0}은(는) 0 이상의 정수여야 합니다",
		"locale":   "{0}은(는) 지원되는 언어여야 합니다",
		"chartid":  "{0}은(는) 존재하는 차트 ID여야 합니다",
	},
}

func init() {
	entr, _ := i18n.UT.GetTranslator(i18n.LocaleEnglish)
	if err := enTranslations.RegisterDefaultTranslations(Validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", i18n.LocaleEnglish).Msg("could not register translation")
	}

	for locale, tags := range messages {
		trans, _ := i18n.UT.GetTranslator(locale)
		for tag, text := range tags {
			err := Validate.RegisterTranslation(tag, trans, register(tag, text), translateField(tag))
			if err != nil {
				log.Warn().Err(err).Str("locale", locale).Str("tag", tag).Msg("could not register translation")
			}
		}
	}
}

func register(tag, text string) validator.RegisterTranslationsFunc {
	return func(ut ut.Translator) error {
		return ut.Add(tag, text, true)
	}
}

func translateField(tag string) validator.TranslationFunc {
	return func(ut ut.Translator, fe validator.FieldError) string {
		t, err := ut.T(tag, fe.Field())
		if err != nil {
			return fe.Error()
		}
		return t
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))

	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Message:   fe.Translate(utt),
		})
	}

	return trans
}

func validateStruct(ctx *fiber.Ctx, s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		panic(err)
	}
	return translate(middlewares.TranslatorFromCtx(ctx), errs)
}

// ValidQuery parses the query string into dest and validates it. dest shall
// always be a pointer.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return cberr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(ctx, dest)
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if err := validateStruct(ctx, dest); err != nil {
		return cberr.NewInvalidViolations(err)
	}

	return nil
}
