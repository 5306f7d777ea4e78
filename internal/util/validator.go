package util

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"exusiai.dev/chartboard/internal/gallery"
	"exusiai.dev/chartboard/internal/pkg/i18n"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("seed", seed)
	validate.RegisterValidation("locale", locale)
	validate.RegisterValidation("chartid", chartID)

	return validate
}

func seed(fl validator.FieldLevel) bool {
	_, err := strconv.ParseUint(fl.Field().String(), 10, 64)
	return err == nil
}

func locale(fl validator.FieldLevel) bool {
	return i18n.Supported(fl.Field().String())
}

func chartID(fl validator.FieldLevel) bool {
	_, ok := gallery.Lookup(fl.Field().String())
	return ok
}
