package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var e164Re = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("severity", validateSeverity)
	validate.RegisterValidation("e164phone", validateE164)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateSeverity(fl validator.FieldLevel) bool {
	s := fl.Field().Int()
	return s >= 1 && s <= 10
}

func validateE164(fl validator.FieldLevel) bool {
	return e164Re.MatchString(fl.Field().String())
}
