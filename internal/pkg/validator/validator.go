package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/w3w-geocoder/internal/address"
	apperrors "github.com/w3w-geocoder/internal/pkg/errors"
	"github.com/w3w-geocoder/internal/request"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("threewords", func(fl validator.FieldLevel) bool {
		return address.IsPossible3wa(fl.Field().String())
	})
	_ = validate.RegisterValidation("country2", func(fl validator.FieldLevel) bool {
		return request.IsCountryCode(fl.Field().String())
	})
}

// Validate checks s against its validate tags. Failures are returned as an
// InvalidParameterShape error naming the first offending field.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	if fe.Tag() == "required" {
		return apperrors.MissingField(field)
	}
	return apperrors.InvalidShape(field, "%s", describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "threewords":
		return fmt.Sprintf("%q is not a three word address", fe.Value())
	case "country2":
		return fmt.Sprintf("%q is not a two letter country code", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}

// GetValidator exposes the shared instance for custom registrations.
func GetValidator() *validator.Validate {
	return validate
}
