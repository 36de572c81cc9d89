package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskboard/internal/apperror"
)

var ErrInvalidParams = apperror.New(apperror.KindValidation, "VALIDATION_ERR_01", "validation failed")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// Struct validates params against their `validate` tags and reports every
// failing field in one ErrInvalidParams.
func Struct(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrInvalidParams.Wrap(err)
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		details = append(details, describe(fieldError))
	}
	return ErrInvalidParams.With("%s", strings.Join(details, "; "))
}

func describe(fieldError validator.FieldError) string {
	field := fieldError.Field()
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fieldError.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fieldError.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fieldError.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
