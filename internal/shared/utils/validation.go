package utils

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"ticketd/internal/shared/errors"
)

// BindingError converts a request binding failure into a structured validation
// error. Validator failures are aggregated into a per-field message map so a
// single response reports every invalid field; malformed JSON and other
// binding failures become a plain bad request error.
func BindingError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldName(fe)] = fieldErrorMessage(fe)
		}
		return errors.NewValidationError("Validation failed").WithFields(fields)
	}
	return errors.NewBadRequestError("invalid request body", err.Error())
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace is Struct.Field; strip the struct prefix.
	name := fe.Field()
	if name == "" {
		name = fe.StructField()
	}
	return name
}

// fieldErrorMessage returns a user-friendly error message for a field validation error
func fieldErrorMessage(fe validator.FieldError) string {
	field := fieldName(fe)
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
