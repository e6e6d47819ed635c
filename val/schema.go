package val

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/code19m/errx"
	"github.com/go-playground/validator/v10"
)

const (
	// CodeValidationFailed is returned when a schema or rule check fails.
	CodeValidationFailed = "VALIDATION_FAILED"
)

// ValidateSchema validates a struct using its `validate` tags.
// Violations are reported as a single errx error of type T_Validation whose
// fields map each failing field name to a human-readable description.
func ValidateSchema(schema any) error {
	err := getValidator().Struct(schema)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(errx.M)
		for _, fieldErr := range validationErrors {
			fields[fieldErr.Field()] = fieldErrDescription(fieldErr)
		}

		return errx.New(
			"Validation failed. See fields for details.",
			errx.WithCode(CodeValidationFailed),
			errx.WithType(errx.T_Validation),
			errx.WithFields(fields),
		)
	}

	return errx.New(
		fmt.Sprintf("Unknown validation error: %s", err.Error()),
		errx.WithCode(CodeValidationFailed),
		errx.WithType(errx.T_Validation),
	)
}

func fieldErrDescription(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	param := fieldErr.Param()

	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", param)
		}
		return fmt.Sprintf("Must be at least %s", param)
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", param)
		}
		return fmt.Sprintf("Must be at most %s", param)
	case "gt":
		return fmt.Sprintf("Must be greater than %s", param)
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", param)
	case "lt":
		return fmt.Sprintf("Must be less than %s", param)
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", param)
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(param, " ", ", "))
	case "uuid":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Failed validation: %s", tag)
	}
}
