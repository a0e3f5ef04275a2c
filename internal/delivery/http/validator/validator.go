// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"

	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// "phone" shares the domain rule so a phone can never look like an email.
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return entity.IsValidPhone(fl.Field().String())
	})

	return &CustomValidator{validate: validate}
}

// Validate returns ErrValidationFailed with one message per offending field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "validate request")
	}

	details := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[fieldKey(fieldErr)] = message(fieldErr)
	}

	return domainerrors.ErrValidationFailed.WithDetails(details)
}

// fieldKey drops the top-level struct name: "CreateSurveyRequest.questions[0].label" -> "questions[0].label".
func fieldKey(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}

	return fieldErr.Field()
}

func message(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "phone":
		return field + " must be digits with an optional leading +"
	case "oneof":
		return field + " must be one of " + strings.ReplaceAll(fieldErr.Param(), "'", "")
	case "min":
		return field + " must be at least " + fieldErr.Param()
	case "max":
		return field + " must be at most " + fieldErr.Param()
	case "gte":
		return field + " must be greater than or equal to " + fieldErr.Param()
	case "uuid":
		return field + " must be a UUID"
	default:
		return field + " is invalid"
	}
}
