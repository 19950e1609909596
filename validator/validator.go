package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"backoffice/errors"
	"backoffice/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report json field names instead of Go field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	}
}

// Struct validates the binding tags of a request struct with the same engine
// gin uses at the HTTP edge.
func Struct(obj interface{}) error {
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return Translate(err)
	}
	return nil
}

// Translate turns a binding or validation failure into a VALIDATION_ERROR.
func Translate(err error) *errors.AppError {
	var ve validator.ValidationErrors
	if stderrors.As(err, &ve) {
		return errors.NewAppError(errors.ErrCodeValidation, FormatValidationErrors(ve), err)
	}
	return errors.NewAppError(errors.ErrCodeValidation, "malformed request body", err)
}

// FormatValidationErrors renders every failed field as a short sentence.
func FormatValidationErrors(ve validator.ValidationErrors) string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must not be empty", field)
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// Required rejects values that are empty once surrounding whitespace is gone.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.Validation("%s is required", field)
	}
	return nil
}

// ValidateRateWindow requires validTo to be strictly after validFrom.
func ValidateRateWindow(validFrom, validTo int64) error {
	if validTo <= validFrom {
		return errors.Conflict("validTo must be after validFrom")
	}
	return nil
}

// ValidateStayWindow requires checkOut to be strictly after checkIn.
func ValidateStayWindow(checkIn, checkOut int64) error {
	if checkOut <= checkIn {
		return errors.Conflict("checkOut must be after checkIn")
	}
	return nil
}

// ValidateAttributes checks every typed value of a schema-less field.
func ValidateAttributes(field string, attrs *models.Attributes) error {
	if attrs == nil {
		return nil
	}
	if err := attrs.Validate(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("%s: %v", field, err), err)
	}
	return nil
}
