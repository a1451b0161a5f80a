package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"github.com/mayankpokhriyal/neuronap/pkg/problem"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom wall-clock time validator (zero-padded HH:MM)
	validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return domain.IsClockString(fl.Field().String())
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "gt":
		return "must be greater than " + err.Param()
	case "lte":
		return "must be at most " + err.Param()
	case "email":
		return "must be a valid email address"
	case "clock":
		return "must be a zero-padded 24-hour HH:MM time"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
