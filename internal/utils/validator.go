// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("username", validateUsername)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()

	// Username should be alphanumeric and underscores, 3-50 characters
	if len(username) < 3 || len(username) > 50 {
		return false
	}

	matched, _ := regexp.MatchString("^[a-zA-Z0-9_]+$", username)
	return matched
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "username":
		return "Username must be 3-50 characters and contain only letters, numbers, and underscores"
	default:
		return e.Field() + " is invalid"
	}
}
