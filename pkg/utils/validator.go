package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ValidationFieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value,omitempty"`
}

// ValidateStruct runs the validate tags on s and returns the raw validator error.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors converts a validator error into field-level details
// suitable for a response body.
func GetValidationErrors(err error) []ValidationFieldError {
	var errs []ValidationFieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs
	}

	for _, fe := range validationErrors {
		errs = append(errs, ValidationFieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Value: fe.Param(),
		})
	}

	return errs
}
