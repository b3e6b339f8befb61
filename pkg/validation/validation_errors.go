package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Failure is the first rule a submission broke, in check order.
type Failure int

const (
	FailureNone Failure = iota
	FailureMissingField
	FailureInvalidEmail
	FailureOther
)

// Classify reduces validator output to the first failing rule.
// Missing required fields always win over format errors.
func Classify(err error) Failure {
	if err == nil {
		return FailureNone
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return FailureOther
	}

	result := FailureOther
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			return FailureMissingField
		case "contact_email", "email":
			result = FailureInvalidEmail
		}
	}
	return result
}

// FormatValidationErrors converts validator.ValidationErrors to readable messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", e.Field())
	case "contact_email", "email":
		return fmt.Sprintf("%s: invalid email format", e.Field())
	default:
		return fmt.Sprintf("%s: failed %s validation", e.Field(), e.Tag())
	}
}
