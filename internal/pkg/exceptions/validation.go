package exceptions

import (
	"errors"
	"patient-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ListValidationErrors renders one message per failing field, in struct order.
func ListValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, formatFieldError(fieldErr))
	}
	return messages
}

func FormatAllValidationErrors(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	messages := ListValidationErrors(err)
	if len(messages) == 0 {
		return constvars.ErrDevInvalidInput
	}
	return strings.Join(messages, ", ")
}

func FormatFirstValidationError(err error) string {
	messages := ListValidationErrors(err)
	if len(messages) == 0 {
		return constvars.ErrDevInvalidInput
	}
	return messages[0]
}

func formatFieldError(fieldErr validator.FieldError) string {
	fieldName := strings.ToLower(fieldErr.Field())
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}
