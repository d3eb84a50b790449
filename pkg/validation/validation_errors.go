package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Name":             "Name",
	"Email":            "Email",
	"Phone":            "Phone",
	"Company":          "Company",
	"Message":          "Message",
	"RequestType":      "Request type",
	"RequestTypeLabel": "Request type label",
}

// FirstError converts a validator error into a single human-readable
// message. Validation is rejected as a whole: the first violation wins,
// there is no aggregation across fields.
func FirstError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}
	return formatFieldError(validationErrors[0])
}

func formatFieldError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label, e.Param())

	case "email_shape":
		return "Invalid email format"

	case "not_disposable":
		return "Disposable email addresses are not allowed"

	case "fr_phone":
		return "Invalid phone number format"

	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
