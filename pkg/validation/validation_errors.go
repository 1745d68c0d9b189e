package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// FieldLabels maps JSON field names to labels used in messages
var FieldLabels = map[string]string{
	"name":             "Name",
	"email":            "Email",
	"phone":            "Phone",
	"company":          "Company",
	"projectType":      "Project Type",
	"budget":           "Budget Range",
	"timeline":         "Timeline",
	"message":          "Project Description",
	"preferredContact": "Preferred Contact",
}

// MissingFields returns the fields that failed the required rule, in struct order.
func MissingFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	required := lo.Filter(validationErrors, func(e validator.FieldError, _ int) bool {
		return e.Tag() == "required"
	})
	return lo.Map(required, func(e validator.FieldError, _ int) string {
		return e.Field()
	})
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	return lo.Map(validationErrors, func(e validator.FieldError, _ int) string {
		return formatSingleError(e)
	})
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	return FieldMessage(e.Field(), e.Tag())
}

// FieldMessage renders the message for field failing tag
func FieldMessage(field, tag string) string {
	label := getFieldLabel(field)

	switch tag {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "email_shape":
		return fmt.Sprintf("%s: invalid email format", label)
	case "intl_phone":
		return fmt.Sprintf("%s: use international format (e.g., %s)", label, PhoneExample)
	default:
		return fmt.Sprintf("%s: validation failed (%s)", label, tag)
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts camelCase to spaced, capitalised words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i == 0 {
			r = unicode.ToUpper(r)
		} else if r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
