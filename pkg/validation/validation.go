package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatErrors converts validator.ValidationErrors into a field->message map
// keyed by the JSON-style snake_case field name.
func FormatErrors(err error) map[string]string {
	fields := map[string]string{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["body"] = err.Error()
		return fields
	}

	for _, e := range validationErrors {
		fields[toSnakeCase(e.Field())] = formatSingleError(e)
	}
	return fields
}

func formatSingleError(e validator.FieldError) string {
	label := formatLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, e.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be greater than or equal to %s", label, formatLabel(e.Param()))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// formatLabel converts CamelCase to spaced words
func formatLabel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
