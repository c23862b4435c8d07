package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

type formatter func(field, param string) string

func bound(op string) formatter {
	return func(field, param string) string {
		return fmt.Sprintf("%s must be %s %s", field, op, param)
	}
}

func fixed(suffix string) formatter {
	return func(field, _ string) string {
		return field + " " + suffix
	}
}

// formatters turn a failed tag into a client-facing sentence. Tags without
// an entry fall back to the validator's own error text.
var formatters = map[string]formatter{
	"required": fixed("is required"),
	"gt":       bound("greater than"),
	"gte":      bound("greater than or equal to"),
	"min":      bound("greater than or equal to"),
	"lt":       bound("less than"),
	"lte":      bound("less than or equal to"),
	"max":      bound("less than or equal to"),
	"oneof":    bound("one of"),
	"numeric":  fixed("must be a number"),
	"number":   fixed("must be a number"),
	"date":     fixed("must be a date in YYYY-MM-DD format"),
	"rating":   fixed(fmt.Sprintf("must be between %d and %d", minRating, maxRating)),
}

// message reports the first failed field that has a formatter.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fe := range fieldErrors {
		if format, ok := formatters[fe.Tag()]; ok {
			return format(fe.Field(), fe.Param())
		}
	}

	return fieldErrors.Error()
}
