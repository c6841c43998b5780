package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds a validator that reports fields by their json names,
// so error bodies use the same keys as the request payload.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessages converts a validator error into the per-field message
// list of the error body shape.
func validationMessages(err error) map[string][]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string][]string{"message": {err.Error()}}
	}

	messages := make(map[string][]string)
	for _, e := range validationErrors {
		field := e.Field()
		label := strings.ReplaceAll(field, "_", " ")
		var msg string
		switch e.Tag() {
		case "required":
			msg = fmt.Sprintf("The %s field is required.", label)
		case "email":
			msg = fmt.Sprintf("The %s field must be a valid email address.", label)
		case "max":
			msg = fmt.Sprintf("The %s field must not be greater than %s characters.", label, e.Param())
		default:
			msg = fmt.Sprintf("The %s field is invalid.", label)
		}
		messages[field] = append(messages[field], msg)
	}
	return messages
}
