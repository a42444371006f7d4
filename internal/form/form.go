// Package form validates dialog drafts. A draft is any request struct
// carrying binding tags, so the client checks the same rules the server
// enforces. Errors turns tag violations into the human-readable strings a
// screen shows next to fields; an empty slice means the draft may be
// submitted.
package form

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Same tag gin reads, so drafts reuse the request structs unchanged.
	validate.SetTagName("binding")
	// Report fields by their json names so messages match what the user sees.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Errors validates a draft and returns one message per violated rule.
func Errors(draft interface{}) []string {
	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, message(fe))
	}
	return messages
}

func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s", field, strings.ReplaceAll(fe.StructField(), "_", " "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
