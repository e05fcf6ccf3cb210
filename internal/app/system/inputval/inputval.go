// Package inputval validates request input structs using `validate` struct
// tags, with human-readable messages taken from the `label` tag.
package inputval

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// Report the label tag (falling back to the field name) so messages
	// match what the client displayed to the user.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return val
}

// FieldError describes a single failed constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result holds the outcome of validating one input struct.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any field failed validation.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first error message, or "" when validation passed.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// Fields returns all failed field names.
func (r Result) Fields() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Field)
	}
	return out
}

// Validate checks the input struct against its `validate` tags.
func Validate(input any) Result {
	err := v.Struct(input)
	if err == nil {
		return Result{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{Errors: []FieldError{{Field: "input", Message: err.Error()}}}
	}

	res := Result{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return res
}

// message renders one constraint failure in the voice the API has always
// used ("Title must be between 5 and 100 characters").
func message(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		if isStringKind(fe) {
			return fmt.Sprintf("%s must be at least %s characters long", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		if isStringKind(fe) {
			return fmt.Sprintf("%s must be at most %s characters long", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be %s or more", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

func isStringKind(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}
