// Package schema declares the request shapes accepted by the API and
// validates untrusted input against their field constraints. Validation is
// structural only and runs before any domain logic or storage access; a
// failure is always reported as a list of field-level violations, never a
// panic.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"campushub/internal/httperr"
)

// normalizer is implemented by requests that trim and default their fields
// before validation.
type normalizer interface {
	Normalize()
}

// ruleChecker is implemented by requests with constraints that struct tags
// cannot express (date parsing, future-date checks).
type ruleChecker interface {
	CheckRules() []httperr.FieldError
}

// EchoValidator adapts go-playground/validator to echo's Validator
// interface and converts failures into the typed validation error.
type EchoValidator struct {
	validate *validator.Validate
}

// NewEchoValidator builds the process-wide request validator. Field names
// in violation reports follow the json tag, not the Go field name.
func NewEchoValidator() *EchoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &EchoValidator{validate: v}
}

// Validate implements echo.Validator. It normalizes the request, applies
// tag constraints and schema-level rules, and returns either nil or a
// single validation error carrying every violation found.
func (ev *EchoValidator) Validate(i interface{}) error {
	if n, ok := i.(normalizer); ok {
		n.Normalize()
	}

	var fields []httperr.FieldError
	if err := ev.validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			// Non-struct input reaching here is a programming error.
			return httperr.Internal()
		}
		for _, fe := range verrs {
			fields = append(fields, httperr.FieldError{Field: fe.Field(), Message: violationMessage(fe)})
		}
	}
	if rc, ok := i.(ruleChecker); ok {
		fields = append(fields, rc.CheckRules()...)
	}

	if len(fields) > 0 {
		return httperr.Validation(fields)
	}
	return nil
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate parses a client-supplied calendar date or timestamp.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
