package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InvalidInputError reports a rejected payload with a single actionable
// message. Missing required fields take priority over format violations.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// NewValidator constructs the request validator used by the submission
// services. Field names in error messages follow the JSON wire names, and
// the custom "emailshape" rule implements the permissive address gate used
// by the site's forms.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return IsEmailShape(fl.Field().String())
	})

	return v
}

// IsEmailShape reports whether the address has the minimal local@domain.tld
// shape: exactly one "@", a non-empty local part, and a domain containing
// at least one interior dot. This is a UX gate, not RFC validation.
func IsEmailShape(email string) bool {
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}

	parts := strings.SplitN(email, "@", 2)
	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// checkRequest validates the payload and converts validator failures into a
// single InvalidInputError. The first violation class wins: all missing
// required fields are reported together, before any format complaint.
func checkRequest(v *validator.Validate, payload interface{}) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	var missing []string
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			missing = append(missing, fieldErr.Field())
		}
	}
	if len(missing) > 0 {
		return &InvalidInputError{Message: "Missing required fields: " + strings.Join(missing, ", ")}
	}

	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "emailshape" {
			return &InvalidInputError{Message: "Please provide a valid email address"}
		}
	}

	first := validationErrors[0]
	return &InvalidInputError{Message: fmt.Sprintf("Invalid value for field %s", first.Field())}
}
