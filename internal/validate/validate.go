// Package validate performs client-side field validation. Validation errors
// block submission and never reach the network.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one invalid field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the set of field errors for a submission.
type Errors []FieldError

// Error implements the error interface.
func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

var phoneRe = regexp.MustCompile(`^[\d\s\-\+\(\)]{10,}$`)

// Validator validates form submissions.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Credentials checks a login submission.
func (val *Validator) Credentials(email, password string) error {
	errs := val.collect(credentials{Email: email, Password: password}, map[string]string{
		"Email":    "email",
		"Password": "password",
	})
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type registration struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Registration checks a register submission, including password strength.
func (val *Validator) Registration(name, email, password string) error {
	errs := val.collect(registration{Name: name, Email: email, Password: password}, map[string]string{
		"Name":     "name",
		"Email":    "email",
		"Password": "password",
	})
	if password != "" && len(password) >= 6 {
		if msg := passwordStrength(password); msg != "" {
			errs = append(errs, FieldError{Field: "password", Message: msg})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (val *Validator) collect(s any, fields map[string]string) Errors {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var out Errors
	for _, fe := range err.(validator.ValidationErrors) {
		name, ok := fields[fe.Field()]
		if !ok {
			name = strings.ToLower(fe.Field())
		}
		out = append(out, FieldError{Field: name, Message: messageFor(fe, name)})
	}
	return out
}

func messageFor(fe validator.FieldError, name string) string {
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
	default:
		return name + " is invalid"
	}
}

// passwordStrength enforces at least one uppercase, lowercase, and digit.
func passwordStrength(password string) string {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	switch {
	case !upper:
		return "password must contain at least one uppercase letter"
	case !lower:
		return "password must contain at least one lowercase letter"
	case !digit:
		return "password must contain at least one number"
	}
	return ""
}

// Phone reports whether the phone number looks plausible.
func Phone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// URL reports whether s parses as an absolute URL.
func URL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
