package auth

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Howling-Techie/be-nc-news/apperror"
)

// Registration format rules. Every rule has its own rejection message so a
// client knows exactly which field was at fault.
var (
	usernameRe = regexp.MustCompile(`^\w{6,20}$`)
	nameRe     = regexp.MustCompile(`^[\w\s-]{6,20}$`)
	passwordRe = regexp.MustCompile(`^\S{6,20}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "username_format", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "display_name", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		// The character class admits whitespace, so leading/trailing
		// spaces are rejected separately.
		return nameRe.MatchString(name) && strings.TrimSpace(name) == name
	})
	mustRegister(v, "password_format", func(fl validator.FieldLevel) bool {
		return passwordRe.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidateRegister checks the registration payload against the format rules.
// Format runs before any existence check or write; the first violation is
// reported with its field-specific message.
func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return apperror.NewValidationError(violationMessage(err), nil)
	}
	return nil
}

// ValidateSignIn checks that both sign-in fields are present.
func ValidateSignIn(req SignInRequest) error {
	if err := validate.Struct(req); err != nil {
		return apperror.NewValidationError("Missing required properties in body", nil)
	}
	return nil
}

func violationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return "Missing required properties in body"
	}
	switch fe.Field() {
	case "Username":
		return "Invalid username format"
	case "Name":
		return "Invalid name format"
	case "Password":
		return "Invalid password format"
	}
	return "Invalid request body"
}
