package validation

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/go-playground/validator/v10"
)

// RegistrationForm is the data entered on the registration screen.
type RegistrationForm struct {
	Email           string `validate:"required,app_email"`
	Password        string `validate:"required,min=8,app_password"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	FirstName       string `validate:"required,min=2,max=50"`
	LastName        string `validate:"required,min=2,max=50"`
	PhoneNumber     string `validate:"required,app_phone"`
}

// Profile returns the profile part of the form.
func (f RegistrationForm) Profile() models.UserProfile {
	return models.UserProfile{
		Email:       f.Email,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		PhoneNumber: f.PhoneNumber,
	}
}

// LoginForm is the data entered on the sign-in screen.
type LoginForm struct {
	Email    string `validate:"required,app_email"`
	Password string `validate:"required,min=8"`
}

// ResetForm is the data entered on the password reset screen.
type ResetForm struct {
	Email           string `validate:"required,app_email"`
	NewPassword     string `validate:"required,min=8,app_password"`
	ConfirmPassword string `validate:"required,eqfield=NewPassword"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "app_email", ValidateEmail)
	mustRegister(v, "app_phone", ValidatePhone)
	mustRegister(v, "app_password", ValidatePassword)
	return v
}

func mustRegister(v *validator.Validate, tag string, fn func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// ValidateRegistration checks every field of f and returns the first problem
// as an error wrapping common.ErrorValidation.
func ValidateRegistration(f RegistrationForm) error {
	return check(f)
}

// ValidateLogin checks f the same way as ValidateRegistration.
func ValidateLogin(f LoginForm) error {
	return check(f)
}

func ValidateReset(f ResetForm) error {
	return check(f)
}

func check(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s", common.ErrorValidation, message(verrs[0]))
	}
	return fmt.Errorf("%w: %s", common.ErrorValidation, err.Error())
}

var fieldLabels = map[string]string{
	"Email":           "Email",
	"Password":        "Password",
	"NewPassword":     "New password",
	"ConfirmPassword": "Password confirmation",
	"FirstName":       "First name",
	"LastName":        "Last name",
	"PhoneNumber":     "Phone number",
}

func message(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		if fe.Field() == "ConfirmPassword" {
			return "Please confirm your password"
		}
		return label + " is required"
	case "min":
		if fe.Field() == "NewPassword" {
			return fmt.Sprintf("Password must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", label, fe.Param())
	case "eqfield":
		return "Passwords must match"
	case "app_email":
		return "Please enter a valid email address"
	case "app_phone":
		return "Please enter a valid phone number"
	case "app_password":
		return "Password must contain at least 1 uppercase, 1 lowercase, 1 number, and 1 special character"
	}
	return fmt.Sprintf("%s is invalid", label)
}
