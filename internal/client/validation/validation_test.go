package validation

import (
	"testing"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	for _, ok := range []string{"test@example.com", "user.name@domain.co.uk", "user+tag@example.com"} {
		assert.True(t, ValidateEmail(ok), ok)
	}
	for _, bad := range []string{"invalid", "invalid@", "@example.com", "user@", "", "a@b.c"} {
		assert.False(t, ValidateEmail(bad), bad)
	}
}

func TestValidatePassword(t *testing.T) {
	for _, ok := range []string{"Password123!", "MyP@ssw0rd", "SecurePass1!", "Pw1!aaaa"} {
		assert.True(t, ValidatePassword(ok), ok)
	}
	for _, bad := range []string{"password", "PASSWORD123", "Password123", "Pass1!", "", "Password 123!", "Pässword123!"} {
		assert.False(t, ValidatePassword(bad), bad)
	}
}

func TestValidatePhone(t *testing.T) {
	for _, ok := range []string{"1234567890", "123-456-7890", "+1 (123) 456-7890", "123 456 7890"} {
		assert.True(t, ValidatePhone(ok), ok)
	}
	for _, bad := range []string{"123", "abc", "", "123456789x0"} {
		assert.False(t, ValidatePhone(bad), bad)
	}
}

func TestPasswordStrength(t *testing.T) {
	assert.Equal(t, StrengthWeak, PasswordStrength("weak"))
	assert.Equal(t, StrengthMedium, PasswordStrength("Password"))
	assert.Equal(t, StrengthStrong, PasswordStrength("Password123!"))
}

func validRegistration() RegistrationForm {
	return RegistrationForm{
		Email:           "test@example.com",
		Password:        "Password123!",
		ConfirmPassword: "Password123!",
		FirstName:       "John",
		LastName:        "Doe",
		PhoneNumber:     "1234567890",
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *RegistrationForm)
		wantMsg string
	}{
		{name: "valid", mutate: func(f *RegistrationForm) {}},
		{
			name:    "mismatched passwords",
			mutate:  func(f *RegistrationForm) { f.ConfirmPassword = "DifferentPassword123!" },
			wantMsg: "Passwords must match",
		},
		{
			name:    "missing first name",
			mutate:  func(f *RegistrationForm) { f.FirstName = "" },
			wantMsg: "First name is required",
		},
		{
			name:    "short last name",
			mutate:  func(f *RegistrationForm) { f.LastName = "D" },
			wantMsg: "Last name must be at least 2 characters",
		},
		{
			name:    "short phone",
			mutate:  func(f *RegistrationForm) { f.PhoneNumber = "123" },
			wantMsg: "Please enter a valid phone number",
		},
		{
			name:    "bad email",
			mutate:  func(f *RegistrationForm) { f.Email = "invalid-email" },
			wantMsg: "Please enter a valid email address",
		},
		{
			name:    "weak password",
			mutate:  func(f *RegistrationForm) { f.Password, f.ConfirmPassword = "Password123", "Password123" },
			wantMsg: "Password must contain at least 1 uppercase, 1 lowercase, 1 number, and 1 special character",
		},
		{
			name:    "missing confirmation",
			mutate:  func(f *RegistrationForm) { f.ConfirmPassword = "" },
			wantMsg: "Please confirm your password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validRegistration()
			tt.mutate(&f)

			err := ValidateRegistration(f)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrorValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRegistrationForm_Profile(t *testing.T) {
	p := validRegistration().Profile()
	assert.Equal(t, "test@example.com", p.Email)
	assert.Equal(t, "John Doe", p.FullName())
	assert.Equal(t, "1234567890", p.PhoneNumber)
}

func TestValidateLogin(t *testing.T) {
	require.NoError(t, ValidateLogin(LoginForm{Email: "test@example.com", Password: "Password123!"}))

	err := ValidateLogin(LoginForm{Email: "invalid-email", Password: "short"})
	require.ErrorIs(t, err, common.ErrorValidation)

	err = ValidateLogin(LoginForm{})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, err.Error(), "Email is required")
}

func TestValidateReset(t *testing.T) {
	require.NoError(t, ValidateReset(ResetForm{Email: "a@b.com", NewPassword: "NewPass1!", ConfirmPassword: "NewPass1!"}))

	err := ValidateReset(ResetForm{Email: "a@b.com", NewPassword: "NewPass1!", ConfirmPassword: "NewPass2!"})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, err.Error(), "Passwords must match")

	err = ValidateReset(ResetForm{Email: "a@b.com", ConfirmPassword: "x"})
	assert.Contains(t, err.Error(), "New password is required")

	err = ValidateReset(ResetForm{Email: "a@b.com", NewPassword: "Ab1!", ConfirmPassword: "Ab1!"})
	assert.Contains(t, err.Error(), "Password must be at least 8 characters")
}
