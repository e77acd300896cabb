// Package validation checks user input before it reaches the session core:
// email and phone formats, password strength and the registration and login
// forms.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-+()]+$`)
)

const (
	minPasswordLen  = 8
	minPhoneDigits  = 10
	passwordSpecial = "@$!%*?&"
)

// Strength grades a password.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// ValidateEmail reports whether email looks like local@domain.tld.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePhone accepts digits, spaces, dashes, plus signs and parentheses,
// with at least 10 digits overall.
func ValidatePhone(phone string) bool {
	if !phoneRe.MatchString(phone) {
		return false
	}
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits
}

// ValidatePassword requires at least 8 characters drawn from letters, digits
// and @$!%*?&, with at least one lowercase letter, one uppercase letter, one
// digit and one special character.
func ValidatePassword(password string) bool {
	if len(password) < minPasswordLen {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r > unicode.MaxASCII:
			return false
		case 'a' <= r && r <= 'z':
			lower = true
		case 'A' <= r && r <= 'Z':
			upper = true
		case '0' <= r && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecial, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

// PasswordStrength is weak below 8 characters, strong when ValidatePassword
// accepts it and medium otherwise.
func PasswordStrength(password string) Strength {
	if len(password) < minPasswordLen {
		return StrengthWeak
	}
	if !ValidatePassword(password) {
		return StrengthMedium
	}
	return StrengthStrong
}
