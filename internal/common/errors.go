// Package common defines shared sentinel errors and small helpers used across
// the gophauth client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Password reset errors.
	ErrEmailNotRegistered = errors.New("email not registered")

	// Validation errors.
	ErrorValidation = errors.New("validation error")

	// Credential vault errors (unreadable or tampered ciphertext).
	ErrVaultCorrupted = errors.New("credential vault corrupted")

	// Biometric capability errors.
	ErrBiometricsUnavailable = errors.New("biometrics unavailable")
	ErrBiometricAuthFailed   = errors.New("biometric authentication failed")
)
