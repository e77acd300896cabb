package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

var errNotLoggedIn = errors.New("not logged in")

// Status prints the current session state.
func (a *App) Status(ctx context.Context) error {
	st := a.session.State()

	a.printf("State: %s\n", st.Phase())
	if st.User != nil {
		a.printf("User: %s <%s>\n", st.User.FullName(), st.User.Email)
		a.printf("Session: %s\n", st.SessionID)
	}
	if st.LoginAttempts > 0 {
		a.printf("Failed attempts: %d\n", st.LoginAttempts)
	}
	if st.IsLocked {
		a.printf("Time remaining: %s\n", formatTime(a.session.RemainingLockSeconds(ctx)))
	}

	if st.BiometricsAvailable {
		state := "disabled"
		if a.session.BiometricsEnabled(ctx) {
			state = "enabled"
		}
		a.printf("%s: %s\n", a.biometryName(), state)
	} else {
		a.println("Biometrics: not available")
	}
	return nil
}

// EnableBiometrics turns on biometric sign-in after a successful prompt.
func (a *App) EnableBiometrics(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Sign in first.")
		return errNotLoggedIn
	}

	err := a.session.EnableBiometrics(ctx)
	name := a.biometryName()
	switch {
	case err == nil:
		a.printf("%s has been enabled! You can now sign in quickly using your %s.\n", name, strings.ToLower(name))
	case errors.Is(err, common.ErrBiometricsUnavailable):
		a.println("Biometric authentication is not available on this device.")
	case errors.Is(err, common.ErrBiometricAuthFailed):
		a.printf("%s authentication failed. Please try again.\n", name)
	default:
		a.log.Error(ctx, "failed to enable biometrics", "error", err)
		a.println("Failed to enable biometrics.")
	}
	return err
}

// DisableBiometrics turns biometric sign-in off after confirmation.
func (a *App) DisableBiometrics(ctx context.Context) error {
	name := a.biometryName()
	if !getConfirmation(a.reader, "Are you sure you want to disable "+name+"?", a.out) {
		return nil
	}
	if err := a.session.DisableBiometrics(ctx); err != nil {
		a.log.Error(ctx, "failed to disable biometrics", "error", err)
		a.println("Failed to disable biometrics.")
		return err
	}
	a.printf("%s has been disabled. You can now only sign in with your email and password.\n", name)
	return nil
}

// Theme prints the saved theme, or saves a new one when args holds one.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		t, err := a.prefs.Theme(ctx)
		if err != nil {
			a.log.Error(ctx, "failed to load theme", "error", err)
			return err
		}
		if t == services.ThemeSystem {
			a.println("Theme: system")
		} else {
			a.printf("Theme: %s\n", t)
		}
		return nil
	}

	t, err := services.ParseTheme(strings.ToLower(args[0]))
	if err != nil {
		a.println("Usage: theme [light|dark]")
		return err
	}
	if err := a.prefs.SetTheme(ctx, t); err != nil {
		a.log.Error(ctx, "failed to save theme", "error", err)
		return err
	}
	a.printf("Theme: %s\n", t)
	return nil
}
