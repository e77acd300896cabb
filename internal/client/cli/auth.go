package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/biometrics"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/validation"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

var errLocked = errors.New("sign-in locked")

// Register collects a registration form, validates it and creates the
// account. Entered profile fields are kept as a draft until registration
// succeeds, so an aborted attempt can be resumed.
func (a *App) Register(ctx context.Context) error {
	draft, err := a.prefs.Draft(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load registration draft", "error", err)
	}
	if draft == nil {
		draft = &models.RegistrationDraft{}
	} else {
		a.println("Resuming saved registration (press Enter to keep a value)")
	}

	fields := []struct {
		prompt string
		value  *string
	}{
		{"Enter email", &draft.Email},
		{"Enter first name", &draft.FirstName},
		{"Enter last name", &draft.LastName},
		{"Enter phone number", &draft.PhoneNumber},
	}
	for _, f := range fields {
		prompt := f.prompt
		if *f.value != "" {
			prompt = fmt.Sprintf("%s [%s]", f.prompt, *f.value)
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.value = v
		}
	}

	if err := a.prefs.SaveDraft(ctx, *draft); err != nil {
		a.log.Warn(ctx, "failed to save registration draft", "error", err)
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	form := validation.RegistrationForm{
		Email:           draft.Email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		FirstName:       draft.FirstName,
		LastName:        draft.LastName,
		PhoneNumber:     draft.PhoneNumber,
	}
	if err := validation.ValidateRegistration(form); err != nil {
		a.println(err.Error())
		return err
	}
	a.printf("Password strength: %s\n", validation.PasswordStrength(form.Password))

	if err := a.session.Register(ctx, form.Profile(), form.Password); err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		a.println("Registration failed. Please try again.")
		return err
	}

	if err := a.prefs.ClearDraft(ctx); err != nil {
		a.log.Warn(ctx, "failed to clear registration draft", "error", err)
	}

	a.printf("Welcome, %s!\n", form.Profile().FullName())
	return nil
}

// Login prompts for an email and password and signs in.
func (a *App) Login(ctx context.Context) error {
	if a.session.State().IsLocked {
		a.session.RecheckLockStatus(ctx)
		if a.session.State().IsLocked {
			a.println(lockedMessage(a.session.RemainingLockSeconds(ctx)))
			return errLocked
		}
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validation.ValidateLogin(validation.LoginForm{Email: email, Password: string(password)}); err != nil {
		a.println(err.Error())
		return err
	}

	if !a.session.Login(ctx, email, string(password)) {
		st := a.session.State()
		a.println(failedLoginMessage(st))
		if st.IsLocked {
			return errLocked
		}
		return nil
	}

	a.welcome()
	return nil
}

// LoginBiometric signs in with the biometric sensor.
func (a *App) LoginBiometric(ctx context.Context) error {
	st := a.session.State()
	if !st.BiometricsAvailable {
		a.println("Biometric sign-in is not available on this device.")
		return common.ErrBiometricsUnavailable
	}
	if !a.session.BiometricsEnabled(ctx) {
		a.println("Biometric sign-in is not enabled. Sign in with your password and run 'bio-on'.")
		return nil
	}

	if !a.session.LoginWithBiometrics(ctx) {
		st = a.session.State()
		if st.IsLocked {
			a.println(lockedMessage(a.session.RemainingLockSeconds(ctx)))
			return errLocked
		}
		a.println("Biometric authentication failed. Please try again or use your password.")
		return common.ErrBiometricAuthFailed
	}

	a.welcome()
	return nil
}

// Logout ends the session after confirmation. Stored credentials stay, so
// signing in again with the password works.
func (a *App) Logout(ctx context.Context) error {
	if !getConfirmation(a.reader, "Are you sure you want to logout?", a.out) {
		return nil
	}
	a.session.Logout(ctx)
	a.println("Logged out.")
	return nil
}

// Forget removes the registered account from this device after confirmation.
func (a *App) Forget(ctx context.Context) error {
	if !getConfirmation(a.reader, "Remove the stored account from this device?", a.out) {
		return nil
	}
	if err := a.session.Forget(ctx); err != nil {
		a.log.Error(ctx, "failed to remove stored account", "error", err)
		a.println("Failed to remove the stored account.")
		return err
	}
	a.println("Stored account removed. Register to sign in again.")
	return nil
}

// ResetPassword rewrites the stored password for the registered email.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	form := validation.ResetForm{Email: email, NewPassword: string(password), ConfirmPassword: string(confirm)}
	if err := validation.ValidateReset(form); err != nil {
		a.println(err.Error())
		return err
	}

	if err := a.reset.Reset(ctx, form.Email, form.NewPassword); err != nil {
		if errors.Is(err, common.ErrEmailNotRegistered) {
			a.println("No account found with this email address. Please check your email or register a new account.")
			return err
		}
		a.log.Error(ctx, "password reset failed", "error", err)
		a.println("Failed to reset password. Please try again.")
		return err
	}

	a.println("Your password has been updated successfully. You can now sign in with your new password.")
	return nil
}

func (a *App) welcome() {
	st := a.session.State()
	if st.User == nil {
		return
	}
	name := st.User.FullName()
	if name == "" {
		name = st.User.Email
	}
	a.printf("Welcome back, %s!\n", name)
}

func (a *App) biometryName() string {
	return biometrics.DisplayName(a.session.State().BiometryKind)
}
