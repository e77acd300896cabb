package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// PasswordReset rewrites the stored password for the registered account.
// Nothing leaves the device.
type PasswordReset struct {
	creds CredentialStore
	prefs *Preferences
	log   logging.Logger
}

func NewPasswordReset(creds CredentialStore, prefs PreferenceStore, log logging.Logger) *PasswordReset {
	if log == nil {
		log = logging.NewNop()
	}
	return &PasswordReset{creds: creds, prefs: NewPreferences(prefs), log: log}
}

// Reset replaces the stored credentials with (email, newPassword). The email
// must match the stored profile, otherwise common.ErrEmailNotRegistered is
// returned.
func (r *PasswordReset) Reset(ctx context.Context, email, newPassword string) error {
	profile, err := r.prefs.Profile(ctx)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}
	if profile == nil || profile.Email != email {
		r.log.Info(ctx, "password reset rejected: unknown email")
		return common.ErrEmailNotRegistered
	}

	if err := r.creds.Set(ctx, email, newPassword); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}

	r.log.Info(ctx, "password reset")
	return nil
}
