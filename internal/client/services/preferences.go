package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// Preference keys.
const (
	KeyUserData          = "user_data"
	KeyLockoutRecord     = "lockout_record"
	KeyLoggedOut         = "logged_out_flag"
	KeyBiometricsEnabled = "biometrics_enabled"
	KeyRegistrationDraft = "registration_draft"
	KeyTheme             = "theme_preference"
)

var flagTrue = []byte("true")

// Theme is the persisted color scheme choice.
type Theme string

const (
	// ThemeSystem means no explicit choice was saved.
	ThemeSystem Theme = ""
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return ThemeSystem, fmt.Errorf("%w: unknown theme %q", common.ErrorValidation, s)
}

// Preferences gives typed access to the values the client keeps in the
// preference store.
type Preferences struct {
	store PreferenceStore
}

func NewPreferences(store PreferenceStore) *Preferences {
	return &Preferences{store: store}
}

func (p *Preferences) getJSON(ctx context.Context, key string, v any) (bool, error) {
	data, err := p.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (p *Preferences) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return p.store.Set(ctx, key, data)
}

func (p *Preferences) getFlag(ctx context.Context, key string) (bool, error) {
	data, err := p.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return string(data) == string(flagTrue), nil
}

func (p *Preferences) setFlag(ctx context.Context, key string, on bool) error {
	if on {
		return p.store.Set(ctx, key, flagTrue)
	}
	return p.store.Delete(ctx, key)
}

// Profile returns the stored user profile, or nil when none is stored.
func (p *Preferences) Profile(ctx context.Context) (*models.UserProfile, error) {
	var u models.UserProfile
	ok, err := p.getJSON(ctx, KeyUserData, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (p *Preferences) SetProfile(ctx context.Context, u models.UserProfile) error {
	return p.setJSON(ctx, KeyUserData, u)
}

// Lockout returns the persisted lockout record; a missing record is the zero
// record.
func (p *Preferences) Lockout(ctx context.Context) (models.LockoutRecord, error) {
	var rec models.LockoutRecord
	if _, err := p.getJSON(ctx, KeyLockoutRecord, &rec); err != nil {
		return models.LockoutRecord{}, err
	}
	return rec, nil
}

// SetLockout stores rec in a single write. The zero record removes the key.
func (p *Preferences) SetLockout(ctx context.Context, rec models.LockoutRecord) error {
	if rec.IsZero() {
		return p.store.Delete(ctx, KeyLockoutRecord)
	}
	return p.setJSON(ctx, KeyLockoutRecord, rec)
}

// UpdateLockout applies fn to the persisted record and stores the result.
// When the underlying store supports it the whole read-modify-write runs in
// one transaction. The stored record is returned.
func (p *Preferences) UpdateLockout(ctx context.Context, fn func(models.LockoutRecord) models.LockoutRecord) (models.LockoutRecord, error) {
	u, ok := p.store.(preferenceUpdater)
	if !ok {
		rec, err := p.Lockout(ctx)
		if err != nil {
			return models.LockoutRecord{}, err
		}
		next := fn(rec)
		return next, p.SetLockout(ctx, next)
	}

	var next models.LockoutRecord
	err := u.Update(ctx, KeyLockoutRecord, func(current []byte) ([]byte, error) {
		var rec models.LockoutRecord
		if current != nil {
			if err := json.Unmarshal(current, &rec); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", KeyLockoutRecord, err)
			}
		}
		next = fn(rec)
		if next.IsZero() {
			return nil, nil
		}
		return json.Marshal(next)
	})
	if err != nil {
		return models.LockoutRecord{}, err
	}
	return next, nil
}

func (p *Preferences) LoggedOut(ctx context.Context) (bool, error) {
	return p.getFlag(ctx, KeyLoggedOut)
}

func (p *Preferences) SetLoggedOut(ctx context.Context, on bool) error {
	return p.setFlag(ctx, KeyLoggedOut, on)
}

func (p *Preferences) BiometricsEnabled(ctx context.Context) (bool, error) {
	return p.getFlag(ctx, KeyBiometricsEnabled)
}

func (p *Preferences) SetBiometricsEnabled(ctx context.Context, on bool) error {
	return p.setFlag(ctx, KeyBiometricsEnabled, on)
}

// Draft returns the saved registration draft, or nil.
func (p *Preferences) Draft(ctx context.Context) (*models.RegistrationDraft, error) {
	var d models.RegistrationDraft
	ok, err := p.getJSON(ctx, KeyRegistrationDraft, &d)
	if err != nil || !ok {
		return nil, err
	}
	return &d, nil
}

func (p *Preferences) SaveDraft(ctx context.Context, d models.RegistrationDraft) error {
	return p.setJSON(ctx, KeyRegistrationDraft, d)
}

func (p *Preferences) ClearDraft(ctx context.Context) error {
	return p.store.Delete(ctx, KeyRegistrationDraft)
}

// ClearIdentity removes everything tied to the registered user: profile,
// biometric opt-in, logged-out flag and draft. Lockout and theme stay.
func (p *Preferences) ClearIdentity(ctx context.Context) error {
	for _, key := range []string{KeyUserData, KeyBiometricsEnabled, KeyLoggedOut, KeyRegistrationDraft} {
		if err := p.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// Theme returns the saved theme, or ThemeSystem when none was chosen.
func (p *Preferences) Theme(ctx context.Context) (Theme, error) {
	data, err := p.store.Get(ctx, KeyTheme)
	if err != nil || data == nil {
		return ThemeSystem, err
	}
	t, err := ParseTheme(string(data))
	if err != nil {
		return ThemeSystem, nil
	}
	return t, nil
}

func (p *Preferences) SetTheme(ctx context.Context, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	return p.store.Set(ctx, KeyTheme, []byte(t))
}
