package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/biometrics"
	"github.com/dmitrijs2005/gophauth/internal/client/lockout"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/google/uuid"
)

// Biometric prompt messages.
const (
	PromptRestore = "Authenticate to access your account"
	PromptSignIn  = "Authenticate to sign in"
)

// Session is the authentication state machine. It owns the in-memory
// SessionState and is its only mutator.
//
// Operations are serialized: a login, logout or biometric prompt runs to
// completion before the next one starts. State may be read at any time,
// including while an operation waits on the biometric prompt.
//
// Storage failures are logged and treated as absent values. Register is the
// only operation that returns them.
type Session struct {
	creds CredentialStore
	prefs *Preferences
	bio   biometrics.Capability
	log   logging.Logger
	now   func() time.Time

	opMu sync.Mutex

	mu    sync.RWMutex
	state models.SessionState
	// unsaved is the last failure record that could not be persisted. It is
	// a floor for the stored record until a write or a success replaces it.
	unsaved *models.LockoutRecord
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession builds a session over the given stores and sensor. A nil sensor
// is treated as biometrics.Unavailable.
func NewSession(creds CredentialStore, prefs PreferenceStore, bio biometrics.Capability, opts ...Option) *Session {
	if bio == nil {
		bio = biometrics.Unavailable{}
	}
	s := &Session{
		creds: creds,
		prefs: NewPreferences(prefs),
		bio:   bio,
		log:   logging.NewNop(),
		now:   time.Now,
		state: models.SessionState{IsLoading: true, BiometryKind: models.BiometryNone},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Preferences exposes the typed preference accessors backing the session.
func (s *Session) Preferences() *Preferences {
	return s.prefs
}

// State returns a copy of the current session state.
func (s *Session) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

func (s *Session) update(fn func(st *models.SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Bootstrap restores the session at process start.
//
// In order: an active lock, then the logged-out flag, then missing
// credentials or profile each end in the unauthenticated state. Otherwise
// the user is signed in, behind a biometric prompt when biometrics are
// enabled and available. A failed restore prompt does not count towards
// the lockout.
func (s *Session) Bootstrap(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	status := s.bio.Probe(ctx)
	s.update(func(st *models.SessionState) {
		st.IsLoading = true
		st.BiometricsAvailable = status.Available
		st.BiometryKind = status.Kind
	})
	defer s.update(func(st *models.SessionState) { st.IsLoading = false })

	locked, rec := s.evaluateLockout(ctx)
	s.update(func(st *models.SessionState) {
		st.IsLocked = locked
		st.LoginAttempts = 0
		if locked {
			st.LoginAttempts = rec.Attempts
		}
		st.User = nil
		st.IsAuthenticated = false
		st.SessionID = ""
	})
	if locked {
		s.log.Info(ctx, "session restore skipped: sign-in locked", "attempts", rec.Attempts)
		return
	}

	loggedOut, err := s.prefs.LoggedOut(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read logged-out flag", "error", err)
		return
	}
	if loggedOut {
		s.log.Debug(ctx, "session restore skipped: user logged out")
		return
	}

	// informational only, loaded once the restore is known to proceed
	s.update(func(st *models.SessionState) { st.LoginAttempts = rec.Attempts })

	creds, profile := s.loadIdentity(ctx)
	if creds == nil || profile == nil {
		s.log.Debug(ctx, "session restore skipped: no stored identity")
		return
	}

	enabled, err := s.prefs.BiometricsEnabled(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read biometrics flag", "error", err)
		return
	}

	if enabled && status.Available {
		if !s.bio.Prompt(ctx, PromptRestore) {
			s.log.Info(ctx, "biometric session restore declined")
			return
		}
	}

	s.authenticate(ctx, *profile)
	s.log.Info(ctx, "session restored", "biometric", enabled && status.Available)
}

// Login signs in with an email and password. It returns false while locked,
// when no identity is stored and on mismatch; the last two count as failed
// attempts.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.login(ctx, email, password)
}

func (s *Session) login(ctx context.Context, email, password string) bool {
	if s.checkLocked(ctx) {
		s.log.Info(ctx, "login rejected: sign-in locked")
		return false
	}

	creds, profile := s.loadIdentity(ctx)
	if creds == nil || profile == nil {
		s.recordFailure(ctx)
		return false
	}

	if !credentialsMatch(creds, email, password) {
		s.recordFailure(ctx)
		return false
	}

	if err := s.prefs.SetLockout(ctx, lockout.RecordSuccess()); err != nil {
		s.log.Error(ctx, "failed to reset lockout", "error", err)
	}
	s.setUnsaved(nil)

	s.authenticate(ctx, *profile)
	s.update(func(st *models.SessionState) {
		st.LoginAttempts = 0
		st.IsLocked = false
	})

	if err := s.creds.Set(ctx, creds.Username, creds.Password); err != nil {
		s.log.Warn(ctx, "failed to refresh stored credentials", "error", err)
	}
	if err := s.prefs.SetProfile(ctx, *profile); err != nil {
		s.log.Warn(ctx, "failed to refresh stored profile", "error", err)
	}

	s.log.Info(ctx, "login succeeded", "session_id", s.State().SessionID)
	return true
}

// LoginWithBiometrics signs in with the stored credentials after a successful
// biometric prompt. A failed or cancelled prompt is never counted as a failed
// attempt. When biometrics are enabled but no credentials are stored the
// flag is switched off.
func (s *Session) LoginWithBiometrics(ctx context.Context) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if s.checkLocked(ctx) {
		return false
	}

	enabled, err := s.prefs.BiometricsEnabled(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read biometrics flag", "error", err)
		return false
	}
	if !enabled {
		return false
	}

	creds, err := s.creds.Get(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read stored credentials", "error", err)
		return false
	}
	if creds == nil {
		s.log.Warn(ctx, "biometrics enabled without stored credentials, disabling")
		if err := s.prefs.SetBiometricsEnabled(ctx, false); err != nil {
			s.log.Error(ctx, "failed to disable biometrics", "error", err)
		}
		return false
	}

	if !s.bio.Prompt(ctx, PromptSignIn) {
		s.log.Info(ctx, "biometric sign-in declined")
		return false
	}

	return s.login(ctx, creds.Username, creds.Password)
}

// Register stores a new identity and signs it in, resetting the lockout even
// while locked. Storage errors are returned.
func (s *Session) Register(ctx context.Context, profile models.UserProfile, password string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.creds.Set(ctx, profile.Email, password); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	if err := s.prefs.SetProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}
	if err := s.prefs.SetLockout(ctx, lockout.RecordSuccess()); err != nil {
		return fmt.Errorf("failed to reset lockout: %w", err)
	}
	s.setUnsaved(nil)

	u := profile
	id := uuid.NewString()
	s.update(func(st *models.SessionState) {
		st.User = &u
		st.IsAuthenticated = true
		st.LoginAttempts = 0
		st.IsLocked = false
		st.SessionID = id
	})

	s.log.Info(ctx, "registered", "session_id", id)
	return nil
}

// Logout ends the session. Stored credentials and profile are kept; only the
// logged-out flag is persisted so the next start does not sign in silently.
func (s *Session) Logout(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.prefs.SetLoggedOut(ctx, true); err != nil {
		s.log.Error(ctx, "failed to persist logged-out flag", "error", err)
	}

	var id string
	s.update(func(st *models.SessionState) {
		id = st.SessionID
		st.User = nil
		st.IsAuthenticated = false
		st.SessionID = ""
	})

	if id != "" {
		s.log.Info(ctx, "logged out", "session_id", id)
	}
}

// Forget removes the stored identity from the device and ends the session.
// The lockout record is left alone, so forgetting cannot lift a lock.
func (s *Session) Forget(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	if err := s.prefs.ClearIdentity(ctx); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}

	s.update(func(st *models.SessionState) {
		st.User = nil
		st.IsAuthenticated = false
		st.SessionID = ""
	})

	s.log.Info(ctx, "stored identity removed")
	return nil
}

// RecheckLockStatus re-reads the lockout record, clearing it if the lock has
// run out, and refreshes IsLocked and LoginAttempts.
func (s *Session) RecheckLockStatus(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.checkLocked(ctx)
}

// RemainingLockSeconds is the number of seconds until the current lock ends,
// 0 when not locked.
func (s *Session) RemainingLockSeconds(ctx context.Context) int {
	rec, err := s.prefs.Lockout(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read lockout record", "error", err)
		rec = models.LockoutRecord{}
	}
	return lockout.RemainingSeconds(s.floor(rec), s.now())
}

// EnableBiometrics turns on biometric sign-in after the user passes a
// prompt on the sensor.
func (s *Session) EnableBiometrics(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	status := s.bio.Probe(ctx)
	s.update(func(st *models.SessionState) {
		st.BiometricsAvailable = status.Available
		st.BiometryKind = status.Kind
	})
	if !status.Available {
		return common.ErrBiometricsUnavailable
	}

	msg := fmt.Sprintf("Enable %s for quick sign in", biometrics.DisplayName(status.Kind))
	if !s.bio.Prompt(ctx, msg) {
		return common.ErrBiometricAuthFailed
	}

	if err := s.prefs.SetBiometricsEnabled(ctx, true); err != nil {
		return fmt.Errorf("failed to enable biometrics: %w", err)
	}
	return nil
}

// DisableBiometrics turns biometric sign-in off.
func (s *Session) DisableBiometrics(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.prefs.SetBiometricsEnabled(ctx, false); err != nil {
		return fmt.Errorf("failed to disable biometrics: %w", err)
	}
	return nil
}

// BiometricsEnabled reports the persisted opt-in flag. Read errors count as
// disabled.
func (s *Session) BiometricsEnabled(ctx context.Context) bool {
	enabled, err := s.prefs.BiometricsEnabled(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read biometrics flag", "error", err)
		return false
	}
	return enabled
}

// evaluateLockout loads the lockout record and applies lazy expiry. An
// unsaved failure record with more attempts wins over the stored one. Read
// errors are logged and otherwise count as not locked.
func (s *Session) evaluateLockout(ctx context.Context) (bool, models.LockoutRecord) {
	now := s.now()

	rec, err := s.prefs.Lockout(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read lockout record", "error", err)
		rec = models.LockoutRecord{}
	}

	if u := s.unsavedRecord(); u != nil {
		if lockout.Expired(*u, now) {
			s.setUnsaved(nil)
		} else if u.Attempts > rec.Attempts {
			return lockout.IsLocked(*u, now), *u
		}
	}
	if err != nil {
		return false, rec
	}

	locked, next, changed := lockout.Evaluate(rec, now)
	if !changed {
		return locked, rec
	}

	// Expired: clear it. Re-evaluating inside the update keeps a concurrent
	// clear (or a fresh lock written meanwhile) consistent.
	stored, err := s.prefs.UpdateLockout(ctx, func(cur models.LockoutRecord) models.LockoutRecord {
		_, n, _ := lockout.Evaluate(cur, now)
		return n
	})
	if err != nil {
		s.log.Error(ctx, "failed to clear expired lock", "error", err)
		return locked, next
	}

	s.log.Info(ctx, "sign-in lock expired")
	return lockout.IsLocked(stored, now), stored
}

// checkLocked evaluates the lock and mirrors it into the state.
func (s *Session) checkLocked(ctx context.Context) bool {
	locked, rec := s.evaluateLockout(ctx)
	s.update(func(st *models.SessionState) {
		st.IsLocked = locked
		st.LoginAttempts = rec.Attempts
	})
	return locked
}

func (s *Session) recordFailure(ctx context.Context) {
	now := s.now()
	apply := func(cur models.LockoutRecord) models.LockoutRecord {
		if lockout.Expired(cur, now) {
			cur = lockout.RecordSuccess()
		}
		return lockout.RecordFailure(s.floor(cur), now)
	}

	rec, err := s.prefs.UpdateLockout(ctx, apply)
	if err != nil {
		s.log.Error(ctx, "failed to persist failed attempt", "error", err)
		rec = apply(models.LockoutRecord{Attempts: s.State().LoginAttempts})
		s.setUnsaved(&rec)
	} else {
		s.setUnsaved(nil)
	}

	locked := lockout.IsLocked(rec, now)
	s.update(func(st *models.SessionState) {
		st.LoginAttempts = rec.Attempts
		st.IsLocked = locked
	})

	if locked {
		s.log.Warn(ctx, "sign-in locked", "attempts", rec.Attempts, "duration", lockout.LockDuration)
	} else {
		s.log.Info(ctx, "login failed", "attempts", rec.Attempts)
	}
}

func (s *Session) unsavedRecord() *models.LockoutRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.unsaved == nil {
		return nil
	}
	u := *s.unsaved
	return &u
}

func (s *Session) setUnsaved(rec *models.LockoutRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec == nil {
		s.unsaved = nil
		return
	}
	u := *rec
	s.unsaved = &u
}

// floor returns the unsaved failure record instead of rec when it counts
// more attempts.
func (s *Session) floor(rec models.LockoutRecord) models.LockoutRecord {
	if u := s.unsavedRecord(); u != nil && u.Attempts > rec.Attempts {
		return *u
	}
	return rec
}

// loadIdentity reads the stored credentials and profile; either is nil when
// absent or unreadable.
func (s *Session) loadIdentity(ctx context.Context) (*models.Credentials, *models.UserProfile) {
	creds, err := s.creds.Get(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read stored credentials", "error", err)
		creds = nil
	}

	profile, err := s.prefs.Profile(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read stored profile", "error", err)
		profile = nil
	}

	return creds, profile
}

func (s *Session) authenticate(ctx context.Context, profile models.UserProfile) {
	if err := s.prefs.SetLoggedOut(ctx, false); err != nil {
		s.log.Error(ctx, "failed to clear logged-out flag", "error", err)
	}

	u := profile
	id := uuid.NewString()
	s.update(func(st *models.SessionState) {
		st.User = &u
		st.IsAuthenticated = true
		st.SessionID = id
	})
}

func credentialsMatch(creds *models.Credentials, email, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(password)) == 1
	return userOK && passOK
}
