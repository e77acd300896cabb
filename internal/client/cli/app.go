package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// sessionCore is the part of services.Session the CLI drives.
type sessionCore interface {
	Bootstrap(ctx context.Context)
	Login(ctx context.Context, email, password string) bool
	LoginWithBiometrics(ctx context.Context) bool
	Register(ctx context.Context, profile models.UserProfile, password string) error
	Logout(ctx context.Context)
	RecheckLockStatus(ctx context.Context)
	RemainingLockSeconds(ctx context.Context) int
	EnableBiometrics(ctx context.Context) error
	DisableBiometrics(ctx context.Context) error
	BiometricsEnabled(ctx context.Context) bool
	Forget(ctx context.Context) error
	State() models.SessionState
}

// preferenceStore covers the UI-only preferences (draft and theme).
type preferenceStore interface {
	Draft(ctx context.Context) (*models.RegistrationDraft, error)
	SaveDraft(ctx context.Context, d models.RegistrationDraft) error
	ClearDraft(ctx context.Context) error
	Theme(ctx context.Context) (services.Theme, error)
	SetTheme(ctx context.Context, t services.Theme) error
}

type passwordResetter interface {
	Reset(ctx context.Context, email, newPassword string) error
}

type App struct {
	session           sessionCore
	prefs             preferenceStore
	reset             passwordResetter
	log               logging.Logger
	reader            *bufio.Reader
	out               io.Writer
	countdownInterval time.Duration
}

// NewApp wires the REPL to a session. reader must be the same reader the
// biometric sensor prompts on.
func NewApp(c *config.Config, s *services.Session, reset *services.PasswordReset, reader *bufio.Reader, out io.Writer, log logging.Logger) *App {
	interval := c.LockCountdownInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &App{
		session:           s,
		prefs:             s.Preferences(),
		reset:             reset,
		log:               log,
		reader:            reader,
		out:               out,
		countdownInterval: interval,
	}
}

// Run restores the previous session and serves commands until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to gophauth (type 'help' for commands)")

	a.session.Bootstrap(ctx)

	st := a.session.State()
	switch st.Phase() {
	case models.PhaseAuthenticated:
		a.printf("Signed in as %s\n", st.User.Email)
	case models.PhaseLocked:
		a.println(lockedMessage(a.session.RemainingLockSeconds(ctx)))
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

// status is the short prompt annotation: the signed-in email or "locked".
func (a *App) status() string {
	st := a.session.State()
	switch st.Phase() {
	case models.PhaseAuthenticated:
		return st.User.Email
	case models.PhaseLocked:
		return "locked"
	}
	return ""
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
