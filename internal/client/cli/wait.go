package cli

import (
	"context"
	"time"
)

// WaitUnlock counts the lock down, re-checking it every countdownInterval,
// and returns once sign-in is possible again or ctx is done.
func (a *App) WaitUnlock(ctx context.Context) error {
	a.session.RecheckLockStatus(ctx)
	if !a.session.State().IsLocked {
		a.println("Sign-in is not locked.")
		return nil
	}

	ticker := time.NewTicker(a.countdownInterval)
	defer ticker.Stop()

	for {
		remaining := a.session.RemainingLockSeconds(ctx)
		a.printf("Time remaining: %s\n", formatTime(remaining))

		if remaining == 0 {
			a.session.RecheckLockStatus(ctx)
			if !a.session.State().IsLocked {
				a.println("Sign-in unlocked.")
				return nil
			}
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
