package cli

import (
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/lockout"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

const accountLockedMessage = "Your account has been locked due to multiple failed login attempts. Please try again in 1 minute."

// formatTime renders seconds as m:ss.
func formatTime(seconds int) string {
	if seconds <= 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func lockedMessage(remaining int) string {
	return fmt.Sprintf("Account locked. Time remaining: %s (type 'wait' to count down)", formatTime(remaining))
}

// failedLoginMessage explains a rejected password login from the state left
// behind by it.
func failedLoginMessage(st models.SessionState) string {
	if st.IsLocked {
		return accountLockedMessage
	}
	remaining := lockout.MaxAttempts - st.LoginAttempts
	if remaining <= 0 {
		return accountLockedMessage
	}
	return fmt.Sprintf("Invalid email or password. %d attempt(s) remaining before account lockout.", remaining)
}
