// Package lockout implements the brute-force lockout policy: a fixed number
// of consecutive failures locks sign-in for a fixed duration.
//
// The policy is pure. It never reads a clock and never persists anything;
// callers pass the current time and store the records it returns. Expiry is
// lazy: there is no background timer, a lock is only observed to have ended
// the next time somebody evaluates it, and that caller is expected to clear
// the persisted record (see Expired).
package lockout

import (
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

const (
	// MaxAttempts is the number of consecutive failures that triggers a lock.
	MaxAttempts = 5
	// LockDuration is how long a lock lasts.
	LockDuration = 60 * time.Second
)

// IsLocked reports whether rec carries a lock that is still in force at now.
// The lock holds while now - LockedAt <= LockDuration.
func IsLocked(rec models.LockoutRecord, now time.Time) bool {
	if rec.LockedAt == nil {
		return false
	}
	return now.Sub(*rec.LockedAt) <= LockDuration
}

// Expired reports whether rec carries a lock whose duration has elapsed.
// When it returns true the caller must clear both the lock and the attempt
// counter.
func Expired(rec models.LockoutRecord, now time.Time) bool {
	return rec.LockedAt != nil && !IsLocked(rec, now)
}

// RemainingSeconds is the whole number of seconds (rounded up) until the lock
// ends, or 0 when rec is not locked.
func RemainingSeconds(rec models.LockoutRecord, now time.Time) int {
	if !IsLocked(rec, now) {
		return 0
	}
	remaining := LockDuration - now.Sub(*rec.LockedAt)
	if remaining <= 0 {
		return 0
	}
	secs := remaining / time.Second
	if remaining%time.Second != 0 {
		secs++
	}
	return int(secs)
}

// RecordFailure counts one more failed attempt. Reaching MaxAttempts stamps
// the lock with now.
func RecordFailure(rec models.LockoutRecord, now time.Time) models.LockoutRecord {
	next := models.LockoutRecord{Attempts: rec.Attempts + 1, LockedAt: rec.LockedAt}
	if next.Attempts >= MaxAttempts {
		t := now
		next.LockedAt = &t
	}
	return next
}

// RecordSuccess returns the cleared record.
func RecordSuccess() models.LockoutRecord {
	return models.LockoutRecord{}
}

// Evaluate applies lazy expiry: it returns whether rec is locked at now and
// the record that should be persisted. changed is true only when an expired
// lock was cleared, so re-evaluating an already cleared record is a no-op.
func Evaluate(rec models.LockoutRecord, now time.Time) (locked bool, next models.LockoutRecord, changed bool) {
	if Expired(rec, now) {
		return false, RecordSuccess(), true
	}
	return IsLocked(rec, now), rec, false
}
