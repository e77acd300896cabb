package models

import "time"

// LockoutRecord is the persisted brute-force accounting: consecutive failed
// attempts and, once the threshold was hit, the moment the lock started.
type LockoutRecord struct {
	Attempts int        `json:"attempts"`
	LockedAt *time.Time `json:"lockedAt,omitempty"`
}

// IsZero reports whether the record carries no attempts and no lock.
func (r LockoutRecord) IsZero() bool {
	return r.Attempts == 0 && r.LockedAt == nil
}
