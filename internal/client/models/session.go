package models

// BiometryKind is the sensor type reported by the device.
type BiometryKind string

const (
	BiometryNone    BiometryKind = "none"
	BiometryFace    BiometryKind = "face"
	BiometryTouch   BiometryKind = "touch"
	BiometryGeneric BiometryKind = "generic"
)

// Phase is the coarse state of the session state machine.
type Phase string

const (
	PhaseLoading         Phase = "loading"
	PhaseLocked          Phase = "locked"
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseAuthenticated   Phase = "authenticated"
)

// SessionState is the in-memory view of the current session. It is rebuilt
// from persisted state on every start and never persisted itself.
//
// Invariant: IsAuthenticated implies User != nil.
type SessionState struct {
	User                *UserProfile
	IsAuthenticated     bool
	IsLoading           bool
	LoginAttempts       int
	IsLocked            bool
	BiometricsAvailable bool
	BiometryKind        BiometryKind

	// SessionID identifies the current authenticated session in logs.
	// Empty while unauthenticated.
	SessionID string
}

// Phase derives the state-machine phase from the flags.
func (s SessionState) Phase() Phase {
	switch {
	case s.IsLoading:
		return PhaseLoading
	case s.IsAuthenticated:
		return PhaseAuthenticated
	case s.IsLocked:
		return PhaseLocked
	}
	return PhaseUnauthenticated
}
