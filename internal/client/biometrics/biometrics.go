// Package biometrics describes the device biometric sensor as seen by the
// session core: a probe reporting availability and sensor kind, and a one-shot
// authentication prompt.
package biometrics

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// Status is the result of probing the sensor.
type Status struct {
	Available bool
	Kind      models.BiometryKind
}

// Capability is the device biometric sensor.
//
// Prompt reports whether the user authenticated. Cancellation, a declined
// prompt and sensor errors are all plain failures.
type Capability interface {
	Probe(ctx context.Context) Status
	Prompt(ctx context.Context, message string) bool
}

// ParseKind maps a configuration value to a sensor kind. The empty string is
// treated as "none".
func ParseKind(s string) (models.BiometryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(models.BiometryNone):
		return models.BiometryNone, nil
	case string(models.BiometryFace):
		return models.BiometryFace, nil
	case string(models.BiometryTouch):
		return models.BiometryTouch, nil
	case string(models.BiometryGeneric):
		return models.BiometryGeneric, nil
	}
	return models.BiometryNone, fmt.Errorf("unknown biometric sensor %q", s)
}

// DisplayName is the user-facing name of a sensor kind.
func DisplayName(kind models.BiometryKind) string {
	switch kind {
	case models.BiometryFace:
		return "Face ID"
	case models.BiometryTouch:
		return "Touch ID"
	case models.BiometryGeneric:
		return "Biometrics"
	}
	return "Biometric Authentication"
}

// Unavailable is a Capability for devices without a sensor.
type Unavailable struct{}

func (Unavailable) Probe(context.Context) Status {
	return Status{Available: false, Kind: models.BiometryNone}
}

func (Unavailable) Prompt(context.Context, string) bool { return false }
