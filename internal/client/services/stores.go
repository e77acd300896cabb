// Package services contains the session core of the gophauth client: the
// authentication state machine, typed access to persisted preferences and
// local password reset.
package services

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/preferences"
)

// CredentialStore is the secure store for the single username/password pair.
// Get returns (nil, nil) when nothing is stored.
type CredentialStore interface {
	Set(ctx context.Context, username, password string) error
	Get(ctx context.Context) (*models.Credentials, error)
	Clear(ctx context.Context) error
}

// PreferenceStore is the plain durable key/value store. Get on a missing key
// returns (nil, nil).
type PreferenceStore interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// preferenceUpdater is implemented by stores that can run a read-modify-write
// of one key atomically (preferences.TxRepository).
type preferenceUpdater interface {
	Update(ctx context.Context, key string, fn preferences.UpdateFunc) error
}
