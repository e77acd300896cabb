package credentials

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// Repository holds at most one username/password pair. Get returns
// (nil, nil) when nothing is stored; Clear on an empty store is a no-op.
type Repository interface {
	Set(ctx context.Context, username, password string) error
	Get(ctx context.Context) (*models.Credentials, error)
	Clear(ctx context.Context) error
}
