package preferences

import "context"

// Repository is a durable key/value store. Get on a missing key returns
// (nil, nil); Delete on a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// UpdateFunc receives the current value of a key (nil when absent) and
// returns the value to store. Returning a nil value deletes the key.
type UpdateFunc func(current []byte) ([]byte, error)
