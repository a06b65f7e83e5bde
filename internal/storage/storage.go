package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no value exists under a key.
var ErrNotFound = errors.New("key not found")

// Store is the session/durable storage collaborator. Each key holds one
// opaque JSON blob: carts under "cart:<token>", checkout state under
// "checkout:<token>". Callers treat read and write failures as non-fatal;
// a missing or corrupt value degrades to the empty state.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
