package core

import "context"

// Store is a key-value storage capability injected into services.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns ErrNotFound when key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put creates or overwrites key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete is a no-op when key does not exist.
	Delete(ctx context.Context, key string) error
	// Keys lists the keys starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
