package kv

import "context"

// Repository is the persistent string store capability.
type Repository interface {
	// Get returns the value under key. found is false if the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set creates or overwrites the value under key.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists all stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
}
