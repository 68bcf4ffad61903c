package kv

import "context"

// Repository is the durable key-value store contract.
type Repository interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key succeeds.
	Delete(ctx context.Context, key string) error

	// List returns every stored pair.
	List(ctx context.Context) (map[string]string, error)

	// Replace clears the store and writes all pairs.
	Replace(ctx context.Context, pairs map[string]string) error
}
