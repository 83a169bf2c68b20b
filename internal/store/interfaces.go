package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigCacheRepository is a string-keyed byte store with the semantics of
// browser local storage. Values are opaque to the repository.
type ConfigCacheRepository interface {
	// GetItem returns the value stored under key or [ErrCacheItemNotFound].
	GetItem(ctx context.Context, key string) ([]byte, error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key string, value []byte) error
	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
}
