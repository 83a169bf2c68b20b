package store

import (
	"context"
	"slices"
	"sync"
)

// memoryConfigCache keeps cache entries in process memory. Values are copied
// on the way in and out so callers cannot alias stored bytes.
type memoryConfigCache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryConfigCache returns an empty in-memory [ConfigCacheRepository].
func NewMemoryConfigCache() ConfigCacheRepository {
	return &memoryConfigCache{items: make(map[string][]byte)}
}

func (c *memoryConfigCache) GetItem(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.items[key]
	if !ok {
		return nil, ErrCacheItemNotFound
	}
	return slices.Clone(value), nil
}

func (c *memoryConfigCache) SetItem(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = slices.Clone(value)
	return nil
}

func (c *memoryConfigCache) RemoveItem(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}
