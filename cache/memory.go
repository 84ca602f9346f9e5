package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// MemoryCache implements ICache in process memory.
// Entries are copied on Set and Get.
type MemoryCache[T any] struct {
	mu         sync.RWMutex
	items      map[string]memoryEntry[T]
	defaultTTL time.Duration
	now        func() time.Time
}

// NewMemoryCache creates a MemoryCache. A zero defaultTTL keeps entries
// until they are deleted.
func NewMemoryCache[T any](defaultTTL time.Duration) *MemoryCache[T] {
	return &MemoryCache[T]{
		items:      make(map[string]memoryEntry[T]),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get retrieves a single item from cache
func (c *MemoryCache[T]) Get(_ context.Context, field string) (*T, error) {
	c.mu.RLock()
	e, ok := c.items[field]
	c.mu.RUnlock()
	if !ok {
		return nil, ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		if cur, ok := c.items[field]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(c.items, field)
		}
		c.mu.Unlock()
		return nil, ErrCacheMiss
	}
	v := e.value
	return &v, nil
}

// Set saves a single item into cache
func (c *MemoryCache[T]) Set(_ context.Context, field string, data *T, expire ...time.Duration) error {
	if data == nil {
		return nil
	}
	ttl := c.defaultTTL
	if len(expire) > 0 {
		ttl = expire[0]
	}
	e := memoryEntry[T]{value: *data}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.items[field] = e
	c.mu.Unlock()
	return nil
}

// Delete removes data from cache
func (c *MemoryCache[T]) Delete(_ context.Context, field string) error {
	c.mu.Lock()
	delete(c.items, field)
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
