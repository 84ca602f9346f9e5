package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/ncobase/dashboard/cache"
)

// QueryCache stores the raw result of root fields, keyed by scope, field
// name and the policy's fingerprint of the variables.
type QueryCache struct {
	store    cache.ICache[json.RawMessage]
	ttl      time.Duration
	mu       sync.RWMutex
	policies map[string]FieldPolicy
}

// NewQueryCache creates a QueryCache on top of store.
func NewQueryCache(store cache.ICache[json.RawMessage], ttl time.Duration) *QueryCache {
	return &QueryCache{
		store:    store,
		ttl:      ttl,
		policies: make(map[string]FieldPolicy),
	}
}

// SetPolicy registers the policy used for field.
func (c *QueryCache) SetPolicy(field string, p FieldPolicy) {
	c.mu.Lock()
	c.policies[field] = p
	c.mu.Unlock()
}

// Policy returns the policy for field; fields without one key on all variables.
func (c *QueryCache) Policy(field string) FieldPolicy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.policies[field]
}

// Key builds the storage key for a field.
func (c *QueryCache) Key(scope, field string, vars map[string]any) string {
	return scope + ":" + field + ":" + c.Policy(field).Fingerprint(vars)
}

// Read returns the cached value, or false on a miss.
func (c *QueryCache) Read(ctx context.Context, scope, field string, vars map[string]any) (json.RawMessage, bool, error) {
	v, err := c.store.Get(ctx, c.Key(scope, field, vars))
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if v == nil || len(*v) == 0 {
		return nil, false, nil
	}
	return *v, true, nil
}

// Write merges incoming into the cached value and stores the result.
func (c *QueryCache) Write(ctx context.Context, scope, field string, vars map[string]any, incoming json.RawMessage) (json.RawMessage, error) {
	key := c.Key(scope, field, vars)
	var existing json.RawMessage
	if v, err := c.store.Get(ctx, key); err == nil && v != nil {
		existing = *v
	}
	merged := c.Policy(field).merge(existing, incoming)
	if err := c.store.Set(ctx, key, &merged, c.ttl); err != nil {
		return merged, err
	}
	return merged, nil
}

// Evict drops the entry for a field.
func (c *QueryCache) Evict(ctx context.Context, scope, field string, vars map[string]any) error {
	return c.store.Delete(ctx, c.Key(scope, field, vars))
}
