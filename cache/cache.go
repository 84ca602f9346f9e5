package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the field holds no value.
var ErrCacheMiss = errors.New("cache miss")

// ICache defines a general caching interface
type ICache[T any] interface {
	Get(context.Context, string) (*T, error)
	Set(context.Context, string, *T, ...time.Duration) error
	Delete(context.Context, string) error
}

// Cache implements ICache on top of redis
type Cache[T any] struct {
	rc      *redis.Client
	key     string
	useHash bool
}

// NewCache creates a new Cache instance.
// key namespaces the fields; with useHash the fields live in one redis hash.
func NewCache[T any](rc *redis.Client, key string, useHash ...bool) *Cache[T] {
	hash := false
	if len(useHash) > 0 {
		hash = useHash[0]
	}
	return &Cache[T]{rc: rc, key: key, useHash: hash}
}

func (c *Cache[T]) fieldKey(field string) string {
	if c.key == "" {
		return field
	}
	return c.key + ":" + field
}

// Get retrieves a single item from cache
func (c *Cache[T]) Get(ctx context.Context, field string) (*T, error) {
	if c.rc == nil {
		return nil, ErrCacheMiss
	}

	var result string
	var err error

	if c.useHash {
		result, err = c.rc.HGet(ctx, c.key, field).Result()
	} else {
		result, err = c.rc.Get(ctx, c.fieldKey(field)).Result()
	}

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var row T
	if err = json.Unmarshal([]byte(result), &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}
	return &row, nil
}

// Set saves a single item into cache
func (c *Cache[T]) Set(ctx context.Context, field string, data *T, expire ...time.Duration) error {
	if c.rc == nil {
		return nil
	}

	bytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	exp := time.Duration(0)
	if len(expire) > 0 {
		exp = expire[0]
	}

	if c.useHash {
		err = c.rc.HSet(ctx, c.key, field, bytes).Err()
		if err == nil && exp > 0 {
			err = c.rc.Expire(ctx, c.key, exp).Err()
		}
	} else {
		err = c.rc.Set(ctx, c.fieldKey(field), bytes, exp).Err()
	}

	if err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Delete removes data from cache
func (c *Cache[T]) Delete(ctx context.Context, field string) error {
	if c.rc == nil {
		return nil
	}

	var err error

	if c.useHash {
		err = c.rc.HDel(ctx, c.key, field).Err()
	} else {
		err = c.rc.Del(ctx, c.fieldKey(field)).Err()
	}

	if err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}
