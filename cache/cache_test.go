package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type item struct {
	Name string `json:"name"`
}

func TestMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache[item](0)

	if _, err := c.Get(ctx, "a"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected miss, got %v", err)
	}

	in := &item{Name: "first"}
	if err := c.Set(ctx, "a", in); err != nil {
		t.Fatalf("set: %v", err)
	}
	in.Name = "mutated"

	got, err := c.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "first" {
		t.Errorf("expected stored copy, got %q", got.Name)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache[item](time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "a", &item{Name: "x"})
	_ = c.Set(ctx, "b", &item{Name: "y"}, time.Hour)

	now = now.Add(2 * time.Minute)
	if _, err := c.Get(ctx, "a"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected a to expire, got %v", err)
	}
	if _, err := c.Get(ctx, "b"); err != nil {
		t.Errorf("expected b to survive, got %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("expected expired entry to be dropped, len=%d", c.Len())
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache[item](0)
	_ = c.Set(ctx, "a", &item{Name: "x"})
	_ = c.Delete(ctx, "a")
	if _, err := c.Get(ctx, "a"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected miss after delete, got %v", err)
	}
}

func TestRedisCacheWithoutClient(t *testing.T) {
	ctx := context.Background()
	c := NewCache[item](nil, "test")

	if err := c.Set(ctx, "a", &item{Name: "x"}); err != nil {
		t.Errorf("set without client should be a no-op, got %v", err)
	}
	if _, err := c.Get(ctx, "a"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected miss without client, got %v", err)
	}
	if err := c.Delete(ctx, "a"); err != nil {
		t.Errorf("delete without client should be a no-op, got %v", err)
	}
}

func TestFieldKey(t *testing.T) {
	if got := NewCache[item](nil, "ns").fieldKey("f"); got != "ns:f" {
		t.Errorf("unexpected key %q", got)
	}
	if got := NewCache[item](nil, "").fieldKey("f"); got != "f" {
		t.Errorf("unexpected key %q", got)
	}
}

var (
	_ ICache[item] = (*Cache[item])(nil)
	_ ICache[item] = (*MemoryCache[item])(nil)
)
