package graphql

import (
	"encoding/json"
	"sort"
)

// FetchPolicy controls whether a query may be answered from the cache.
type FetchPolicy int

const (
	// CacheFirst answers from the cache when an entry exists, else hits the network.
	CacheFirst FetchPolicy = iota
	// NetworkOnly always hits the network and refreshes the cache.
	NetworkOnly
)

func (p FetchPolicy) String() string {
	switch p {
	case CacheFirst:
		return "cache-first"
	case NetworkOnly:
		return "network-only"
	default:
		return "unknown"
	}
}

// MergeFunc combines the cached value of a field with an incoming one.
// existing is nil when nothing is cached.
type MergeFunc func(existing, incoming json.RawMessage) json.RawMessage

// Replace discards the existing value.
func Replace(_, incoming json.RawMessage) json.RawMessage {
	return incoming
}

// FieldPolicy describes how results of one root field are cached.
type FieldPolicy struct {
	// KeyArgs selects the variables that identify a cache entry.
	// nil keys on every variable; an empty slice keys on none.
	KeyArgs []string
	// Merge defaults to Replace.
	Merge MergeFunc
}

// ListPostsPolicy keeps a single listPosts entry that each page replaces.
var ListPostsPolicy = FieldPolicy{KeyArgs: []string{}, Merge: Replace}

func (p FieldPolicy) merge(existing, incoming json.RawMessage) json.RawMessage {
	if p.Merge == nil {
		return Replace(existing, incoming)
	}
	return p.Merge(existing, incoming)
}

// Fingerprint returns a stable key for the selected variables.
func (p FieldPolicy) Fingerprint(vars map[string]any) string {
	return Fingerprint(vars, p.KeyArgs)
}

// Fingerprint encodes vars restricted to keys. nil keys selects every variable.
func Fingerprint(vars map[string]any, keys []string) string {
	selected := make(map[string]any, len(vars))
	if keys == nil {
		for k, v := range vars {
			selected[k] = v
		}
	} else {
		sorted := append([]string(nil), keys...)
		sort.Strings(sorted)
		for _, k := range sorted {
			if v, ok := vars[k]; ok {
				selected[k] = v
			}
		}
	}
	// encoding/json sorts map keys
	b, err := json.Marshal(selected)
	if err != nil {
		return "{}"
	}
	return string(b)
}
