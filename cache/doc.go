// Package cache provides a small generic cache interface with a redis
// implementation and an in-process one.
//
//	var c cache.ICache[json.RawMessage]
//	if rc != nil {
//		c = cache.NewCache[json.RawMessage](rc, "dashboard:query")
//	} else {
//		c = cache.NewMemoryCache[json.RawMessage](30 * time.Minute)
//	}
//
// Get returns ErrCacheMiss for absent or expired fields.
package cache
