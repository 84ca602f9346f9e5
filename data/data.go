package data

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ncobase/dashboard/cache"
	"github.com/ncobase/dashboard/config"
	"github.com/ncobase/dashboard/graphql"
	"github.com/ncobase/dashboard/logging/logger"
	"github.com/redis/go-redis/v9"
)

// queryCacheKey namespaces query cache entries in redis
const queryCacheKey = "dashboard:query"

// Data represents the data layer implementation
type Data struct {
	GraphQL graphql.Executor
	Cache   *graphql.QueryCache

	rc     *redis.Client
	logger *logger.Logger
}

// Option function type for configuring Data
type Option func(*Data)

// WithExecutor replaces the GraphQL executor
func WithExecutor(e graphql.Executor) Option {
	return func(d *Data) {
		if e != nil {
			d.GraphQL = e
		}
	}
}

// New creates new data layer.
// Without a redis address the query cache lives in process memory.
func New(cfg *config.Config, l *logger.Logger, opts ...Option) (*Data, func(), error) {
	if l == nil {
		l = logger.NewNop()
	}
	d := &Data{logger: l}

	var ttl time.Duration
	if cfg.Data != nil && cfg.Data.Cache != nil {
		ttl = cfg.Data.Cache.TTL
	}

	var store cache.ICache[json.RawMessage]
	if cfg.Data != nil && cfg.Data.Redis != nil && cfg.Data.Redis.Addr != "" {
		rc, err := newRedisClient(cfg.Data.Redis)
		if err != nil {
			return nil, nil, err
		}
		d.rc = rc
		store = cache.NewCache[json.RawMessage](rc, queryCacheKey)
		l.Infof(context.Background(), "query cache: redis %s", cfg.Data.Redis.Addr)
	} else {
		store = cache.NewMemoryCache[json.RawMessage](ttl)
		l.Info(context.Background(), "query cache: memory")
	}

	d.Cache = graphql.NewQueryCache(store, ttl)
	d.Cache.SetPolicy("listPosts", graphql.ListPostsPolicy)

	if cfg.GraphQL != nil {
		d.GraphQL = graphql.NewClient(cfg.GraphQL, l)
	}

	for _, opt := range opts {
		opt(d)
	}

	cleanup := func() {
		if errs := d.Close(); len(errs) > 0 {
			l.Errorf(context.Background(), "cleanup errors: %v", errs)
		}
	}

	return d, cleanup, nil
}

// GetRedis returns the redis client, nil when not configured
func (d *Data) GetRedis() *redis.Client {
	return d.rc
}

// Close closes all data connections
func (d *Data) Close() (errs []error) {
	if d.rc != nil {
		if err := d.rc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
