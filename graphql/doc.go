// Package graphql is the dashboard's data layer: a client for the backend's
// GraphQL endpoint plus a normalized-by-field query cache.
//
// The client forwards the browser's cookies, opens a span per operation and
// can sit behind a circuit breaker. The cache keys each root field by the
// variables its FieldPolicy selects and merges writes with the policy's
// MergeFunc; listPosts keys on no variable and replaces on write.
//
//	c := graphql.NewClient(cfg.GraphQL, log)
//	raw, err := c.Execute(ctx, op, map[string]any{"limit": 25})
package graphql
