// Package data wires the dashboard's data dependencies: the GraphQL
// executor, the query cache and, when configured, the redis client that
// backs the cache.
//
//	d, cleanup, err := data.New(cfg, log)
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//	posts := repository.NewPostRepository(d)
package data
