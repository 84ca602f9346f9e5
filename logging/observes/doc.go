// Package observes sets up error reporting and distributed tracing.
//
// Both are optional: with an empty Sentry DSN or tracer endpoint the
// corresponding setup does nothing and the rest of the dashboard keeps using
// the global no-op implementations.
package observes
