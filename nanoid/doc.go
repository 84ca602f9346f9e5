// Package nanoid generates short random ids, including the dashboard's
// session ids.
package nanoid
