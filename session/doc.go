// Package session maps the dashboard's session cookie to the per-browser
// posts list. Sessions live in memory and are dropped after an idle TTL.
package session
