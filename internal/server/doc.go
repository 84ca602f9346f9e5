// Package server assembles the dashboard: data layer, services, sessions,
// templates and the gin router, and runs the HTTP server.
package server
