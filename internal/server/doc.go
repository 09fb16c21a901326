// Package server runs the HTTP transport of the projects API.
//
// It owns the [net/http.Server] lifecycle: startup, SIGINT/SIGTERM handling
// and graceful shutdown with a bounded drain period.
package server
