// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-origin handling, request tracing, access logging, metrics,
// per-request database sessions and bearer authentication are applied in
// this package before requests are delegated to the service layer.
package http
