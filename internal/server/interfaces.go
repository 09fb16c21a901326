package server

// Server defines the lifecycle of the API server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then drains in-flight requests. It returns an error only when the
	// server could not start or stopped abnormally.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown()
}
