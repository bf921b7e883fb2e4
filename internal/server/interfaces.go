package server

// Server defines the lifecycle contract of the echo server.
//
// [RunServer] blocks until a stop signal arrives and the server has been
// shut down. [Shutdown] may be called directly to stop serving.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
