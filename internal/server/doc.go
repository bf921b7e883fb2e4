// Package server runs the HTTP echo server.
//
// The listener is bound when the server is constructed so that an
// unavailable address is reported before any traffic is expected. Serving
// stops on SIGINT, SIGTERM or SIGQUIT, followed by a graceful shutdown
// bounded by a timeout.
package server
