// Package http implements the HTTP transport layer of the server.
//
// It exposes route wiring, the client IP handler, and middleware. Panic
// recovery, request tracing and access logging are applied here before
// requests reach the service layer. HEAD is served by the GET route; other
// methods on a known path get chi's 405 with an Allow header.
package http
