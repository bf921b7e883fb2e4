// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// a go-ip-echo server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with a go-ip-echo
// server.
type ServerAdapter interface {
	// GetClientIP asks the server which client IP it resolves for this
	// machine and returns the response body verbatim. Returns an error if the
	// request fails or the server responds with a non-2xx status.
	GetClientIP(ctx context.Context) (string, error)
}
