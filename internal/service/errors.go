package service

import "errors"

var (
	// ErrIPUnavailable is returned by the lookup service when the server
	// answered but could not resolve the client IP.
	ErrIPUnavailable = errors.New("server was unable to retrieve ip")
)
