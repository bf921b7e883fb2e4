package service

import (
	"context"
	"net/http"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_ip_service_mock.go -package=mock

// ClientIPService resolves the client IP of inbound requests on the server.
type ClientIPService interface {
	// ResolveClientIP returns the client IP reported by headers, or
	// clientip.Unresolved. It never fails.
	ResolveClientIP(ctx context.Context, headers http.Header) string
}
