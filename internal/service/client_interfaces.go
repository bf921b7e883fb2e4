package service

import "context"

// ClientIPLookupService asks a running server which IP it sees for this
// machine.
type ClientIPLookupService interface {
	// LookupIP returns the IP reported by the server. It returns
	// [ErrIPUnavailable] when the server could not resolve one.
	LookupIP(ctx context.Context) (string, error)
}
