package clientip

import "errors"

var (
	// ErrNoClientIPHeader is returned by [Lookup] when none of the checked
	// headers is present.
	ErrNoClientIPHeader = errors.New("no client ip header")

	// ErrUndecodableHeader is returned by [Lookup] when the matched header
	// value contains bytes that are not valid header text.
	ErrUndecodableHeader = errors.New("client ip header value is not valid text")
)
