// Package clientip resolves the client IP reported by the headers of an
// HTTP request.
//
// The headers are checked in a fixed order, from x-client-ip down to host,
// and the value of the first one present is returned exactly as received: it is not
// split, trimmed, validated or normalized. When none of the headers is
// present, or the matched value is not valid header text, [Resolve] returns
// [Unresolved].
package clientip
