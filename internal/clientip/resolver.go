package clientip

import (
	"fmt"
	"net/http"
	"net/textproto"
)

// Lookup returns the value of the first checked header present in h,
// together with the header name that matched.
//
// Names are compared case-insensitively through the canonical form used by
// [http.Header]; when a header occurs several times its first value is used.
// An empty value still counts as present.
func Lookup(h http.Header) (value, header string, err error) {
	for _, name := range headerPriority {
		values, ok := h[textproto.CanonicalMIMEHeaderKey(name)]
		if !ok || len(values) == 0 {
			continue
		}

		if !isHeaderText(values[0]) {
			return "", name, fmt.Errorf("%w: %s", ErrUndecodableHeader, name)
		}
		return values[0], name, nil
	}

	return "", "", ErrNoClientIPHeader
}

// Resolve returns the client IP reported by h, or [Unresolved].
func Resolve(h http.Header) string {
	value, _, err := Lookup(h)
	if err != nil {
		return Unresolved
	}

	return value
}

// isHeaderText reports whether s only holds visible ASCII characters, spaces
// and horizontal tabs.
func isHeaderText(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b != '\t' && (b < ' ' || b > '~') {
			return false
		}
	}
	return true
}
