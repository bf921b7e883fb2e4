// Package utils provides small helpers shared by the server and the client:
// plain text response writing, the resty-based HTTP client and trace id
// generation.
package utils

import "net/http"

// WriteText writes body as a plain text response with the given status code.
//
// It sets the "Content-Type" header to "text/plain; charset=utf-8" and writes
// body verbatim, without a trailing newline.
//
// Example usage:
//
//	WriteText(w, "203.0.113.7", http.StatusOK)
func WriteText(w http.ResponseWriter, body string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write([]byte(body))
}
