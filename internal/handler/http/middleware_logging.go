package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-ip-echo/internal/logger"
)

// withLogging writes one access log entry per request through the request
// logger.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		status := lw.status
		if status == 0 {
			// nothing was written, net/http answers 200
			status = http.StatusOK
		}

		log.Info().
			Str("remote_addr", r.RemoteAddr).
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Msg("request served")
	})
}
