package http

import (
	"net/http"

	"github.com/MKhiriev/go-ip-echo/internal/clientip"
	"github.com/MKhiriev/go-ip-echo/internal/utils"
)

// getClientIP answers with the resolved client IP as a plain text body.
func (h *Handler) getClientIP(w http.ResponseWriter, r *http.Request) {
	ip := h.services.ClientIPService.ResolveClientIP(r.Context(), requestHeaders(r))
	if ip == clientip.Unresolved && h.metrics != nil {
		h.metrics.IncUnresolved()
	}

	if _, err := utils.WriteText(w, ip, http.StatusOK); err != nil {
		h.logger.Error().Err(err).Msg("error writing client ip response")
	}
}

// requestHeaders returns the request headers including Host, which net/http
// moves from Request.Header to Request.Host. r.Header is never modified.
func requestHeaders(r *http.Request) http.Header {
	if r.Host == "" {
		return r.Header
	}

	headers := r.Header.Clone()
	if headers == nil {
		headers = http.Header{}
	}
	if _, ok := headers["Host"]; !ok {
		headers["Host"] = []string{r.Host}
	}

	return headers
}
