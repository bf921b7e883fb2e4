package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ip-echo/internal/clientip"
	"github.com/MKhiriev/go-ip-echo/internal/logger"
	"github.com/rs/zerolog"
)

type clientIPService struct {
	logger *logger.Logger
}

func NewClientIPService(logger *logger.Logger) ClientIPService {
	return &clientIPService{logger: logger}
}

// ResolveClientIP logs through the request-scoped logger when ctx carries
// one and falls back to the service logger otherwise.
func (s *clientIPService) ResolveClientIP(ctx context.Context, headers http.Header) string {
	log := s.logger
	if ctxLogger := logger.FromContext(ctx); ctxLogger.GetLevel() != zerolog.Disabled {
		log = ctxLogger
	}

	ip, header, err := clientip.Lookup(headers)
	switch {
	case errors.Is(err, clientip.ErrUndecodableHeader):
		log.Warn().Err(err).Str("header", header).Msg("client ip header cannot be decoded")
		return clientip.Unresolved
	case err != nil:
		log.Info().Err(err).Msg("client ip not found in headers")
		return clientip.Unresolved
	}

	log.Info().Str("header", header).Str("client_ip", ip).Msg("returning ip")
	return ip
}
