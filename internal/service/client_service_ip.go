package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ip-echo/internal/adapter"
	"github.com/MKhiriev/go-ip-echo/internal/clientip"
	"github.com/MKhiriev/go-ip-echo/internal/logger"
)

type clientIPLookupService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientIPLookupService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientIPLookupService {
	return &clientIPLookupService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientIPLookupService) LookupIP(ctx context.Context) (string, error) {
	ip, err := s.serverAdapter.GetClientIP(ctx)
	if err != nil {
		return "", fmt.Errorf("lookup ip: %w", err)
	}

	if ip == clientip.Unresolved {
		s.logger.Warn().Msg("server could not resolve the client ip")
		return "", ErrIPUnavailable
	}

	s.logger.Debug().Str("client_ip", ip).Msg("server reported client ip")
	return ip, nil
}
