package http

import (
	"github.com/MKhiriev/go-ip-echo/internal/logger"
	"github.com/MKhiriev/go-ip-echo/internal/metrics"
	"github.com/MKhiriev/go-ip-echo/internal/service"
)

type Handler struct {
	services *service.Services
	// metrics is nil when instrumentation is disabled.
	metrics *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Bool("metrics", metrics != nil).Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
