package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-ip-echo/internal/config"
	"github.com/MKhiriev/go-ip-echo/internal/handler/http"
	"github.com/MKhiriev/go-ip-echo/internal/logger"
	"github.com/MKhiriev/go-ip-echo/internal/metrics"
	"github.com/MKhiriev/go-ip-echo/internal/service"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	HTTP *http.Handler
	// Metrics is nil unless a metrics address is configured.
	Metrics nethttp.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.ClientIPService == nil {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{}

	var m *metrics.Metrics
	if cfg.MetricsAddress != "" {
		m = metrics.New()
		handlers.Metrics = metricsRouter(m)
	}
	handlers.HTTP = http.NewHandler(services, m, logger)

	return handlers, nil
}

// metricsRouter serves the scrape endpoint on the metrics listener.
func metricsRouter(m *metrics.Metrics) nethttp.Handler {
	router := chi.NewRouter()
	router.Method(nethttp.MethodGet, "/metrics", m.Handler())
	return router
}
