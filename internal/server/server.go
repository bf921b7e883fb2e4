package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-ip-echo/internal/config"
	"github.com/MKhiriev/go-ip-echo/internal/handler"
	"github.com/MKhiriev/go-ip-echo/internal/logger"
)

type server struct {
	httpServer    *httpServer
	metricsServer *httpServer
	logger        *logger.Logger
}

// NewServer binds cfg.Address() and, when configured, cfg.MetricsAddress,
// and prepares the HTTP servers on top of the listeners. Nothing is served
// until RunServer is called.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandler
	}

	listener, err := listen(cfg.Address(), logger)
	if err != nil {
		return nil, err
	}

	servers := &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), listener, logger),
		logger:     logger,
	}

	if cfg.MetricsAddress != "" && handlers.Metrics != nil {
		metricsListener, err := listen(cfg.MetricsAddress, logger)
		if err != nil {
			_ = listener.Close()
			return nil, err
		}
		servers.metricsServer = newHTTPServer(handlers.Metrics, metricsListener, logger)
	}

	return servers, nil
}

func listen(address string, logger *logger.Logger) (net.Listener, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBind, address, err)
	}
	logger.Info().Str("address", listener.Addr().String()).Msg("listener bound")

	return listener, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	s.httpServer.Shutdown()

	// finish metrics server
	if s.metricsServer != nil {
		s.metricsServer.Shutdown()
	}
}

// run serves until ctx is done or one of the servers fails, then shuts all
// of them down.
func (s *server) run(ctx context.Context) error {
	running := []*httpServer{s.httpServer}
	if s.metricsServer != nil {
		running = append(running, s.metricsServer)
	}

	serveErr := make(chan error, len(running))

	s.logger.Info().Msg("Launching HTTP server")
	for _, srv := range running {
		go func() {
			serveErr <- srv.RunServer()
		}()
	}

	var errs []error
	pending := len(running)
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		errs = append(errs, err)
		pending--
	}

	s.Shutdown()
	for ; pending > 0; pending-- {
		errs = append(errs, <-serveErr)
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
