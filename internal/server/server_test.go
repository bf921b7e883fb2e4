package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-ip-echo/internal/config"
	"github.com/MKhiriev/go-ip-echo/internal/handler"
	"github.com/MKhiriev/go-ip-echo/internal/logger"
	"github.com/MKhiriev/go-ip-echo/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	handlers, err := handler.NewHandlers(service.NewServices(logger.Nop()), cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func loopback(port uint32) config.Server {
	return config.Server{Host: "127.0.0.1", Port: port}
}

func occupiedPort(t *testing.T) (net.Listener, uint32) {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l, uint32(l.Addr().(*net.TCPAddr).Port)
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func startServer(t *testing.T, s *server) (stop func() error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	return func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop after context cancellation")
			return nil
		}
	}
}

func TestNewServer_NilHandlers(t *testing.T) {
	srv, err := NewServer(nil, loopback(0), logger.Nop())
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoHandler)

	srv, err = NewServer(&handler.Handlers{}, loopback(0), logger.Nop())
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoHandler)
}

func TestNewServer_PortInUse(t *testing.T) {
	occupied, port := occupiedPort(t)

	srv, err := NewServer(newTestHandlers(t, config.Server{}), loopback(port), logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, ErrBind)
	assert.Contains(t, err.Error(), occupied.Addr().String())
}

func TestNewServer_PortOutOfRange(t *testing.T) {
	srv, err := NewServer(newTestHandlers(t, config.Server{}), loopback(70000), logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, ErrBind)
}

func TestNewServer_MetricsPortInUse(t *testing.T) {
	occupied, _ := occupiedPort(t)
	cfg := loopback(0)
	cfg.MetricsAddress = occupied.Addr().String()

	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, ErrBind)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	srv, err := NewServer(newTestHandlers(t, config.Server{}), loopback(0), logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.Nil(t, s.metricsServer)
	addr := s.httpServer.listener.Addr().String()

	stop := startServer(t, s)

	// with no forwarding headers the Host header is echoed back
	status, body := get(t, "http://"+addr+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, addr, body)

	status, _ = get(t, "http://"+addr+"/other")
	assert.Equal(t, http.StatusNotFound, status)

	require.NoError(t, stop())

	_, err = net.DialTimeout("tcp", addr, time.Second)
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestServer_ServesMetrics(t *testing.T) {
	cfg := loopback(0)
	cfg.MetricsAddress = "127.0.0.1:0"

	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	require.NotNil(t, s.metricsServer)
	addr := s.httpServer.listener.Addr().String()
	metricsAddr := s.metricsServer.listener.Addr().String()

	stop := startServer(t, s)

	status, _ := get(t, "http://"+addr+"/")
	require.Equal(t, http.StatusOK, status)

	status, body := get(t, "http://"+metricsAddr+"/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `ip_echo_http_requests_total{method="GET",route="/",status="200"} 1`)

	status, _ = get(t, "http://"+addr+"/metrics")
	assert.Equal(t, http.StatusNotFound, status, "metrics are not exposed on the echo listener")

	require.NoError(t, stop())
}

func TestServer_RunReturnsServeError(t *testing.T) {
	srv, err := NewServer(newTestHandlers(t, config.Server{}), loopback(0), logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	require.NoError(t, s.httpServer.listener.Close())

	assert.Error(t, s.run(context.Background()))
}
