// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-ip-echo/internal/logger"
)

const (
	// DefaultHost is the listen host used when HOST is absent or empty.
	DefaultHost = "0.0.0.0"
	// DefaultPort is the listen port used when PORT is absent or empty.
	DefaultPort uint32 = 80

	defaultServerURL      = "http://localhost"
	defaultRequestTimeout = 10 * time.Second
)

// StructuredConfig is the raw configuration container shared by every
// source. Server values are kept as text so that "absent" and "malformed"
// can be told apart during resolution.
//
// Nested fields carry `env` tags read by caarlos0/env; the JSON file layout
// is described by [StructuredJSONConfig].
type StructuredConfig struct {
	// Server holds the raw listen address settings.
	Server ServerSource

	// Client holds the settings of the client CLI.
	Client ClientSource

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string
}

// ServerSource is the unresolved form of [Server].
type ServerSource struct {
	// Host is the listen host.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the listen port as provided, not yet parsed.
	// Env: PORT
	Port PortValue `env:"PORT"`

	// MetricsAddress is the host:port of the optional Prometheus listener.
	// Empty disables metrics.
	// Env: METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// ClientSource is the unresolved form of [ClientConfig].
type ClientSource struct {
	// ServerURL is the base URL of the server the CLI queries.
	// Env: SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds a single request to the server (e.g. "5s").
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// WatchInterval enables watch mode when positive (e.g. "1m").
	// Env: WATCH_INTERVAL
	WatchInterval time.Duration `env:"WATCH_INTERVAL"`
}

// Server is the resolved listen address. Host and Port are always
// populated; MetricsAddress is empty when metrics are disabled.
type Server struct {
	Host string
	Port uint32

	MetricsAddress string
}

// Address formats the server address as "host:port". The result is not
// checked for bindability.
func (s Server) Address() string {
	return s.Host + ":" + strconv.FormatUint(uint64(s.Port), 10)
}

// ResolveServer derives the listen address from the given environment
// mapping. HOST and PORT are matched case-sensitively.
//
// An absent or empty value falls back to [DefaultHost] / [DefaultPort] and
// the fallback is logged. A non-empty PORT that is not an unsigned integer
// is rejected with [ErrInvalidServerConfigs].
func ResolveServer(environ map[string]string, logger *logger.Logger) (Server, error) {
	var src ServerSource
	if err := parseEnv(&src, environ); err != nil {
		return Server{}, fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	return src.resolve(logger)
}

// GetServerConfig loads the server configuration from the process
// environment, the optional JSON file and the command-line flags, then
// resolves it with the same rules as [ResolveServer].
func GetServerConfig(logger *logger.Logger) (Server, error) {
	environ, err := loadEnvironment(dotenvFile, os.Environ())
	if err != nil {
		return Server{}, err
	}

	return getServerConfig(environ, os.Args[1:], logger)
}

func getServerConfig(environ map[string]string, args []string, logger *logger.Logger) (Server, error) {
	cfg, err := newConfigBuilder().
		withEnv(environ, serverSection).
		withFlags(ParseServerFlags, args).
		withJSON().
		build()
	if err != nil {
		return Server{}, err
	}

	return cfg.Server.resolve(logger)
}

func (s ServerSource) resolve(logger *logger.Logger) (Server, error) {
	resolved := Server{Host: s.Host, MetricsAddress: s.MetricsAddress}

	if resolved.Host == "" {
		resolved.Host = DefaultHost
		logger.Info().Str("host", resolved.Host).Msg("using default host")
	}

	if s.Port == "" {
		resolved.Port = DefaultPort
		logger.Info().Uint32("port", resolved.Port).Msg("using default port")
		return resolved, nil
	}

	// one leading plus sign is accepted
	port, err := strconv.ParseUint(strings.TrimPrefix(string(s.Port), "+"), 10, 32)
	if err != nil {
		return Server{}, fmt.Errorf("%w: PORT %q is not an unsigned integer: %w", ErrInvalidServerConfigs, string(s.Port), err)
	}
	resolved.Port = uint32(port)

	return resolved, nil
}
