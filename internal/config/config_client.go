package config

import (
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the server, e.g. "http://localhost:8080".
	ServerURL string
	// RequestTimeout is the timeout for a single outbound request.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// WatchInterval defines how often the watcher polls the server. Zero
	// means the CLI asks once and exits.
	WatchInterval time.Duration
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains the server URL and request timeout.
	Adapter ClientAdapter
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration from the
// process environment, the optional JSON file and the command-line flags.
func GetClientConfig() (*ClientConfig, error) {
	environ, err := loadEnvironment(dotenvFile, os.Environ())
	if err != nil {
		return nil, err
	}

	return getClientConfig(environ, os.Args[1:])
}

func getClientConfig(environ map[string]string, args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv(environ, clientSection).
		withFlags(ParseClientFlags, args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Client.ServerURL,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Workers: ClientWorkers{WatchInterval: cfg.Client.WatchInterval},
	}
	if clientCfg.Adapter.ServerURL == "" {
		clientCfg.Adapter.ServerURL = defaultServerURL
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	if cfg.Workers.WatchInterval < 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
