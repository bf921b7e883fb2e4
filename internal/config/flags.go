package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"time"
)

// NetAddress holds a host:port pair given on the command line.
// It implements the flag.Value interface. The port is kept as text and is
// parsed during resolution.
type NetAddress struct {
	Host string
	Port string
}

// ParseServerFlags parses the server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-host listen host, overrides the host part of -a
//	-port listen port, overrides the port part of -a
//	-metrics metrics listen address in format [host]:[port]
//	-c/-config json file path with configs
func ParseServerFlags(args []string) (*StructuredConfig, error) {
	var address NetAddress
	var host, port, metricsAddress string
	var jsonConfigPath string

	fs := newFlagSet("server")
	fs.Var(&address, "a", "Net address host:port")
	fs.StringVar(&host, "host", "", "Listen host")
	fs.StringVar(&port, "port", "", "Listen port")
	fs.StringVar(&metricsAddress, "metrics", "", "Metrics listen address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	server := ServerSource{
		Host:           address.Host,
		Port:           PortValue(address.Port),
		MetricsAddress: metricsAddress,
	}
	if host != "" {
		server.Host = host
	}
	if port != "" {
		server.Port = PortValue(port)
	}

	return &StructuredConfig{
		Server:       server,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// ParseClientFlags parses the client CLI flags from args.
//
// Flags:
//
//	-s server base URL (e.g. "http://localhost:8080")
//	-timeout request timeout (e.g. "5s")
//	-watch poll interval; enables watch mode when positive (e.g. "1m")
//	-c/-config json file path with configs
func ParseClientFlags(args []string) (*StructuredConfig, error) {
	var serverURL string
	var requestTimeout, watchInterval time.Duration
	var jsonConfigPath string

	fs := newFlagSet("client")
	fs.StringVar(&serverURL, "s", "", "Server base URL")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.DurationVar(&watchInterval, "watch", 0, "Watch interval (e.g., 1m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Client: ClientSource{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
			WatchInterval:  watchInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// String returns the host:port form of the address, or an empty string when
// nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == "" {
		return ""
	}

	return net.JoinHostPort(a.Host, a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
func (a *NetAddress) Set(s string) error {
	host, port, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	a.Host = host
	a.Port = port
	return nil
}
