package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// StructuredJSONConfig mirrors the layout of the JSON configuration file:
//
//	{
//	  "server": {"host": "127.0.0.1", "port": 8080, "metrics_address": "127.0.0.1:9100"},
//	  "client": {"server_url": "http://127.0.0.1:8080", "request_timeout": "5s", "watch_interval": "1m"}
//	}
type StructuredJSONConfig struct {
	Server struct {
		Host           string    `json:"host"`
		Port           PortValue `json:"port"`
		MetricsAddress string    `json:"metrics_address"`
	} `json:"server,omitempty"`

	Client struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
		WatchInterval  Duration `json:"watch_interval"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: ServerSource{
			Host:           jsonCfg.Server.Host,
			Port:           jsonCfg.Server.Port,
			MetricsAddress: jsonCfg.Server.MetricsAddress,
		},
		Client: ClientSource{
			ServerURL:      jsonCfg.Client.ServerURL,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
			WatchInterval:  time.Duration(jsonCfg.Client.WatchInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// PortValue is a port as provided by a configuration source, before it is
// parsed. In JSON it may be written either as a number or as a string.
type PortValue string

func (p *PortValue) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}

	var v any
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()
	if err := decoder.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case json.Number:
		*p = PortValue(value.String())
	case string:
		*p = PortValue(value)
	default:
		return fmt.Errorf("port must be a number or a string, got %s", b)
	}

	return nil
}

func (p PortValue) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseUint(string(p), 10, 32); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(p))
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
