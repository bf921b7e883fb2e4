package config

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/go-ip-echo/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ResolveServer ─────────────────────────────────────────────────────────────

func TestResolveServer(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		want    Server
	}{
		{
			name:    "empty environment uses defaults",
			environ: map[string]string{},
			want:    Server{Host: "0.0.0.0", Port: 80},
		},
		{
			name:    "unrelated variables ignored",
			environ: map[string]string{"OTHER": "x"},
			want:    Server{Host: "0.0.0.0", Port: 80},
		},
		{
			name:    "explicit host and port",
			environ: map[string]string{"HOST": "127.0.0.1", "PORT": "8080"},
			want:    Server{Host: "127.0.0.1", Port: 8080},
		},
		{
			name:    "only port",
			environ: map[string]string{"PORT": "3000"},
			want:    Server{Host: "0.0.0.0", Port: 3000},
		},
		{
			name:    "leading plus sign on port",
			environ: map[string]string{"PORT": "+80"},
			want:    Server{Host: "0.0.0.0", Port: 80},
		},
		{
			name:    "only host",
			environ: map[string]string{"HOST": "localhost"},
			want:    Server{Host: "localhost", Port: 80},
		},
		{
			name:    "empty values are treated as absent",
			environ: map[string]string{"HOST": "", "PORT": ""},
			want:    Server{Host: "0.0.0.0", Port: 80},
		},
		{
			name:    "host used verbatim",
			environ: map[string]string{"HOST": "not a host"},
			want:    Server{Host: "not a host", Port: 80},
		},
		{
			name:    "port zero",
			environ: map[string]string{"PORT": "0"},
			want:    Server{Host: "0.0.0.0", Port: 0},
		},
		{
			name:    "lowercase names are ignored",
			environ: map[string]string{"host": "127.0.0.1", "port": "8080"},
			want:    Server{Host: "0.0.0.0", Port: 80},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveServer(tt.environ, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveServer_InvalidPort(t *testing.T) {
	for _, port := range []string{"notanumber", "-1", "80.5", " 80", "4294967296", "+", "++80", "+-80"} {
		t.Run(port, func(t *testing.T) {
			got, err := ResolveServer(map[string]string{"PORT": port}, logger.Nop())

			assert.ErrorIs(t, err, ErrInvalidServerConfigs)
			assert.Equal(t, Server{}, got)
		})
	}
}

func TestResolveServer_LogsDefaults(t *testing.T) {
	var buf bytes.Buffer
	_, err := ResolveServer(map[string]string{}, logger.New(&buf, "test"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "using default host")
	assert.Contains(t, buf.String(), "using default port")
}

func TestResolveServer_NoLogWhenProvided(t *testing.T) {
	var buf bytes.Buffer
	_, err := ResolveServer(map[string]string{"HOST": "127.0.0.1", "PORT": "8080"}, logger.New(&buf, "test"))
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "using default")
}

// ── Server.Address ────────────────────────────────────────────────────────────

func TestServer_Address(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", Server{Host: "127.0.0.1", Port: 8080}.Address())
	assert.Equal(t, "0.0.0.0:80", Server{Host: DefaultHost, Port: DefaultPort}.Address())
	assert.Equal(t, "not a host:0", Server{Host: "not a host"}.Address())
}

// ── getServerConfig ───────────────────────────────────────────────────────────

func TestGetServerConfig_EnvOnly(t *testing.T) {
	cfg, err := getServerConfig(map[string]string{"HOST": "127.0.0.1", "PORT": "8080"}, nil, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, Server{Host: "127.0.0.1", Port: 8080}, cfg)
}

func TestGetServerConfig_Defaults(t *testing.T) {
	cfg, err := getServerConfig(map[string]string{}, []string{}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, Server{Host: DefaultHost, Port: DefaultPort}, cfg)
}

func TestGetServerConfig_Precedence(t *testing.T) {
	path := writeTempFile(t, `{"server": {"host": "json-host", "port": 2222}}`)

	tests := []struct {
		name    string
		environ map[string]string
		args    []string
		want    Server
	}{
		{
			name:    "json overrides env",
			environ: map[string]string{"HOST": "env-host", "PORT": "1111", "CONFIG": path},
			want:    Server{Host: "json-host", Port: 2222},
		},
		{
			name:    "flags override json",
			environ: map[string]string{"HOST": "env-host", "PORT": "1111", "CONFIG": path},
			args:    []string{"-port", "3333"},
			want:    Server{Host: "json-host", Port: 3333},
		},
		{
			name:    "config path from flag",
			environ: map[string]string{"HOST": "env-host"},
			args:    []string{"-c", path},
			want:    Server{Host: "json-host", Port: 2222},
		},
		{
			name:    "address flag overrides everything",
			environ: map[string]string{"PORT": "1111"},
			args:    []string{"-config", path, "-a", "127.0.0.1:4444"},
			want:    Server{Host: "127.0.0.1", Port: 4444},
		},
		{
			name:    "metrics address from env and flag",
			environ: map[string]string{"METRICS_ADDRESS": "127.0.0.1:9100"},
			args:    []string{"-metrics", "127.0.0.1:9200"},
			want:    Server{Host: DefaultHost, Port: DefaultPort, MetricsAddress: "127.0.0.1:9200"},
		},
		{
			name:    "env fills fields missing elsewhere",
			environ: map[string]string{"HOST": "env-host"},
			args:    []string{"-port", "5555"},
			want:    Server{Host: "env-host", Port: 5555},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getServerConfig(tt.environ, tt.args, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetServerConfig_InvalidPortFromAnySource(t *testing.T) {
	path := writeTempFile(t, `{"server": {"port": "http"}}`)

	tests := []struct {
		name    string
		environ map[string]string
		args    []string
	}{
		{name: "env", environ: map[string]string{"PORT": "http"}},
		{name: "json", environ: map[string]string{"CONFIG": path}},
		{name: "flag", environ: map[string]string{"PORT": "80"}, args: []string{"-port", "http"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := getServerConfig(tt.environ, tt.args, logger.Nop())
			assert.ErrorIs(t, err, ErrInvalidServerConfigs)
		})
	}
}

func TestGetServerConfig_IgnoresClientEnv(t *testing.T) {
	cfg, err := getServerConfig(map[string]string{"REQUEST_TIMEOUT": "soon", "PORT": "8080"}, nil, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, uint32(8080), cfg.Port)
}

func TestGetServerConfig_Errors(t *testing.T) {
	t.Run("missing json file", func(t *testing.T) {
		_, err := getServerConfig(map[string]string{"CONFIG": "/does/not/exist.json"}, nil, logger.Nop())
		assert.Error(t, err)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := getServerConfig(map[string]string{}, []string{"-unknown"}, logger.Nop())
		assert.Error(t, err)
	})

	t.Run("bad address flag", func(t *testing.T) {
		_, err := getServerConfig(map[string]string{}, []string{"-a", "no-port"}, logger.Nop())
		assert.Error(t, err)
	})
}
