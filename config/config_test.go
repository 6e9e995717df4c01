package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chord.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func Test_Load_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func Test_Load_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[ring]
max_id = 128
seed = 7
initial_nodes = 3

[server]
addr = "127.0.0.1:9000"
shutdown_timeout = "2s"

[tracing]
enabled = true
service_name = "ring-a"

[log]
verbosity = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(128), cfg.Ring.MaxID)
	assert.Equal(t, uint64(7), cfg.Ring.Seed)
	assert.Equal(t, 3, cfg.Ring.InitialNodes)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout.Duration)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "ring-a", cfg.Tracing.ServiceName)
	assert.Equal(t, "http://localhost:14268/api/traces", cfg.Tracing.JaegerEndpoint)
	assert.Equal(t, 2, cfg.Log.Verbosity)
}

func Test_Load_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown key", body: "[ring]\nmax_idd = 3\n"},
		{name: "zero max id", body: "[ring]\nmax_id = 0\n"},
		{name: "too many initial nodes", body: "[ring]\nmax_id = 4\ninitial_nodes = 5\n"},
		{name: "bad duration", body: "[server]\nshutdown_timeout = \"soon\"\n"},
		{name: "empty addr", body: "[server]\naddr = \" \"\n"},
		{name: "not toml", body: "ring = [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body))
			if err == nil {
				err = cfg.Validate()
			}
			assert.Error(t, err)
		})
	}
}

func Test_Load_LeavesValidationToCaller(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[ring]\nmax_id = 0\n"))
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.Ring.MaxID = 32
	assert.NoError(t, cfg.Validate())
}

func Test_Load_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
