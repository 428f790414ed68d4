package frame

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/arbor"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
log_level: debug
log_format: json
debug: true
metrics:
  enabled: true
  namespace: game
`)
	cfg, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "game", cfg.Metrics.Namespace)
}

func TestParseConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("metrics:\n  enabled: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "arbor", cfg.Metrics.Namespace)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad level", "log_level: loud\n"},
		{"bad format", "log_format: xml\n"},
		{"empty namespace", "metrics:\n  enabled: true\n  namespace: \"\"\n"},
		{"bad yaml", "log_level: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"
	logger := cfg.Logger(&buf)

	logger.Info("dropped")
	logger.Warn("kept", "node", "#1.1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "#1.1", rec["node"])
}

func TestNewFromConfig(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.Debug = true
	cfg.Metrics.Enabled = true

	g := arbor.NewGraph()
	m, err := NewFromConfig(g, cfg, &buf, reg)
	require.NoError(t, err)
	require.NotNil(t, m.metrics)
	assert.Same(t, m, g.UpdateHandler())

	root := g.NewGroup("root")
	g.Activate(root)
	assert.Contains(t, buf.String(), "node live", "debug mode should log liveness")

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "arbor_frames_total")
}

func TestNewFromConfigInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFormat = "xml"
	_, err := NewFromConfig(arbor.NewGraph(), cfg, &bytes.Buffer{}, prometheus.NewRegistry())
	assert.Error(t, err)
}
