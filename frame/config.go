package frame

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/arbor"
)

// Config holds the settings of a frame manager, usually read from YAML:
//
//	log_level: debug
//	log_format: json
//	debug: true
//	metrics:
//	  enabled: true
//	  namespace: game
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
	// Debug enables graph debug checks and liveness records.
	Debug bool `yaml:"debug"`

	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig controls Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// DefaultConfig returns the configuration used for unset fields.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Metrics: MetricsConfig{
			Namespace: "arbor",
		},
	}
}

// LoadConfig reads a YAML configuration file. Fields the file leaves
// out keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data over the defaults and
// validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate reports unknown log levels and formats.
func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return fmt.Errorf("metrics enabled without a namespace")
	}
	return nil
}

// Logger builds the logger described by c, writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// NewFromConfig creates a manager for g set up as cfg describes. Logs
// go to w; metrics, when enabled, are registered against reg. Further
// options are applied after the configured ones.
func NewFromConfig(g *arbor.Graph, cfg Config, w io.Writer, reg prometheus.Registerer, opts ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	logger := cfg.Logger(w)
	g.SetLogger(logger)
	g.SetDebugMode(cfg.Debug)

	base := []Option{WithLogger(logger)}
	if cfg.Metrics.Enabled {
		mt, err := NewMetrics(reg, cfg.Metrics.Namespace)
		if err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
		base = append(base, WithMetrics(mt))
	}
	return New(g, append(base, opts...)...), nil
}
