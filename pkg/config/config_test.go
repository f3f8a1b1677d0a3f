package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-antennas/pkg/network"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Grid.MaxDim)
	assert.Equal(t, 400, cfg.Capacity())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParse(t *testing.T) {
	t.Setenv("ANTENNAS_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Parse([]byte(`
grid:
  max_dim: 12
graph:
  capacity: 30
  path_budget: 5000
dump:
  path: /tmp/net.bin
  compress: true
logging:
  level: debug
  format: json
metrics:
  enabled: false
`))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Grid.MaxDim)
	assert.Equal(t, 30, cfg.Capacity())
	assert.Equal(t, 5000, cfg.Graph.PathBudget)
	assert.True(t, cfg.Dump.Compress)
	assert.Equal(t, "/tmp/net.bin", cfg.Dump.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)

	net := network.New(cfg.NetworkOptions()...)
	assert.Equal(t, 12, net.MaxDim())
	assert.Equal(t, 30, net.Capacity())
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	t.Setenv("ANTENNAS_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Parse([]byte("grid:\n  max_dim: 8\n"))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Capacity(), "capacity follows the grid")
	assert.Equal(t, "text", cfg.Logging.Format)

	empty, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), empty)
}

func TestParse_Invalid(t *testing.T) {
	t.Setenv("ANTENNAS_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")

	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{"grid too large", "grid: {max_dim: 65}", "config.grid.max_dim: must not exceed 64"},
		{"grid zero", "grid: {max_dim: 0}", "config.grid.max_dim: must be at least 1"},
		{"capacity beyond grid", "grid: {max_dim: 4}\ngraph: {capacity: 17}", "config.graph.capacity: value 17 is outside range [1, 16]"},
		{"negative capacity", "graph: {capacity: -1}", "config.graph.capacity: must be at least 0"},
		{"negative path budget", "graph: {path_budget: -1}", "config.graph.path_budget: must be at least 0"},
		{"bad level", "logging: {level: loud}", "config.logging.level: must be one of"},
		{"bad format", "logging: {format: xml}", "config.logging.format: must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Parse() error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Parse() error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestParse_CollectsAllErrors(t *testing.T) {
	t.Setenv("ANTENNAS_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")

	_, err := Parse([]byte("grid: {max_dim: 100}\nlogging: {level: loud, format: xml}"))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "grid.max_dim")
	assert.Contains(t, msg, "logging.level")
	assert.Contains(t, msg, "logging.format")
}

func TestParse_Syntax(t *testing.T) {
	_, err := Parse([]byte("grid: [unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte("grid: {max_dim: 5, colour: red}"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ANTENNAS_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, err := Parse([]byte("logging: {level: debug}"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)

	t.Setenv("ANTENNAS_LOG_LEVEL", "error")
	cfg, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad(t *testing.T) {
	t.Setenv("ANTENNAS_LOG_LEVEL", "")
	t.Setenv("LOG_LEVEL", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "antennas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: {max_dim: 10}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Grid.MaxDim)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigValidator(t *testing.T) {
	cv := NewConfigValidator("test").
		Positive("a", 0).
		OneOf("b", "x", []string{"y", "z"}).
		Custom("c", func() error { return errors.New("boom") }).
		When(false, func(cv *ConfigValidator) { cv.Positive("d", -1) })

	assert.True(t, cv.HasErrors())
	assert.Len(t, cv.Errors(), 3)
	assert.ErrorIs(t, cv.Validate(), ErrInvalidConfig)

	assert.NoError(t, NewConfigValidator("ok").RangeInt("n", 5, 1, 10).Validate())
}
