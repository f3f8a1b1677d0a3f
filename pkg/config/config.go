// Package config loads the YAML configuration shared by the antennas tools.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-antennas/pkg/logging"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// MaxGridDim is the largest grid the tools accept.
const MaxGridDim = 64

// Config is the root configuration document.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Graph   GraphConfig   `yaml:"graph"`
	Dump    DumpConfig    `yaml:"dump"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type GridConfig struct {
	MaxDim int `yaml:"max_dim" validate:"min=1,max=64"`
}

// GraphConfig bounds each frequency graph. Zero capacity means max_dim² and
// zero path_budget means network.DefaultPathBudget.
type GraphConfig struct {
	Capacity   int `yaml:"capacity" validate:"min=0"`
	PathBudget int `yaml:"path_budget" validate:"min=0"`
}

type DumpConfig struct {
	Path     string `yaml:"path"`
	Compress bool   `yaml:"compress"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Grid:    GridConfig{MaxDim: network.DefaultMaxDim},
		Dump:    DumpConfig{Path: "antennas.bin"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Parse decodes YAML over the defaults, applies environment overrides and
// validates the result. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applies ANTENNAS_LOG_LEVEL or LOG_LEVEL over the logging level.
func (c *Config) ApplyEnv() {
	for _, key := range []string{"ANTENNAS_LOG_LEVEL", "LOG_LEVEL"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			c.Logging.Level = strings.ToLower(v)
			return
		}
	}
}

// Validate checks field ranges and cross-field rules.
func (c *Config) Validate() error {
	cv := NewConfigValidator("config").Struct(c)
	cv.When(c.Grid.MaxDim >= 1 && c.Grid.MaxDim <= MaxGridDim, func(cv *ConfigValidator) {
		if c.Graph.Capacity != 0 {
			cv.RangeInt("graph.capacity", c.Graph.Capacity, 1, c.Grid.MaxDim*c.Grid.MaxDim)
		}
	})
	return cv.Validate()
}

// Capacity returns the effective per-graph capacity.
func (c *Config) Capacity() int {
	if c.Graph.Capacity > 0 {
		return c.Graph.Capacity
	}
	return c.Grid.MaxDim * c.Grid.MaxDim
}

// NewLogger builds the logger described by the logging section.
func (c *Config) NewLogger(w io.Writer) logging.Logger {
	return logging.New(w, logging.ParseLevel(c.Logging.Level), logging.ParseFormat(c.Logging.Format))
}

// NetworkOptions converts the grid and graph sections into network options.
func (c *Config) NetworkOptions() []network.Option {
	return []network.Option{
		network.WithMaxDim(c.Grid.MaxDim),
		network.WithCapacity(c.Capacity()),
		network.WithPathBudget(c.Graph.PathBudget),
	}
}

// yamlPath maps a validator namespace such as Config.Grid.MaxDim to grid.max_dim.
func yamlPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 0 && parts[0] == "Config" {
		parts = parts[1:]
	}
	t := reflect.TypeOf(Config{})
	out := make([]string, 0, len(parts))
	for _, name := range parts {
		f, ok := t.FieldByName(name)
		if !ok {
			out = append(out, strings.ToLower(name))
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		out = append(out, tag)
		t = f.Type
	}
	return strings.Join(out, ".")
}
