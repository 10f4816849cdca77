// SPDX-License-Identifier: MIT

// Package config loads the surfgeo command configuration from YAML and
// provides default values.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/surfgeo/builder"
	"github.com/katalvlaran/surfgeo/mesh"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Surface kinds understood by SurfaceConfig.Build.
const (
	ShapeIcosphere   = "icosphere"
	ShapeGrid        = "grid"
	ShapeTetrahedron = "tetrahedron"
	ShapeOctahedron  = "octahedron"
	ShapeIcosahedron = "icosahedron"
)

// Config represents the command configuration loaded from YAML.
type Config struct {
	Surface SurfaceConfig `yaml:"surface"`
	Query   QueryConfig   `yaml:"query"`
	Kernel  KernelConfig  `yaml:"kernel"`
	ROI     ROIConfig     `yaml:"roi"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SurfaceConfig selects the synthetic surface to work on.
type SurfaceConfig struct {
	// Shape is one of icosphere, grid, tetrahedron, octahedron, icosahedron.
	Shape string `yaml:"shape"`

	// Subdivisions is the icosphere level.
	Subdivisions int `yaml:"subdivisions"`

	// Rows and Cols size the grid.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Scale is the radius, edge length or grid spacing.
	Scale float64 `yaml:"scale"`

	// Jitter displaces vertices by up to this amount.
	Jitter float64 `yaml:"jitter"`
	Seed   int64   `yaml:"seed"`
}

// QueryConfig describes the distance queries to run.
type QueryConfig struct {
	Root    int     `yaml:"root"`
	Radius  float64 `yaml:"radius"`
	Smooth  bool    `yaml:"smooth"`
	Targets []int   `yaml:"targets"`

	// AllPairs enables the N×N computation, capped by MaxMatrixBytes
	// (0 keeps the engine default derived from available memory).
	AllPairs       bool  `yaml:"allPairs"`
	MaxMatrixBytes int64 `yaml:"maxMatrixBytes"`
}

// KernelConfig controls Gaussian kernel smoothing.
type KernelConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Sigma      float64 `yaml:"sigma"`
	Workers    int     `yaml:"workers"`
	Iterations int     `yaml:"iterations"`
}

// ROIConfig controls region growing.
type ROIConfig struct {
	Seeds  []int   `yaml:"seeds"`
	Radius float64 `yaml:"radius"`
	Dilate int     `yaml:"dilate"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`
}

// MetricsConfig enables the Prometheus endpoint when Listen is set.
type MetricsConfig struct {
	Listen string `yaml:"listen"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Surface.Shape = ShapeIcosphere
	cfg.Surface.Subdivisions = 3
	cfg.Surface.Rows = 20
	cfg.Surface.Cols = 20
	cfg.Surface.Scale = 50
	cfg.Surface.Seed = 1

	cfg.Query.Radius = 20
	cfg.Query.Smooth = true
	cfg.Query.Targets = []int{1, 2, 3}
	cfg.Query.MaxMatrixBytes = 1 << 30

	cfg.Kernel.Sigma = 5
	cfg.Kernel.Workers = runtime.NumCPU()
	cfg.Kernel.Iterations = 1

	cfg.ROI.Radius = 10

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// LoadConfig loads configuration from a YAML file. If the file does not
// exist, it returns the default configuration. Keys missing from the file
// keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file, creating its
// directory if needed.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// normalize maps empty lists to nil; yaml.v3 writes a nil slice as [] and
// reads it back as an empty one.
func (c *Config) normalize() {
	if len(c.Query.Targets) == 0 {
		c.Query.Targets = nil
	}
	if len(c.ROI.Seeds) == 0 {
		c.ROI.Seeds = nil
	}
}

// Validate reports the first out-of-domain value.
func (c *Config) Validate() error {
	switch c.Surface.Shape {
	case ShapeIcosphere:
		if c.Surface.Subdivisions < 0 {
			return fmt.Errorf("surface.subdivisions %d: %w", c.Surface.Subdivisions, ErrInvalid)
		}
	case ShapeGrid:
		if c.Surface.Rows < 2 || c.Surface.Cols < 2 {
			return fmt.Errorf("surface.rows/cols %dx%d: %w", c.Surface.Rows, c.Surface.Cols, ErrInvalid)
		}
	case ShapeTetrahedron, ShapeOctahedron, ShapeIcosahedron:
	default:
		return fmt.Errorf("surface.shape %q: %w", c.Surface.Shape, ErrInvalid)
	}
	if !(c.Surface.Scale > 0) {
		return fmt.Errorf("surface.scale %g: %w", c.Surface.Scale, ErrInvalid)
	}
	if c.Surface.Jitter < 0 {
		return fmt.Errorf("surface.jitter %g: %w", c.Surface.Jitter, ErrInvalid)
	}
	if !(c.Query.Radius >= 0) {
		return fmt.Errorf("query.radius %g: %w", c.Query.Radius, ErrInvalid)
	}
	if c.Query.MaxMatrixBytes < 0 {
		return fmt.Errorf("query.maxMatrixBytes %d: %w", c.Query.MaxMatrixBytes, ErrInvalid)
	}
	if c.Kernel.Enabled {
		if !(c.Kernel.Sigma > 0) {
			return fmt.Errorf("kernel.sigma %g: %w", c.Kernel.Sigma, ErrInvalid)
		}
		if c.Kernel.Workers < 1 {
			return fmt.Errorf("kernel.workers %d: %w", c.Kernel.Workers, ErrInvalid)
		}
		if c.Kernel.Iterations < 0 {
			return fmt.Errorf("kernel.iterations %d: %w", c.Kernel.Iterations, ErrInvalid)
		}
	}
	if !(c.ROI.Radius >= 0) || c.ROI.Dilate < 0 {
		return fmt.Errorf("roi radius %g, dilate %d: %w", c.ROI.Radius, c.ROI.Dilate, ErrInvalid)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return fmt.Errorf("log.format %q: %w", c.Log.Format, ErrInvalid)
	}

	return nil
}

// Build constructs the configured surface.
func (s SurfaceConfig) Build() (*mesh.Surface, error) {
	if !(s.Scale > 0) || s.Jitter < 0 {
		return nil, fmt.Errorf("surface scale %g, jitter %g: %w", s.Scale, s.Jitter, ErrInvalid)
	}
	opts := []builder.Option{
		builder.WithScale(s.Scale),
		builder.WithJitter(s.Jitter),
		builder.WithSeed(s.Seed),
	}
	switch s.Shape {
	case ShapeIcosphere:
		return builder.Icosphere(s.Subdivisions, opts...)
	case ShapeGrid:
		return builder.Grid(s.Rows, s.Cols, opts...)
	}
	name, ok := builder.ParsePlatonic(s.Shape)
	if !ok {
		return nil, fmt.Errorf("surface.shape %q: %w", s.Shape, ErrInvalid)
	}

	return builder.Platonic(name, opts...)
}

// Logger returns a slog.Logger writing to w in the configured format.
func (l LogConfig) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", s, ErrInvalid)
	}

	return level, nil
}
